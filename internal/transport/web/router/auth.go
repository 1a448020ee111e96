package router

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/golang-jwt/jwt/v5"
)

const (
	bearerPrefix      = "Bearer "
	auth0BearerPrefix = "Bearer auth0|"
)

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	UserAddress string
	Method      domain.AuthMethod
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that validates requests using multiple authentication methods.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue // This validator doesn't apply
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.InfoContext(r.Context(), "authentication failed", "error", err)
					writeJSONError(w, http.StatusUnauthorized, err.Error())
					return
				}

				ctx := domain.ContextWithUserAddress(r.Context(), result.UserAddress)
				ctx = domain.ContextWithAuthMethod(ctx, result.Method)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// No validator matched - continue without auth (for public endpoints)
			next.ServeHTTP(w, r)
		})
	}
}

type walletClaims struct {
	Address string `json:"address"`
	jwt.RegisteredClaims
}

// NewJWTValidator creates a validator for HS256 session tokens carrying the wallet address.
func NewJWTValidator(secret []byte) AuthValidator {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(time.Minute),
	)
	keyFunc := func(*jwt.Token) (any, error) {
		return secret, nil
	}

	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) || strings.HasPrefix(authHeader, auth0BearerPrefix) {
			return nil, nil
		}

		var claims walletClaims
		if _, err := parser.ParseWithClaims(authHeader[len(bearerPrefix):], &claims, keyFunc); err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return nil, fmt.Errorf("token expired")
			}
			return nil, fmt.Errorf("invalid token")
		}

		if claims.Address == "" {
			return nil, fmt.Errorf("token has no address")
		}

		return &AuthResult{
			UserAddress: claims.Address,
			Method:      domain.AuthMethodJWT,
		}, nil
	}
}

// NewAuth0Validator creates a validator for Auth0 JWT tokens. The token subject is the wallet address.
func NewAuth0Validator(auth0Domain, auth0Audience string) (AuthValidator, error) {
	issuerURL, err := url.Parse("https://" + auth0Domain + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to parse the issuer url: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{auth0Audience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT validator: %w", err)
	}

	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, auth0BearerPrefix) {
			return nil, nil
		}

		token, err := jwtValidator.ValidateToken(r.Context(), authHeader[len(auth0BearerPrefix):])
		if err != nil {
			return nil, fmt.Errorf("invalid JWT token")
		}

		claims := token.(*validator.ValidatedClaims)
		return &AuthResult{
			UserAddress: claims.RegisteredClaims.Subject,
			Method:      domain.AuthMethodAuth0,
		}, nil
	}, nil
}
