package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims walletClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestJWTValidator(t *testing.T) {
	validate := NewJWTValidator(testSecret)
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))
	past := jwt.NewNumericDate(time.Now().Add(-time.Hour))

	cases := []struct {
		name        string
		header      string
		wantAddress string
		wantErr     string
		wantSkip    bool
	}{
		{
			name: "valid",
			header: "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, walletClaims{
				Address:          "0xABC",
				RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future},
			}),
			wantAddress: "0xABC",
		},
		{
			name: "expired",
			header: "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, walletClaims{
				Address:          "0xabc",
				RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: past},
			}),
			wantErr: "token expired",
		},
		{
			name:    "wrong_secret",
			header:  "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), walletClaims{Address: "0xabc"}),
			wantErr: "invalid token",
		},
		{
			name:    "wrong_algorithm",
			header:  "Bearer " + signToken(t, jwt.SigningMethodHS512, testSecret, walletClaims{Address: "0xabc"}),
			wantErr: "invalid token",
		},
		{
			name:    "no_address",
			header:  "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, walletClaims{}),
			wantErr: "token has no address",
		},
		{
			name:    "garbage",
			header:  "Bearer not-a-jwt",
			wantErr: "invalid token",
		},
		{name: "no_header", header: "", wantSkip: true},
		{name: "basic_auth", header: "Basic dXNlcjpwYXNz", wantSkip: true},
		{name: "auth0_token", header: "Bearer auth0|eyJ", wantSkip: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/content", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			result, err := validate(req)

			switch {
			case tc.wantSkip:
				assert.Nil(t, result)
				assert.NoError(t, err)
			case tc.wantErr != "":
				assert.Nil(t, result)
				assert.EqualError(t, err, tc.wantErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, &AuthResult{UserAddress: tc.wantAddress, Method: domain.AuthMethodJWT}, result)
			}
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	middleware := NewAuthMiddleware([]AuthValidator{NewJWTValidator(testSecret)})

	var gotAddress string
	var gotMethod domain.AuthMethod
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAddress = domain.UserAddressFromContext(r.Context())
		gotMethod = domain.AuthMethodFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("authenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, testSecret, walletClaims{Address: "0xABC"}))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "0xabc", gotAddress)
		assert.Equal(t, domain.AuthMethodJWT, gotMethod)
	})

	t.Run("anonymous_passes_through", func(t *testing.T) {
		gotAddress, gotMethod = "unset", ""
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, gotAddress)
		assert.Empty(t, gotMethod)
	})

	t.Run("invalid_token_rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"invalid token"}`, rec.Body.String())
	})
}
