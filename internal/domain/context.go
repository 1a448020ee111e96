package domain

import (
	"context"
	"log/slog"
	"strings"
)

type contextKey string

const loggerContextKey contextKey = "logger"

func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger := ctx.Value(loggerContextKey)
	if logger == nil {
		logger = slog.Default()
	}

	return logger.(*slog.Logger)
}

const userAddressContextKey contextKey = "user_address"

// ContextWithUserAddress stores the authenticated wallet address, lowercased.
func ContextWithUserAddress(ctx context.Context, address string) context.Context {
	return context.WithValue(ctx, userAddressContextKey, strings.ToLower(address))
}

func UserAddressFromContext(ctx context.Context) string {
	address := ctx.Value(userAddressContextKey)
	if address == nil {
		address = ""
	}
	return address.(string)
}

// AuthMethod identifies how a request was authenticated.
type AuthMethod string

const (
	AuthMethodJWT   AuthMethod = "jwt"
	AuthMethodAuth0 AuthMethod = "auth0"
)

const authMethodContextKey contextKey = "auth_method"

func ContextWithAuthMethod(ctx context.Context, method AuthMethod) context.Context {
	return context.WithValue(ctx, authMethodContextKey, method)
}

func AuthMethodFromContext(ctx context.Context) AuthMethod {
	method, _ := ctx.Value(authMethodContextKey).(AuthMethod)
	return method
}
