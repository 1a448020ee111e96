package datasources

import (
	"context"

	"github.com/BotGJ16/ContentVault/internal/domain"
)

type UserRepository interface {
	UserGetter
	UserStatsIncrementer
	CreatorMarker
}

// UserGetter returns a user by address, or domain.ErrUserNotFound.
type UserGetter interface {
	GetUser(ctx context.Context, address string) (domain.User, error)
}

// UserStatsIncrementer adds delta to a user's stats, creating the user if needed.
type UserStatsIncrementer interface {
	IncrementUserStats(ctx context.Context, address string, delta domain.UserStats) error
}

// CreatorMarker flags a user as a creator, creating the user if needed.
type CreatorMarker interface {
	MarkCreator(ctx context.Context, address string) error
}
