package command

import (
	"context"
	"fmt"

	"github.com/BotGJ16/ContentVault/internal/datasources"
	"github.com/BotGJ16/ContentVault/internal/domain"
)

// GetUser returns a user's public profile.
type GetUser struct {
	Getter datasources.UserGetter
}

func (c *GetUser) Execute(ctx context.Context, address string) (domain.User, error) {
	user, err := c.Getter.GetUser(ctx, address)
	if err != nil {
		return domain.User{}, fmt.Errorf("fetching user: %w", err)
	}
	return user, nil
}
