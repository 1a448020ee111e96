package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/BotGJ16/ContentVault/internal/datasources"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"
)

var _ datasources.InteractionLog = (*Repository)(nil)

const interactionsTable = "interactions"

var interactionColumns = []string{
	"id",
	"user_address",
	"content_id",
	"content_type",
	"content_price",
	"creator_address",
	"interaction_type",
	"amount",
	"created_at",
}

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) RecordInteraction(ctx context.Context, interaction domain.Interaction) error {
	if interaction.ID == "" {
		interaction.ID = uuid.NewString()
	}

	ib := sqlbuilder.InsertInto(interactionsTable)
	ib.Cols(interactionColumns...)
	ib.Values(
		interaction.ID,
		interaction.UserAddress,
		interaction.ContentID,
		string(interaction.ContentType),
		interaction.ContentPrice,
		interaction.CreatorAddress,
		string(interaction.Type),
		interaction.Amount,
		interaction.Timestamp.UTC(),
	)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting interaction: %w", err)
	}
	return nil
}

func (r *Repository) ListUserInteractions(ctx context.Context, userAddress string) ([]domain.Interaction, error) {
	sb := sqlbuilder.Select(interactionColumns...)
	sb.From(interactionsTable)
	sb.Where(sb.Equal("user_address", userAddress))
	sb.OrderBy("created_at").Asc()

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running interactions query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	interactions := []domain.Interaction{}
	for rows.Next() {
		var i domain.Interaction
		var contentType, interactionType string
		if err := rows.Scan(
			&i.ID,
			&i.UserAddress,
			&i.ContentID,
			&contentType,
			&i.ContentPrice,
			&i.CreatorAddress,
			&interactionType,
			&i.Amount,
			&i.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scanning interaction: %w", err)
		}
		i.ContentType = domain.ContentType(contentType)
		i.Type = domain.InteractionType(interactionType)
		interactions = append(interactions, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating interactions: %w", err)
	}

	return interactions, nil
}

func (r *Repository) HasPurchased(ctx context.Context, userAddress, contentID string) (bool, error) {
	sb := sqlbuilder.Select("1")
	sb.From(interactionsTable)
	sb.Where(
		sb.Equal("user_address", userAddress),
		sb.Equal("content_id", contentID),
		sb.Equal("interaction_type", string(domain.InteractionTypePurchase)),
	)
	sb.Limit(1)

	query, args := sb.Build()
	var one int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking purchase: %w", err)
	}
	return true, nil
}

func (r *Repository) ListActiveUsers(ctx context.Context, since time.Time) ([]string, error) {
	sb := sqlbuilder.Select("user_address").Distinct()
	sb.From(interactionsTable)
	sb.Where(sb.GreaterEqualThan("created_at", since.UTC()))
	sb.OrderBy("user_address")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running active users query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	users := []string{}
	for rows.Next() {
		var address string
		if err := rows.Scan(&address); err != nil {
			return nil, fmt.Errorf("scanning user address: %w", err)
		}
		users = append(users, address)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating active users: %w", err)
	}
	return users, nil
}

func (r *Repository) ListPurchasedContentIDs(
	ctx context.Context, userAddress string, page, pageSize int,
) ([]string, error) {
	sb := sqlbuilder.Select("content_id")
	sb.From(interactionsTable)
	sb.Where(
		sb.Equal("user_address", userAddress),
		sb.Equal("interaction_type", string(domain.InteractionTypePurchase)),
	)
	sb.GroupBy("content_id")
	sb.OrderBy("MAX(created_at)").Desc()
	sb.Offset((page - 1) * pageSize)
	sb.Limit(pageSize)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running purchased content query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning content id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating purchased content: %w", err)
	}
	return ids, nil
}

func (r *Repository) CountPurchasedContent(ctx context.Context, userAddress string) (int64, error) {
	sb := sqlbuilder.Select("COUNT(DISTINCT content_id)")
	sb.From(interactionsTable)
	sb.Where(
		sb.Equal("user_address", userAddress),
		sb.Equal("interaction_type", string(domain.InteractionTypePurchase)),
	)

	query, args := sb.Build()
	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting purchased content: %w", err)
	}
	return count, nil
}
