package datasources

import (
	"context"

	"github.com/BotGJ16/ContentVault/internal/domain"
)

// SimilarityRepository combines all vector index operations.
type SimilarityRepository interface {
	ContentVectorIndexer
	SimilarContentLister
}

// ContentVectorIndexer stores a content item's feature vector.
type ContentVectorIndexer interface {
	IndexContentVector(ctx context.Context, content domain.Content, vector []float64) error
}

// SimilarContentLister finds the content nearest to a vector, excluding the given IDs.
type SimilarContentLister interface {
	ListSimilarContent(
		ctx context.Context,
		excludeIDs []string,
		vector []float64,
		limit int,
	) ([]domain.SimilarContent, error)
}

// NullSimilarityRepository is a null implementation of SimilarityRepository.
type NullSimilarityRepository struct{}

var _ SimilarityRepository = NullSimilarityRepository{}

func (NullSimilarityRepository) IndexContentVector(_ context.Context, _ domain.Content, _ []float64) error {
	return nil
}

func (NullSimilarityRepository) ListSimilarContent(
	_ context.Context,
	_ []string,
	_ []float64,
	_ int,
) ([]domain.SimilarContent, error) {
	return nil, nil
}
