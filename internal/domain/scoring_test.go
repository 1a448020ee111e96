package domain

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scorerFunc func(userVector, contentVector []float64) (float64, error)

func (f scorerFunc) Score(userVector, contentVector []float64) (float64, error) {
	return f(userVector, contentVector)
}

// reputationScorer scores content by its reputation slot so tests can pick scores via TotalEarnings.
var reputationScorer = scorerFunc(func(_, contentVector []float64) (float64, error) {
	return contentVector[FeatureVectorLength-1], nil
})

func TestRecommend(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	old := now.AddDate(0, 0, -30)

	newScoringContext := func(scorer Scorer) *ScoringContext {
		sc := NewScoringContext(now, rand.New(rand.NewPCG(1, 2)))
		sc.Scorer = scorer
		return sc
	}

	ids := func(results []ScoredContent) []string {
		out := make([]string, len(results))
		for i, r := range results {
			out[i] = r.ID
		}
		return out
	}

	t.Run("orders_by_adjusted_score", func(t *testing.T) {
		candidates := []Content{
			{ID: "low", TotalEarnings: 2, UploadedAt: old},
			{ID: "high", TotalEarnings: 8, UploadedAt: old},
			{ID: "boosted", TotalEarnings: 5, UploadedAt: now, AccessCount: 150},
			{ID: "purchased", TotalEarnings: 9, UploadedAt: old},
		}
		interactions := []Interaction{{ContentID: "purchased", Type: InteractionTypePurchase}}

		results, err := Recommend(context.Background(), newScoringContext(reputationScorer), interactions, candidates, 10)
		require.NoError(t, err)

		assert.Equal(t, []string{"high", "boosted", "purchased", "low"}, ids(results))
		assert.InDelta(t, 0.8, results[0].Score, 1e-9)
		assert.InDelta(t, 0.66, results[1].Score, 1e-9)
		assert.InDelta(t, 0.45, results[2].Score, 1e-9)
		assert.InDelta(t, 0.2, results[3].Score, 1e-9)
		assert.Equal(t, "Recommended for you", results[0].Reason)
		assert.Equal(t, "Trending content", results[1].Reason)
	})

	t.Run("ties_keep_candidate_order_and_truncate", func(t *testing.T) {
		var candidates []Content
		for _, id := range []string{"a", "b", "c", "d", "e"} {
			candidates = append(candidates, Content{ID: id, Type: ContentTypeImage, UploadedAt: old})
		}

		// An empty history has a zero vector, so every cosine score is 0.
		results, err := Recommend(context.Background(), newScoringContext(CosineScorer{}), nil, candidates, 3)
		require.NoError(t, err)

		assert.Equal(t, []string{"a", "b", "c"}, ids(results))
		for _, r := range results {
			assert.Zero(t, r.Score)
		}
	})

	t.Run("scorer_failures_fall_back_to_bounded_random", func(t *testing.T) {
		failing := scorerFunc(func(_, _ []float64) (float64, error) {
			return 0, errors.New("model unavailable")
		})
		sc := newScoringContext(failing)

		var mu sync.Mutex
		var fallbacks []string
		sc.OnFallback = func(contentID string, err error) {
			mu.Lock()
			defer mu.Unlock()
			fallbacks = append(fallbacks, contentID)
		}

		candidates := make([]Content, 20)
		for i := range candidates {
			candidates[i] = Content{ID: string(rune('a' + i)), UploadedAt: old}
		}

		results, err := Recommend(context.Background(), sc, nil, candidates, 20)
		require.NoError(t, err)
		require.Len(t, results, 20)
		for _, r := range results {
			assert.GreaterOrEqual(t, r.Score, 0.0)
			assert.Less(t, r.Score, 0.5)
		}
		assert.Len(t, fallbacks, 20)
	})

	t.Run("scorer_panic_is_recovered", func(t *testing.T) {
		panicking := scorerFunc(func(_, _ []float64) (float64, error) {
			panic("index out of range")
		})

		results, err := Recommend(
			context.Background(), newScoringContext(panicking), nil, []Content{{ID: "x", UploadedAt: old}}, 5,
		)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.GreaterOrEqual(t, results[0].Score, 0.0)
		assert.Less(t, results[0].Score, 0.5)
	})

	t.Run("cancelled_context_fails_the_batch", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Recommend(ctx, newScoringContext(CosineScorer{}), nil, []Content{{ID: "x"}}, 5)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("no_candidates", func(t *testing.T) {
		results, err := Recommend(context.Background(), newScoringContext(nil), nil, nil, 5)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
