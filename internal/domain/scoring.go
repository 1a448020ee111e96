package domain

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	defaultScoringConcurrency = 8
	fallbackScoreCeiling      = 0.5
)

// ScoringContext carries everything a recommendation pass depends on.
// A zero Scorer means CosineScorer; a zero Concurrency means a small default.
type ScoringContext struct {
	Now         time.Time
	Scorer      Scorer
	Rand        *rand.Rand
	Policy      RankingPolicy
	Concurrency int

	// OnFallback, if set, is called whenever an item's score was replaced by a random one.
	OnFallback func(contentID string, err error)

	randMu sync.Mutex
}

// NewScoringContext returns a context using cosine scoring and the default ranking policy.
func NewScoringContext(now time.Time, rng *rand.Rand) *ScoringContext {
	return &ScoringContext{
		Now:    now,
		Scorer: CosineScorer{},
		Rand:   rng,
		Policy: DefaultRankingPolicy(),
	}
}

// Recommend scores every candidate against the user's interaction history and
// returns at most limit results by descending adjusted score. Ties keep the
// order of candidates. Scoring failures never fail the batch; only context
// cancellation does.
func Recommend(
	ctx context.Context,
	sc *ScoringContext,
	interactions []Interaction,
	candidates []Content,
	limit int,
) ([]ScoredContent, error) {
	userVector := ExtractUserFeatures(interactions)

	results := make([]ScoredContent, len(candidates))

	concurrency := sc.Concurrency
	if concurrency <= 0 {
		concurrency = defaultScoringConcurrency
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, content := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			raw := sc.scoreItem(userVector, content)
			purchased := HasPurchased(interactions, content.ID)
			results[i] = ScoredContent{
				Content: content,
				Score:   sc.Policy.Adjust(raw, content, purchased, sc.Now),
				Reason:  RecommendationReason(content, interactions),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scoring candidates: %w", err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if limit >= 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// scoreItem returns the scorer's raw score, or a random score in [0, 0.5) if
// the scorer fails or panics.
func (sc *ScoringContext) scoreItem(userVector []float64, content Content) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			score = sc.fallbackScore(content.ID, fmt.Errorf("scorer panicked: %v", r))
		}
	}()

	scorer := sc.Scorer
	if scorer == nil {
		scorer = CosineScorer{}
	}

	score, err := scorer.Score(userVector, ExtractContentFeatures(content))
	if err != nil {
		return sc.fallbackScore(content.ID, err)
	}
	return score
}

func (sc *ScoringContext) fallbackScore(contentID string, err error) float64 {
	if sc.OnFallback != nil {
		sc.OnFallback(contentID, err)
	}

	sc.randMu.Lock()
	defer sc.randMu.Unlock()

	if sc.Rand == nil {
		return rand.Float64() * fallbackScoreCeiling
	}
	return sc.Rand.Float64() * fallbackScoreCeiling
}
