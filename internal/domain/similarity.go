package domain

import (
	"fmt"
	"math"
)

// CosineSimilarity returns the cosine of the angle between a and b.
// If either vector has zero norm the result is NaN.
func CosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Scorer computes a raw relevance score between a user vector and a content vector.
type Scorer interface {
	Score(userVector, contentVector []float64) (float64, error)
}

// CosineScorer scores by cosine similarity. Undefined similarities score 0.
type CosineScorer struct{}

func (CosineScorer) Score(userVector, contentVector []float64) (float64, error) {
	if len(userVector) != len(contentVector) {
		return 0, fmt.Errorf("vector length mismatch: %d != %d", len(userVector), len(contentVector))
	}

	score := CosineSimilarity(userVector, contentVector)
	if math.IsNaN(score) {
		return 0, nil
	}
	return score, nil
}
