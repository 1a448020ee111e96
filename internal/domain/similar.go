package domain

// SimilarContent is a vector index match.
type SimilarContent struct {
	ContentID string  `json:"content_id"`
	Score     float64 `json:"score"`
}
