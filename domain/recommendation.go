package domain

import "context"

const (
	DefaultRecommendationLimit = 10
	MaxRecommendationLimit     = 50
	// NeighborLimit is how many similar users feed a personalized ranking.
	NeighborLimit = 5
)

// RecommendationSource tells which branch of the ranker produced a list.
type RecommendationSource string

const (
	SourcePersonalized RecommendationSource = "personalized"
	SourcePopular      RecommendationSource = "popular"
)

// RecommendationCandidate is a post plus the signal it was ranked by.
// For personalized results Score is the average positive neighbor preference
// for the post's creator; for popular results it is the view count.
type RecommendationCandidate struct {
	Post  Post
	Score float64
}

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID int64, limit int) ([]RecommendationCandidate, RecommendationSource, error)
}
