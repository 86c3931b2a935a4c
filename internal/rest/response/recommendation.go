package response

import (
	"github.com/Guyuepp/creatorhub/domain"
)

type Recommendation struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	CreatorName string  `json:"creator_name"`
	Score       float64 `json:"score"`
}

func NewRecommendationFromDomain(c *domain.RecommendationCandidate) Recommendation {
	return Recommendation{
		ID:          c.Post.ID,
		Title:       c.Post.Title,
		Content:     c.Post.Content,
		CreatorName: c.Post.Creator.Name,
		Score:       c.Score,
	}
}
