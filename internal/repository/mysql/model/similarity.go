package model

import "github.com/Guyuepp/creatorhub/domain"

type UserSimilarity struct {
	User1ID         int64   `gorm:"column:user1_id;primaryKey;autoIncrement:false"`
	User2ID         int64   `gorm:"column:user2_id;primaryKey;autoIncrement:false;index"`
	SimilarityScore float64 `gorm:"column:similarity_score;not null"`
}

func (UserSimilarity) TableName() string {
	return "user_similarity"
}

func NewUserSimilarityFromDomain(e domain.SimilarityEntry) UserSimilarity {
	return UserSimilarity{
		User1ID:         e.User1ID,
		User2ID:         e.User2ID,
		SimilarityScore: e.Score,
	}
}

// NeighborRow is the projection used by neighbor lookups.
type NeighborRow struct {
	NeighborID      int64   `gorm:"column:neighbor_id"`
	SimilarityScore float64 `gorm:"column:similarity_score"`
}

func (r NeighborRow) ToDomain() domain.Neighbor {
	return domain.Neighbor{
		UserID: r.NeighborID,
		Score:  r.SimilarityScore,
	}
}
