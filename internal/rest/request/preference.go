package request

import "github.com/Guyuepp/creatorhub/domain"

type Preference struct {
	Score *int `json:"score" binding:"required,min=-5,max=5"`
}

// ToDomain: Request -> Domain
func (r *Preference) ToDomain(userID, creatorID int64) domain.UserPreference {
	return domain.UserPreference{
		UserID:    userID,
		CreatorID: creatorID,
		Score:     *r.Score,
	}
}
