package model

import (
	"time"

	"github.com/Guyuepp/creatorhub/domain"
)

type UserPreference struct {
	UserID          int64     `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	CreatorID       int64     `gorm:"column:creator_id;primaryKey;autoIncrement:false"`
	PreferenceScore int       `gorm:"column:preference_score;not null"`
	UpdatedAt       time.Time `gorm:"type:datetime"`
}

func (UserPreference) TableName() string {
	return "user_preferences"
}

func NewUserPreferenceFromDomain(p *domain.UserPreference) *UserPreference {
	return &UserPreference{
		UserID:          p.UserID,
		CreatorID:       p.CreatorID,
		PreferenceScore: p.Score,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (m *UserPreference) ToDomain() domain.UserPreference {
	return domain.UserPreference{
		UserID:    m.UserID,
		CreatorID: m.CreatorID,
		Score:     m.PreferenceScore,
		UpdatedAt: m.UpdatedAt,
	}
}
