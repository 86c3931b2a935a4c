package model

import (
	"time"

	"github.com/Guyuepp/creatorhub/domain"
)

// Subscription rows are written by the payment workflow, one per successful payment,
// so a user may hold several rows for the same creator.
type Subscription struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_sub_user_creator"`
	CreatorID int64     `gorm:"column:creator_id;not null;index:idx_sub_user_creator"`
	ExpiresAt time.Time `gorm:"column:expires_at;type:datetime;not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

func (m *Subscription) ToDomain() domain.Subscription {
	return domain.Subscription{
		UserID:    m.UserID,
		CreatorID: m.CreatorID,
		ExpiresAt: m.ExpiresAt,
	}
}
