package model

import (
	"time"

	"github.com/Guyuepp/creatorhub/domain"
)

type PostLike struct {
	PostID    int64     `gorm:"column:post_id;primaryKey;autoIncrement:false"`
	UserID    int64     `gorm:"column:user_id;primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (PostLike) TableName() string {
	return "post_likes"
}

func NewPostLikeFromDomain(l domain.PostLike) PostLike {
	return PostLike{
		PostID:    l.PostID,
		UserID:    l.UserID,
		CreatedAt: l.CreatedAt,
	}
}
