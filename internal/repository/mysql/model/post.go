package model

import (
	"time"

	"github.com/Guyuepp/creatorhub/domain"
)

type Post struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	CreatorID int64     `gorm:"column:creator_id;not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:longtext;not null"`
	IsPaid    bool      `gorm:"column:is_paid;not null;default:false;index"`
	Price     float64   `gorm:"type:decimal(10,2);default:0"`
	Views     int64     `gorm:"default:0"`
	Likes     int64     `gorm:"default:0"`
	UpdatedAt time.Time `gorm:"type:datetime"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Post) TableName() string {
	return "posts"
}

// PostWithCreator is the row shape of a posts JOIN creators query.
type PostWithCreator struct {
	Post
	CreatorName   string `gorm:"column:creator_name"`
	CreatorUserID int64  `gorm:"column:creator_user_id"`
}

func (m *Post) ToDomain() domain.Post {
	return domain.Post{
		ID:      m.ID,
		Title:   m.Title,
		Content: m.Content,
		Creator: domain.Creator{
			ID: m.CreatorID,
		},
		IsPaid:    m.IsPaid,
		Price:     m.Price,
		Views:     m.Views,
		Likes:     m.Likes,
		UpdatedAt: m.UpdatedAt,
		CreatedAt: m.CreatedAt,
	}
}

func (m *PostWithCreator) ToDomain() domain.Post {
	p := m.Post.ToDomain()
	p.Creator.Name = m.CreatorName
	p.Creator.UserID = m.CreatorUserID
	return p
}

func NewPostFromDomain(p *domain.Post) *Post {
	return &Post{
		ID:        p.ID,
		CreatorID: p.Creator.ID,
		Title:     p.Title,
		Content:   p.Content,
		IsPaid:    p.IsPaid,
		Price:     p.Price,
		Views:     p.Views,
		Likes:     p.Likes,
		UpdatedAt: p.UpdatedAt,
		CreatedAt: p.CreatedAt,
	}
}
