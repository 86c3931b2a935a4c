package response

import (
	"github.com/Guyuepp/creatorhub/domain"
)

type Post struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	CreatorID   int64   `json:"creator_id"`
	CreatorName string  `json:"creator_name"`
	IsPaid      bool    `json:"is_paid"`
	Price       float64 `json:"price"`
	Views       int64   `json:"views"`
	Likes       int64   `json:"likes"`
	UpdatedAt   string  `json:"updated_at"`
	CreatedAt   string  `json:"created_at"`
}

// NewPostFromDomain: Domain -> Response
func NewPostFromDomain(p *domain.Post) Post {
	return Post{
		ID:          p.ID,
		Title:       p.Title,
		Content:     p.Content,
		CreatorID:   p.Creator.ID,
		CreatorName: p.Creator.Name,
		IsPaid:      p.IsPaid,
		Price:       p.Price,
		Views:       p.Views,
		Likes:       p.Likes,
		UpdatedAt:   p.UpdatedAt.Format("2006-01-02 15:04:05"),
		CreatedAt:   p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
