package request

import "github.com/Guyuepp/creatorhub/domain"

type Comment struct {
	Content  string `json:"content" binding:"required,max=2000"`
	ParentID int64  `json:"parent_id" binding:"gte=0"`
}

// ToDomain: Request -> Domain
func (r *Comment) ToDomain(postID, userID int64) domain.Comment {
	return domain.Comment{
		PostID:   postID,
		UserID:   userID,
		Content:  r.Content,
		ParentID: r.ParentID,
	}
}
