package domain

import (
	"context"
	"time"
)

// MaxCommentLength caps a comment body in runes.
const MaxCommentLength = 2000

// Comment domain model
type Comment struct {
	ID        int64
	PostID    int64
	UserID    int64
	Content   string
	ParentID  int64 // 0 for a top level comment
	RootID    int64 // top level comment of the thread, 0 for a top level comment
	CreatedAt time.Time

	// Replies 子评论列表, 只在一级评论上填充
	Replies []*Comment
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	Create(ctx context.Context, c *Comment) error
	// Delete removes the caller's own comment together with its thread.
	// Returns ErrForbidden if no such comment belongs to userID.
	Delete(ctx context.Context, postID, commentID, userID int64) error
	FetchByPost(ctx context.Context, postID int64, cursor string, limit int64) ([]*Comment, string, error)
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	// Store inserts the comment and sets its ID.
	Store(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, postID, commentID, userID int64) error
	GetByID(ctx context.Context, id int64) (*Comment, error)
	// FetchRoots 获取一级评论, 新的在前
	FetchRoots(ctx context.Context, postID int64, cursor string, limit int64) ([]*Comment, error)
	// FetchReplies 获取指定根评论ID列表的所有子回复, 旧的在前
	FetchReplies(ctx context.Context, rootIDs []int64) ([]*Comment, error)
}
