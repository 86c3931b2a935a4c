package comment

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/creatorhub/domain"
	"github.com/Guyuepp/creatorhub/internal/repository"
)

type Service struct {
	commentRepo domain.CommentRepository
	posts       domain.PostExistenceChecker
	now         func() time.Time
}

var _ domain.CommentUsecase = (*Service)(nil)

func NewService(commentRepo domain.CommentRepository, posts domain.PostExistenceChecker) *Service {
	return &Service{
		commentRepo: commentRepo,
		posts:       posts,
		now:         time.Now,
	}
}

// Create stores a comment on a post. A reply joins the thread of its parent.
func (s *Service) Create(ctx context.Context, c *domain.Comment) error {
	if c.PostID <= 0 || c.UserID <= 0 || c.ParentID < 0 {
		return domain.ErrBadParamInput
	}
	c.Content = strings.TrimSpace(c.Content)
	if c.Content == "" || utf8.RuneCountInString(c.Content) > domain.MaxCommentLength {
		return domain.ErrBadParamInput
	}
	if err := s.posts.EnsureExists(ctx, c.PostID); err != nil {
		return err
	}

	c.RootID = 0
	if c.ParentID > 0 {
		parent, err := s.commentRepo.GetByID(ctx, c.ParentID)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrBadParamInput
		} else if err != nil {
			return err
		}
		if parent.PostID != c.PostID {
			return domain.ErrBadParamInput
		}
		c.RootID = parent.RootID
		if c.RootID == 0 {
			c.RootID = parent.ID
		}
	}

	c.CreatedAt = s.now()
	if err := s.commentRepo.Store(ctx, c); err != nil {
		logrus.Errorf("failed to Store comment on post %d: %v", c.PostID, err)
		return err
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, postID, commentID, userID int64) error {
	if postID <= 0 || commentID <= 0 || userID <= 0 {
		return domain.ErrBadParamInput
	}
	return s.commentRepo.Delete(ctx, postID, commentID, userID)
}

// FetchByPost returns one page of top level comments, newest first, each with its replies.
func (s *Service) FetchByPost(ctx context.Context, postID int64, cursor string, limit int64) ([]*domain.Comment, string, error) {
	if err := s.posts.EnsureExists(ctx, postID); err != nil {
		return nil, "", err
	}
	repository.PageVerify(&limit)

	res, err := s.commentRepo.FetchRoots(ctx, postID, cursor, limit)
	if err != nil {
		return nil, "", err
	}
	if len(res) == 0 {
		return []*domain.Comment{}, "", nil
	}

	rootIDs := make([]int64, len(res))
	for i, c := range res {
		rootIDs[i] = c.ID
	}

	replyMap := make(map[int64][]*domain.Comment)
	replies, err := s.commentRepo.FetchReplies(ctx, rootIDs)
	if err != nil {
		// 回复加载失败时仍返回一级评论
		logrus.Errorf("failed to FetchReplies for post %d: %v", postID, err)
	}
	for _, r := range replies {
		replyMap[r.RootID] = append(replyMap[r.RootID], r)
	}
	for _, r := range res {
		if list, ok := replyMap[r.ID]; ok {
			r.Replies = list
		} else {
			r.Replies = []*domain.Comment{}
		}
	}

	var nextCursor string
	if int64(len(res)) == limit {
		last := res[len(res)-1]
		nextCursor = repository.EncodeCursor(last.CreatedAt, last.ID)
	}
	return res, nextCursor, nil
}
