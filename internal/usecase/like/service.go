package like

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/creatorhub/domain"
)

type Service struct {
	likeRepo  domain.LikeRepository
	likeCache domain.LikeCache
	posts     domain.PostExistenceChecker
	syncer    domain.SyncLikesWorker
	now       func() time.Time
}

var _ domain.LikeUsecase = (*Service)(nil)

func NewService(lr domain.LikeRepository, lc domain.LikeCache, posts domain.PostExistenceChecker, s domain.SyncLikesWorker) *Service {
	return &Service{
		likeRepo:  lr,
		likeCache: lc,
		posts:     posts,
		syncer:    s,
		now:       time.Now,
	}
}

// ToggleLike flips the like in Redis right away; the database follows in batches.
func (s *Service) ToggleLike(ctx context.Context, postID, userID int64) (bool, error) {
	if postID <= 0 || userID <= 0 {
		return false, domain.ErrBadParamInput
	}
	if err := s.posts.EnsureExists(ctx, postID); err != nil {
		return false, err
	}

	like := domain.PostLike{PostID: postID, UserID: userID, CreatedAt: s.now()}
	liked, err := s.likeCache.ToggleLike(ctx, like)
	if errors.Is(err, domain.ErrCacheMiss) {
		liked, err = s.reloadAndToggle(ctx, like)
	}
	if err != nil {
		logrus.Errorf("failed to ToggleLike (post %d, user %d): %v", postID, userID, err)
		return false, err
	}

	action := domain.Unlike
	if liked {
		action = domain.Like
	}
	s.syncer.Send(like, action)
	return liked, nil
}

func (s *Service) reloadAndToggle(ctx context.Context, like domain.PostLike) (bool, error) {
	ids, err := s.likeRepo.FetchUserLikedPosts(ctx, like.UserID)
	if err != nil {
		return false, err
	}
	if err := s.likeCache.SetUserLikedPosts(ctx, like.UserID, ids); err != nil {
		return false, err
	}
	return s.likeCache.ToggleLike(ctx, like)
}
