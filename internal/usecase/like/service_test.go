package like

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/creatorhub/domain"
	"github.com/Guyuepp/creatorhub/domain/mocks"
)

var fixedNow = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

type deps struct {
	repo   *mocks.LikeRepository
	cache  *mocks.LikeCache
	posts  *mocks.PostUsecase
	syncer *mocks.SyncLikesWorker
}

func newService() (*Service, deps) {
	d := deps{
		repo:   new(mocks.LikeRepository),
		cache:  new(mocks.LikeCache),
		posts:  new(mocks.PostUsecase),
		syncer: new(mocks.SyncLikesWorker),
	}
	svc := NewService(d.repo, d.cache, d.posts, d.syncer)
	svc.now = func() time.Time { return fixedNow }
	return svc, d
}

func TestToggleLike(t *testing.T) {
	like := domain.PostLike{PostID: 7, UserID: 9, CreatedAt: fixedNow}

	t.Run("like", func(t *testing.T) {
		svc, d := newService()
		d.posts.On("EnsureExists", mock.Anything, int64(7)).Return(nil).Once()
		d.cache.On("ToggleLike", mock.Anything, like).Return(true, nil).Once()
		d.syncer.On("Send", like, domain.Like).Once()

		liked, err := svc.ToggleLike(context.Background(), 7, 9)
		require.NoError(t, err)
		assert.True(t, liked)
		d.syncer.AssertExpectations(t)
	})

	t.Run("unlike", func(t *testing.T) {
		svc, d := newService()
		d.posts.On("EnsureExists", mock.Anything, int64(7)).Return(nil).Once()
		d.cache.On("ToggleLike", mock.Anything, like).Return(false, nil).Once()
		d.syncer.On("Send", like, domain.Unlike).Once()

		liked, err := svc.ToggleLike(context.Background(), 7, 9)
		require.NoError(t, err)
		assert.False(t, liked)
		d.syncer.AssertExpectations(t)
	})
}

func TestToggleLikeLoadsLikedSetOnMiss(t *testing.T) {
	svc, d := newService()
	like := domain.PostLike{PostID: 7, UserID: 9, CreatedAt: fixedNow}

	d.posts.On("EnsureExists", mock.Anything, int64(7)).Return(nil).Once()
	d.cache.On("ToggleLike", mock.Anything, like).Return(false, domain.ErrCacheMiss).Once()
	d.repo.On("FetchUserLikedPosts", mock.Anything, int64(9)).Return([]int64{7, 2}, nil).Once()
	d.cache.On("SetUserLikedPosts", mock.Anything, int64(9), []int64{7, 2}).Return(nil).Once()
	d.cache.On("ToggleLike", mock.Anything, like).Return(false, nil).Once()
	d.syncer.On("Send", like, domain.Unlike).Once()

	liked, err := svc.ToggleLike(context.Background(), 7, 9)
	require.NoError(t, err)
	assert.False(t, liked)
	d.cache.AssertExpectations(t)
	d.repo.AssertExpectations(t)
	d.syncer.AssertExpectations(t)
}

func TestToggleLikeErrors(t *testing.T) {
	t.Run("bad input", func(t *testing.T) {
		svc, _ := newService()
		_, err := svc.ToggleLike(context.Background(), 0, 9)
		assert.ErrorIs(t, err, domain.ErrBadParamInput)
	})

	t.Run("unknown post", func(t *testing.T) {
		svc, d := newService()
		d.posts.On("EnsureExists", mock.Anything, int64(404)).Return(domain.ErrNotFound).Once()

		_, err := svc.ToggleLike(context.Background(), 404, 9)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		d.cache.AssertNotCalled(t, "ToggleLike", mock.Anything, mock.Anything)
	})

	t.Run("cache down", func(t *testing.T) {
		svc, d := newService()
		d.posts.On("EnsureExists", mock.Anything, int64(7)).Return(nil).Once()
		d.cache.On("ToggleLike", mock.Anything, mock.Anything).Return(false, errors.New("redis down")).Once()

		_, err := svc.ToggleLike(context.Background(), 7, 9)
		assert.Error(t, err)
		d.syncer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("reload fails", func(t *testing.T) {
		svc, d := newService()
		d.posts.On("EnsureExists", mock.Anything, int64(7)).Return(nil).Once()
		d.cache.On("ToggleLike", mock.Anything, mock.Anything).Return(false, domain.ErrCacheMiss).Once()
		d.repo.On("FetchUserLikedPosts", mock.Anything, int64(9)).Return(nil, errors.New("timeout")).Once()

		_, err := svc.ToggleLike(context.Background(), 7, 9)
		assert.Error(t, err)
		d.syncer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}
