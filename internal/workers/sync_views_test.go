package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/creatorhub/domain"
	"github.com/Guyuepp/creatorhub/domain/mocks"
)

func TestSyncViewsFlush(t *testing.T) {
	repo := new(mocks.PostRepository)
	cache := new(mocks.PostCache)

	cache.On("FetchAndResetViews", mock.Anything).Return(map[int64]int64{1: 5, 2: 0, 3: 7, 4: 1}, nil).Once()
	repo.On("AddViews", mock.Anything, int64(1), int64(5)).Return(nil).Once()
	repo.On("AddViews", mock.Anything, int64(3), int64(7)).Return(domain.ErrNotFound).Once()
	repo.On("AddViews", mock.Anything, int64(4), int64(1)).Return(errors.New("deadlock")).Once()
	cache.On("RestoreViews", mock.Anything, int64(4), int64(1)).Return(nil).Once()

	w := NewSyncViewsWorker(repo, cache, time.Second)
	w.flush(context.Background())

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
	repo.AssertNotCalled(t, "AddViews", mock.Anything, int64(2), mock.Anything)
	cache.AssertNotCalled(t, "RestoreViews", mock.Anything, int64(3), mock.Anything)
}

func TestSyncViewsFlushRestoresFailedViews(t *testing.T) {
	repo := new(mocks.PostRepository)
	cache := new(mocks.PostCache)

	cache.On("FetchAndResetViews", mock.Anything).Return(map[int64]int64{7: 12}, nil).Once()
	repo.On("AddViews", mock.Anything, int64(7), int64(12)).Return(errors.New("connection refused")).Once()
	cache.On("RestoreViews", mock.Anything, int64(7), int64(12)).Return(errors.New("redis down")).Once()

	NewSyncViewsWorker(repo, cache, time.Second).flush(context.Background())

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestSyncViewsFlushCacheError(t *testing.T) {
	repo := new(mocks.PostRepository)
	cache := new(mocks.PostCache)
	cache.On("FetchAndResetViews", mock.Anything).Return(nil, errors.New("redis down")).Once()

	NewSyncViewsWorker(repo, cache, time.Second).flush(context.Background())
	repo.AssertNotCalled(t, "AddViews", mock.Anything, mock.Anything, mock.Anything)
}

func TestSyncViewsStartFlushesOnShutdown(t *testing.T) {
	repo := new(mocks.PostRepository)
	cache := new(mocks.PostCache)
	cache.On("FetchAndResetViews", mock.Anything).Return(map[int64]int64{9: 2}, nil)
	repo.On("AddViews", mock.Anything, int64(9), int64(2)).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewSyncViewsWorker(repo, cache, time.Hour).Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
	repo.AssertCalled(t, "AddViews", mock.Anything, int64(9), int64(2))
}
