package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/creatorhub/domain/mocks"
)

func TestBloomRefreshWorker(t *testing.T) {
	posts := new(mocks.PostUsecase)
	refreshed := make(chan struct{}, 1)
	posts.On("RefreshBloomFilter", mock.Anything).Return(errors.New("timeout")).Once()
	posts.On("RefreshBloomFilter", mock.Anything).Run(func(mock.Arguments) {
		select {
		case refreshed <- struct{}{}:
		default:
		}
	}).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewBloomRefreshWorker(posts, 10*time.Millisecond).Start(ctx)
		close(done)
	}()

	select {
	case <-refreshed:
	case <-time.After(time.Second):
		t.Fatal("bloom filter was not refreshed")
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
