package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/creatorhub/domain"
)

const DefaultBloomRefreshInterval = time.Minute

// bloomRefreshWorker 定期把新发布的文章加入布隆过滤器
type bloomRefreshWorker struct {
	Posts    domain.PostUsecase
	interval time.Duration
}

var _ domain.Worker = (*bloomRefreshWorker)(nil)

func NewBloomRefreshWorker(p domain.PostUsecase, interval time.Duration) *bloomRefreshWorker {
	if interval <= 0 {
		interval = DefaultBloomRefreshInterval
	}
	return &bloomRefreshWorker{
		Posts:    p,
		interval: interval,
	}
}

func (b *bloomRefreshWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := b.Posts.RefreshBloomFilter(ctx); err != nil {
				logrus.Errorf("failed to refresh bloom filter: %v", err)
			}
		case <-ctx.Done():
			return
		}
	}
}
