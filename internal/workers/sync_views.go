package workers

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/creatorhub/domain"
	"github.com/Guyuepp/creatorhub/internal/metrics"
)

const (
	DefaultViewsSyncInterval = 10 * time.Second
	finalFlushTimeout        = 5 * time.Second
)

// syncViewsWorker 定期把 Redis 中缓冲的浏览量写回数据库
type syncViewsWorker struct {
	PostRepo  domain.PostRepository
	PostCache domain.PostCache
	interval  time.Duration
}

var _ domain.Worker = (*syncViewsWorker)(nil)

func NewSyncViewsWorker(pr domain.PostRepository, pc domain.PostCache, interval time.Duration) *syncViewsWorker {
	if interval <= 0 {
		interval = DefaultViewsSyncInterval
	}
	return &syncViewsWorker{
		PostRepo:  pr,
		PostCache: pc,
		interval:  interval,
	}
}

func (s *syncViewsWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.flush(ctx)
		case <-ctx.Done():
			logrus.Info("shutting down SyncViewsWorker, flushing remaining views...")
			fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalFlushTimeout)
			s.flush(fctx)
			cancel()
			return
		}
	}
}

func (s *syncViewsWorker) flush(ctx context.Context) {
	views, err := s.PostCache.FetchAndResetViews(ctx)
	if err != nil {
		logrus.Errorf("failed to FetchAndResetViews from redis: %v", err)
		return
	}

	var flushed int64
	for id, delta := range views {
		if delta == 0 {
			continue
		}
		if err := s.PostRepo.AddViews(ctx, id, delta); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				logrus.Warnf("dropping %d views of deleted post %d", delta, id)
				continue
			}
			logrus.Errorf("failed to AddViews for post %d: %v", id, err)
			// 写回缓冲区，下一轮再试
			if err := s.PostCache.RestoreViews(ctx, id, delta); err != nil {
				logrus.Errorf("lost %d views of post %d: %v", delta, id, err)
			}
			continue
		}
		flushed += delta
	}
	if flushed > 0 {
		metrics.Get().ViewsFlushedTotal.Add(float64(flushed))
		logrus.Debugf("flushed %d views for %d posts", flushed, len(views))
	}
}
