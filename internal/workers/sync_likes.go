package workers

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/creatorhub/domain"
)

const (
	DefaultLikesSyncInterval = time.Second
	likesBatchSize           = 100
	likesQueueSize           = 1024
)

type likeTask struct {
	like   domain.PostLike
	action domain.LikeAction
}

// syncLikesWorker 攒批把点赞变更写回数据库
type syncLikesWorker struct {
	LikeRepo domain.LikeRepository
	ch       chan likeTask
	interval time.Duration
}

var _ domain.SyncLikesWorker = (*syncLikesWorker)(nil)

func NewSyncLikesWorker(lr domain.LikeRepository, interval time.Duration) *syncLikesWorker {
	if interval <= 0 {
		interval = DefaultLikesSyncInterval
	}
	return &syncLikesWorker{
		LikeRepo: lr,
		ch:       make(chan likeTask, likesQueueSize),
		interval: interval,
	}
}

// Send adds a like record if action == Like, and removes a like record if action == Unlike
func (s *syncLikesWorker) Send(like domain.PostLike, action domain.LikeAction) {
	select {
	case s.ch <- likeTask{like, action}:
	default:
		logrus.Warnf("SyncLikesWorker's channel is full, %s of post %d by user %d dropped", action, like.PostID, like.UserID)
	}
}

func (s *syncLikesWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	batch := make([]likeTask, 0, likesBatchSize)
	for {
		select {
		case task := <-s.ch:
			batch = append(batch, task)
			if len(batch) == likesBatchSize {
				s.flush(ctx, batch)
				batch = make([]likeTask, 0, likesBatchSize)
			}
		case <-ticker.C:
			s.flush(ctx, batch)
			batch = make([]likeTask, 0, likesBatchSize)
		case <-ctx.Done():
			logrus.Info("shutting down SyncLikesWorker, flushing remaining tasks...")
		drain:
			for {
				select {
				case task := <-s.ch:
					batch = append(batch, task)
				default:
					break drain
				}
			}
			fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalFlushTimeout)
			s.flush(fctx, batch)
			cancel()
			return
		}
	}
}

type taskKey struct {
	pid, uid int64
}

// flush keeps only the last action per (post, user) pair.
func (s *syncLikesWorker) flush(ctx context.Context, batch []likeTask) {
	if len(batch) == 0 {
		return
	}
	latest := make(map[taskKey]likeTask, len(batch))
	for _, t := range batch {
		latest[taskKey{pid: t.like.PostID, uid: t.like.UserID}] = t
	}

	var changes domain.LikeStateChanges
	for _, t := range latest {
		switch t.action {
		case domain.Like:
			changes.ToAdd = append(changes.ToAdd, t.like)
		case domain.Unlike:
			changes.ToRemove = append(changes.ToRemove, t.like)
		default:
			logrus.Errorf("Unsupported action: %v", t.action)
		}
	}
	slices.SortFunc(changes.ToAdd, compareLikes)
	slices.SortFunc(changes.ToRemove, compareLikes)

	if err := s.LikeRepo.ApplyLikeChanges(ctx, changes); err != nil {
		logrus.Errorf("failed to ApplyLikeChanges (%d adds, %d removes): %v", len(changes.ToAdd), len(changes.ToRemove), err)
	}
}

func compareLikes(a, b domain.PostLike) int {
	if c := cmp.Compare(a.PostID, b.PostID); c != 0 {
		return c
	}
	return cmp.Compare(a.UserID, b.UserID)
}
