package post

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/creatorhub/domain"
	"github.com/Guyuepp/creatorhub/internal/repository"
)

const (
	bloomInitBatch      = 1000
	bloomRefreshTimeout = 30 * time.Second
)

type Service struct {
	postRepo  domain.PostRepository
	postCache domain.PostCache
	subRepo   domain.SubscriptionRepository
	bloomRepo domain.BloomRepository

	// lastBloomID is the largest post id loaded into the bloom filter
	lastBloomID atomic.Int64
	sf          singleflight.Group
}

var _ domain.PostUsecase = (*Service)(nil)

// NewService will create a new post service object
func NewService(p domain.PostRepository, pc domain.PostCache, s domain.SubscriptionRepository, b domain.BloomRepository) *Service {
	return &Service{
		postRepo:  p,
		postCache: pc,
		subRepo:   s,
		bloomRepo: b,
	}
}

// FetchFeed returns one page of free posts and the cursor of the next page.
// nextCursor is empty on the last page.
func (s *Service) FetchFeed(ctx context.Context, cursor string, num int64) (res []domain.Post, nextCursor string, err error) {
	repository.PageVerify(&num)
	res, err = s.postRepo.FetchFree(ctx, cursor, num)
	if err != nil {
		return nil, "", err
	}
	if int64(len(res)) == num {
		last := res[len(res)-1]
		nextCursor = repository.EncodeCursor(last.CreatedAt, last.ID)
	}
	return res, nextCursor, nil
}

// EnsureExists returns ErrNotFound when the post certainly does not exist.
// Ids above the loaded range may belong to posts published after the last
// refresh, so those pull the new ids in before answering.
func (s *Service) EnsureExists(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrNotFound
	}
	exists, err := s.bloomRepo.Exists(ctx, id)
	if err != nil {
		// 过滤器不可用时直接查库
		logrus.Warnf("bloom filter check failed for post %d: %v", id, err)
		return nil
	}
	if exists {
		return nil
	}
	if id <= s.lastBloomID.Load() {
		return domain.ErrNotFound
	}

	if err := s.RefreshBloomFilter(ctx); err != nil {
		logrus.Warnf("failed to refresh bloom filter for post %d: %v", id, err)
		return nil
	}
	exists, err = s.bloomRepo.Exists(ctx, id)
	if err != nil {
		logrus.Warnf("bloom filter check failed for post %d: %v", id, err)
		return nil
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id int64, viewerID int64) (domain.Post, error) {
	if err := s.EnsureExists(ctx, id); err != nil {
		return domain.Post{}, err
	}

	res, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}

	if res.IsPaid {
		if viewerID <= 0 {
			return domain.Post{}, domain.ErrForbidden
		}
		// 作者本人总能看到自己的付费内容
		if viewerID != res.Creator.UserID {
			ok, err := s.subRepo.IsActive(ctx, viewerID, res.Creator.ID)
			if err != nil {
				return domain.Post{}, err
			}
			if !ok {
				return domain.Post{}, domain.ErrForbidden
			}
		}
	}

	deltaViews, err := s.postCache.IncrViews(ctx, id)
	if err != nil {
		logrus.Errorf("failed to IncrViews from redis: %v", err)
		return res, nil
	}
	res.Views += deltaViews
	return res, nil
}

// InitBloomFilter loads every post id into the bloom filter in id order.
func (s *Service) InitBloomFilter(ctx context.Context) error {
	s.lastBloomID.Store(0)
	if err := s.RefreshBloomFilter(ctx); err != nil {
		return err
	}
	logrus.Infof("bloom filter loaded up to post %d", s.lastBloomID.Load())
	return nil
}

// RefreshBloomFilter adds the posts created since the last load.
// Concurrent refreshes share one pass.
func (s *Service) RefreshBloomFilter(ctx context.Context) error {
	_, err, _ := s.sf.Do("bloom:refresh", func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), bloomRefreshTimeout)
		defer cancel()
		return nil, s.loadNewIDs(ctx)
	})
	return err
}

func (s *Service) loadNewIDs(ctx context.Context) error {
	cursor := s.lastBloomID.Load()
	total := 0
	for {
		ids, err := s.postRepo.FetchIDs(ctx, cursor, bloomInitBatch)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			break
		}
		if err := s.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		total += len(ids)
		cursor = ids[len(ids)-1]
		s.lastBloomID.Store(cursor)
		if len(ids) < bloomInitBatch {
			break
		}
	}
	if total > 0 {
		logrus.Debugf("added %d post ids to bloom filter", total)
	}
	return nil
}
