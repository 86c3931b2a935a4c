package recommendation

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/creatorhub/domain"
	"github.com/Guyuepp/creatorhub/internal/metrics"
)

const (
	DefaultPopularTTL  = 5 * time.Minute
	popularCacheName   = "popular_posts"
	popularLoadTimeout = 10 * time.Second
)

type Service struct {
	simRepo    domain.SimilarityRepository
	prefRepo   domain.PreferenceRepository
	subRepo    domain.SubscriptionRepository
	postRepo   domain.PostRepository
	postCache  domain.PostCache
	popularTTL time.Duration
	sf         singleflight.Group
}

var _ domain.RecommendationUsecase = (*Service)(nil)

// NewService will create a new recommendation service object
func NewService(sim domain.SimilarityRepository, pref domain.PreferenceRepository, sub domain.SubscriptionRepository,
	p domain.PostRepository, pc domain.PostCache, popularTTL time.Duration) *Service {
	if popularTTL <= 0 {
		popularTTL = DefaultPopularTTL
	}
	return &Service{
		simRepo:    sim,
		prefRepo:   pref,
		subRepo:    sub,
		postRepo:   p,
		postCache:  pc,
		popularTTL: popularTTL,
	}
}

// NormalizeLimit clamps a requested list size into (0, MaxRecommendationLimit].
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return domain.DefaultRecommendationLimit
	}
	if limit > domain.MaxRecommendationLimit {
		return domain.MaxRecommendationLimit
	}
	return limit
}

// GetRecommendations ranks free posts for userID by what the nearest neighbors like.
// Users without neighbors get the most-viewed free posts instead.
func (s *Service) GetRecommendations(ctx context.Context, userID int64, limit int) ([]domain.RecommendationCandidate, domain.RecommendationSource, error) {
	if userID <= 0 {
		return nil, "", domain.ErrBadParamInput
	}
	limit = NormalizeLimit(limit)
	start := time.Now()

	neighbors, err := s.simRepo.FetchNeighbors(ctx, userID, domain.NeighborLimit)
	if err != nil {
		logrus.Errorf("failed to FetchNeighbors for user %d: %v", userID, err)
		return nil, "", err
	}

	var (
		res    []domain.RecommendationCandidate
		source domain.RecommendationSource
	)
	if len(neighbors) == 0 {
		source = domain.SourcePopular
		res, err = s.popular(ctx, limit)
	} else {
		source = domain.SourcePersonalized
		res, err = s.personalized(ctx, userID, neighbors, limit)
	}
	if err != nil {
		return nil, "", err
	}

	m := metrics.Get()
	m.RecommendationsServedTotal.WithLabelValues(string(source)).Inc()
	m.RecommendationDuration.WithLabelValues(string(source)).Observe(time.Since(start).Seconds())
	return res, source, nil
}

type creatorScore struct {
	sum   int
	count int
}

func (c creatorScore) avg() float64 {
	return float64(c.sum) / float64(c.count)
}

func (s *Service) personalized(ctx context.Context, userID int64, neighbors []domain.Neighbor, limit int) ([]domain.RecommendationCandidate, error) {
	neighborIDs := make([]int64, 0, len(neighbors))
	for _, n := range neighbors {
		neighborIDs = append(neighborIDs, n.UserID)
	}

	var (
		prefs      []domain.UserPreference
		subscribed []int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		prefs, err = s.prefRepo.FetchPositiveByUsers(gctx, neighborIDs)
		if err != nil {
			return fmt.Errorf("fetch neighbor preferences: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		subscribed, err = s.subRepo.FetchActiveCreatorIDs(gctx, userID)
		if err != nil {
			return fmt.Errorf("fetch subscriptions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		logrus.Errorf("failed to load ranking inputs for user %d: %v", userID, err)
		return nil, err
	}

	excluded := make(map[int64]struct{}, len(subscribed))
	for _, cid := range subscribed {
		excluded[cid] = struct{}{}
	}

	scores := make(map[int64]creatorScore)
	for _, p := range prefs {
		if p.Score <= 0 {
			continue
		}
		if _, ok := excluded[p.CreatorID]; ok {
			continue
		}
		cs := scores[p.CreatorID]
		cs.sum += p.Score
		cs.count++
		scores[p.CreatorID] = cs
	}
	if len(scores) == 0 {
		return []domain.RecommendationCandidate{}, nil
	}

	creatorIDs := make([]int64, 0, len(scores))
	for cid := range scores {
		creatorIDs = append(creatorIDs, cid)
	}
	sort.Slice(creatorIDs, func(i, j int) bool { return creatorIDs[i] < creatorIDs[j] })

	posts, err := s.postRepo.FetchFreeByCreators(ctx, creatorIDs)
	if err != nil {
		logrus.Errorf("failed to FetchFreeByCreators: %v", err)
		return nil, err
	}

	res := make([]domain.RecommendationCandidate, 0, len(posts))
	for _, p := range posts {
		if p.IsPaid {
			continue
		}
		cs, ok := scores[p.Creator.ID]
		if !ok {
			continue
		}
		res = append(res, domain.RecommendationCandidate{Post: p, Score: cs.avg()})
	}
	sort.SliceStable(res, func(i, j int) bool {
		a, b := res[i], res[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.Post.CreatedAt.Equal(b.Post.CreatedAt) {
			return a.Post.CreatedAt.After(b.Post.CreatedAt)
		}
		return a.Post.ID > b.Post.ID
	})
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (s *Service) popular(ctx context.Context, limit int) ([]domain.RecommendationCandidate, error) {
	m := metrics.Get()
	posts, expired, err := s.postCache.GetPopular(ctx, int64(limit))
	switch {
	case err == nil:
		m.CacheHitsTotal.WithLabelValues(popularCacheName).Inc()
		if expired {
			// 逻辑过期: 先返回旧数据，后台重建
			go func() {
				if _, err := s.loadPopular(context.Background(), limit); err != nil {
					logrus.Warnf("failed to refresh popular posts: %v", err)
				}
			}()
		}
	case errors.Is(err, domain.ErrCacheMiss):
		m.CacheMissesTotal.WithLabelValues(popularCacheName).Inc()
		posts, err = s.loadPopular(ctx, limit)
		if err != nil {
			return nil, err
		}
	default:
		logrus.Warnf("failed to GetPopular from redis: %v", err)
		posts, err = s.loadPopular(ctx, limit)
		if err != nil {
			return nil, err
		}
	}

	res := make([]domain.RecommendationCandidate, 0, len(posts))
	for _, p := range posts {
		res = append(res, domain.RecommendationCandidate{Post: p, Score: float64(p.Views)})
	}
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

// loadPopular reads the most-viewed free posts from the database and refreshes the cache.
// Concurrent loads for the same limit share one query, which outlives the request that started it.
func (s *Service) loadPopular(ctx context.Context, limit int) ([]domain.Post, error) {
	v, err, _ := s.sf.Do(fmt.Sprintf("popular:%d", limit), func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), popularLoadTimeout)
		defer cancel()

		posts, err := s.postRepo.FetchMostViewedFree(ctx, int64(limit))
		if err != nil {
			logrus.Errorf("failed to FetchMostViewedFree from repo: %v", err)
			return nil, err
		}
		if err := s.postCache.SetPopular(ctx, int64(limit), posts, s.popularTTL); err != nil {
			logrus.Warnf("failed to SetPopular to redis: %v", err)
		}
		return posts, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Post), nil
}
