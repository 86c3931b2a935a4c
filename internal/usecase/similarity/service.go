package similarity

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/creatorhub/domain"
	"github.com/Guyuepp/creatorhub/internal/metrics"
)

const (
	rebuildKey     = "similarity:rebuild"
	releaseTimeout = 5 * time.Second
)

// Options tunes a rebuild.
type Options struct {
	// ActiveOnly limits subscription sets to rows that have not expired.
	ActiveOnly bool
	// MaxUsers fails the run when more users hold subscriptions. 0 disables the cap.
	MaxUsers int
}

type Service struct {
	subRepo domain.SubscriptionRepository
	simRepo domain.SimilarityRepository
	locker  domain.RebuildLocker
	opts    Options
	sf      singleflight.Group
}

var _ domain.SimilarityUsecase = (*Service)(nil)

// NewService will create a new similarity service object
func NewService(s domain.SubscriptionRepository, r domain.SimilarityRepository, l domain.RebuildLocker, opts Options) *Service {
	return &Service{
		subRepo: s,
		simRepo: r,
		locker:  l,
		opts:    opts,
	}
}

// Rebuild recomputes the similarity relation from subscriptions and swaps it in.
// Callers that arrive while a rebuild in this process is running share its result;
// a rebuild held by another process yields domain.ErrRebuildInProgress.
func (s *Service) Rebuild(ctx context.Context) (domain.RebuildResult, error) {
	v, err, shared := s.sf.Do(rebuildKey, func() (interface{}, error) {
		return s.rebuild(ctx)
	})
	if shared {
		logrus.Debug("joined an in-flight similarity rebuild")
	}
	if err != nil {
		return domain.RebuildResult{}, err
	}
	return v.(domain.RebuildResult), nil
}

func (s *Service) rebuild(ctx context.Context) (res domain.RebuildResult, err error) {
	m := metrics.Get()
	start := time.Now()

	release, err := s.locker.Acquire(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrRebuildInProgress) {
			m.SimilarityRebuildsTotal.WithLabelValues("busy").Inc()
			logrus.Warn("similarity rebuild skipped: lock held by another process")
		} else {
			m.SimilarityRebuildsTotal.WithLabelValues("failed").Inc()
			logrus.Errorf("failed to acquire similarity lock: %v", err)
		}
		return res, err
	}
	defer func() {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
		defer cancel()
		if rerr := release(rctx); rerr != nil {
			logrus.Errorf("failed to release similarity lock: %v", rerr)
		}
	}()

	defer func() {
		if err != nil {
			m.SimilarityRebuildsTotal.WithLabelValues("failed").Inc()
			logrus.WithFields(logrus.Fields{
				"users":       res.Users,
				"active_only": s.opts.ActiveOnly,
			}).Errorf("similarity rebuild failed, previous relation kept: %v", err)
		}
	}()

	subs, err := s.subRepo.FetchAll(ctx, s.opts.ActiveOnly)
	if err != nil {
		return res, err
	}

	entries, users, err := ComputeSimilarity(ctx, subs, s.opts.MaxUsers)
	res.Users = users
	if err != nil {
		return res, err
	}

	if err = s.simRepo.ReplaceAll(ctx, entries); err != nil {
		return res, err
	}

	res.Pairs = len(entries)
	res.Duration = time.Since(start)

	m.SimilarityRebuildsTotal.WithLabelValues("success").Inc()
	m.SimilarityRebuildDuration.Observe(res.Duration.Seconds())
	m.SimilarityUsers.Set(float64(res.Users))
	m.SimilarityPairs.Set(float64(res.Pairs))
	logrus.WithFields(logrus.Fields{
		"users":       res.Users,
		"pairs":       res.Pairs,
		"subs":        len(subs),
		"active_only": s.opts.ActiveOnly,
		"duration":    res.Duration.String(),
	}).Info("similarity relation rebuilt")
	return res, nil
}
