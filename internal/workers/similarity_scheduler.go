package workers

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/creatorhub/domain"
)

const DefaultSimilaritySchedule = "0 3 * * *"

// similarityScheduler 按 cron 表达式定时重建用户相似度
type similarityScheduler struct {
	usecase  domain.SimilarityUsecase
	schedule string
	cron     *cron.Cron
}

var _ domain.Worker = (*similarityScheduler)(nil)

// NewSimilarityScheduler parses schedule as a standard five-field cron expression.
func NewSimilarityScheduler(u domain.SimilarityUsecase, schedule string) (*similarityScheduler, error) {
	if schedule == "" {
		schedule = DefaultSimilaritySchedule
	}
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid similarity schedule %q: %w", schedule, err)
	}
	return &similarityScheduler{
		usecase:  u,
		schedule: schedule,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
	}, nil
}

// Start runs the schedule until ctx is done, then waits for a running job to finish.
func (s *similarityScheduler) Start(ctx context.Context) {
	_, err := s.cron.AddFunc(s.schedule, func() { s.run(ctx) })
	if err != nil {
		logrus.Errorf("failed to schedule similarity rebuild: %v", err)
		return
	}
	s.cron.Start()
	logrus.Infof("similarity rebuild scheduled at %q", s.schedule)

	<-ctx.Done()
	logrus.Info("shutting down similarity scheduler...")
	<-s.cron.Stop().Done()
}

func (s *similarityScheduler) run(ctx context.Context) {
	res, err := s.usecase.Rebuild(ctx)
	if err != nil {
		logrus.Errorf("scheduled similarity rebuild failed: %v", err)
		return
	}
	logrus.Infof("scheduled similarity rebuild done: %d users, %d pairs in %s", res.Users, res.Pairs, res.Duration)
}
