package preference

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/creatorhub/domain"
)

type Service struct {
	prefRepo domain.PreferenceRepository
	now      func() time.Time
}

var _ domain.PreferenceUsecase = (*Service)(nil)

func NewService(p domain.PreferenceRepository) *Service {
	return &Service{
		prefRepo: p,
		now:      time.Now,
	}
}

// Rate records a user's opinion of a creator, replacing any earlier rating.
func (s *Service) Rate(ctx context.Context, p *domain.UserPreference) error {
	if p.UserID <= 0 || p.CreatorID <= 0 {
		return domain.ErrBadParamInput
	}
	if p.Score < domain.MinPreferenceScore || p.Score > domain.MaxPreferenceScore {
		return domain.ErrBadParamInput
	}
	p.UpdatedAt = s.now()
	if err := s.prefRepo.Upsert(ctx, p); err != nil {
		logrus.Errorf("failed to Upsert preference (user %d, creator %d): %v", p.UserID, p.CreatorID, err)
		return err
	}
	return nil
}
