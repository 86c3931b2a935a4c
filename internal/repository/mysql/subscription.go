package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/creatorhub/domain"
	"github.com/Guyuepp/creatorhub/internal/repository/mysql/model"
)

type subscriptionRepository struct {
	DB  *gorm.DB
	now func() time.Time
}

var _ domain.SubscriptionRepository = (*subscriptionRepository)(nil)

func NewSubscriptionRepository(db *gorm.DB) *subscriptionRepository {
	return &subscriptionRepository{
		DB:  db,
		now: time.Now,
	}
}

func (m *subscriptionRepository) FetchAll(ctx context.Context, activeOnly bool) ([]domain.Subscription, error) {
	q := m.DB.WithContext(ctx).
		Model(&model.Subscription{}).
		Select("user_id, creator_id, expires_at")
	if activeOnly {
		q = q.Where("expires_at > ?", m.now())
	}

	var rows []model.Subscription
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	res := make([]domain.Subscription, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (m *subscriptionRepository) FetchActiveCreatorIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := m.DB.WithContext(ctx).
		Model(&model.Subscription{}).
		Distinct("creator_id").
		Where("user_id = ? AND expires_at > ?", userID, m.now()).
		Pluck("creator_id", &ids).Error
	return ids, err
}

func (m *subscriptionRepository) IsActive(ctx context.Context, userID, creatorID int64) (bool, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.Subscription{}).
		Where("user_id = ? AND creator_id = ? AND expires_at > ?", userID, creatorID, m.now()).
		Count(&count).Error
	return count > 0, err
}
