package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/creatorhub/domain"
	"github.com/Guyuepp/creatorhub/internal/repository/mysql/model"
)

type preferenceRepository struct {
	DB *gorm.DB
}

var _ domain.PreferenceRepository = (*preferenceRepository)(nil)

func NewPreferenceRepository(db *gorm.DB) *preferenceRepository {
	return &preferenceRepository{DB: db}
}

func (m *preferenceRepository) Upsert(ctx context.Context, p *domain.UserPreference) error {
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now()
	}
	row := model.NewUserPreferenceFromDomain(p)
	return m.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "creator_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"preference_score", "updated_at"}),
		}).
		Create(row).Error
}

func (m *preferenceRepository) FetchPositiveByUsers(ctx context.Context, userIDs []int64) ([]domain.UserPreference, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var rows []model.UserPreference
	err := m.DB.WithContext(ctx).
		Where("user_id IN ? AND preference_score > 0", userIDs).
		Order("creator_id, user_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.UserPreference, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}
