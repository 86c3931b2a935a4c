package mysql

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Guyuepp/creatorhub/domain"
	"github.com/Guyuepp/creatorhub/internal/repository/mysql/model"
)

const defaultInsertBatch = 500

type similarityRepository struct {
	DB        *gorm.DB
	batchSize int
}

var _ domain.SimilarityRepository = (*similarityRepository)(nil)

func NewSimilarityRepository(db *gorm.DB, batchSize int) *similarityRepository {
	if batchSize <= 0 {
		batchSize = defaultInsertBatch
	}
	return &similarityRepository{
		DB:        db,
		batchSize: batchSize,
	}
}

// ReplaceAll 在同一个事务里清空并重写整张相似度表，
// InnoDB 的一致性读保证读者只会看到旧表或新表
func (m *similarityRepository) ReplaceAll(ctx context.Context, entries []domain.SimilarityEntry) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// TRUNCATE 在 MySQL 中会隐式提交，这里必须用 DELETE
		if err := tx.Where("1 = 1").Delete(&model.UserSimilarity{}).Error; err != nil {
			return fmt.Errorf("discard similarity relation: %w", err)
		}

		for start := 0; start < len(entries); start += m.batchSize {
			end := min(start+m.batchSize, len(entries))
			rows := make([]model.UserSimilarity, 0, end-start)
			for _, e := range entries[start:end] {
				rows = append(rows, model.NewUserSimilarityFromDomain(e))
			}
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("insert similarity batch at %d: %w", start, err)
			}
		}
		return nil
	})
}

func (m *similarityRepository) FetchNeighbors(ctx context.Context, userID int64, limit int) ([]domain.Neighbor, error) {
	var rows []model.NeighborRow
	err := m.DB.WithContext(ctx).
		Model(&model.UserSimilarity{}).
		Select("CASE WHEN user1_id = ? THEN user2_id ELSE user1_id END AS neighbor_id, similarity_score", userID).
		Where("(user1_id = ? OR user2_id = ?) AND similarity_score > 0", userID, userID).
		Order("similarity_score DESC, neighbor_id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Neighbor, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}
