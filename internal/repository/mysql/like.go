package mysql

import (
	"context"
	"slices"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/creatorhub/domain"
	"github.com/Guyuepp/creatorhub/internal/repository/mysql/model"
)

type likeRepository struct {
	DB *gorm.DB
}

var _ domain.LikeRepository = (*likeRepository)(nil)

func NewLikeRepository(db *gorm.DB) *likeRepository {
	return &likeRepository{db}
}

func (m *likeRepository) FetchUserLikedPosts(ctx context.Context, uid int64) ([]int64, error) {
	var res []int64
	err := m.DB.WithContext(ctx).
		Model(&model.PostLike{}).
		Where("user_id = ?", uid).
		Order("post_id DESC").
		Pluck("post_id", &res).Error
	if err != nil {
		return nil, err
	}
	return res, nil
}

func uniquePostIDs(likes ...[]domain.PostLike) []int64 {
	seen := make(map[int64]struct{})
	res := make([]int64, 0)
	for _, list := range likes {
		for _, l := range list {
			if _, ok := seen[l.PostID]; !ok {
				seen[l.PostID] = struct{}{}
				res = append(res, l.PostID)
			}
		}
	}
	slices.Sort(res)
	return res
}

func (m *likeRepository) ApplyLikeChanges(ctx context.Context, changes domain.LikeStateChanges) error {
	if len(changes.ToAdd) == 0 && len(changes.ToRemove) == 0 {
		return nil
	}
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		filteredAdd := make([]model.PostLike, 0, len(changes.ToAdd))
		if len(changes.ToAdd) > 0 {
			var validIDs []int64
			if err := tx.Model(&model.Post{}).
				Where("id IN ?", uniquePostIDs(changes.ToAdd)).
				Pluck("id", &validIDs).Error; err != nil {
				return err
			}

			valid := make(map[int64]bool, len(validIDs))
			for _, id := range validIDs {
				valid[id] = true
			}
			for _, row := range changes.ToAdd {
				if valid[row.PostID] {
					filteredAdd = append(filteredAdd, model.NewPostLikeFromDomain(row))
				} else {
					logrus.Warnf("Dropped orphan like for post %d", row.PostID)
				}
			}
		}

		for _, row := range changes.ToRemove {
			if err := tx.Where("post_id = ? AND user_id = ?", row.PostID, row.UserID).
				Delete(&model.PostLike{}).Error; err != nil {
				return err
			}
		}

		if len(filteredAdd) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&filteredAdd).Error; err != nil {
				return err
			}
		}

		// 直接按 post_likes 重算, 不做增量
		for _, pid := range uniquePostIDs(changes.ToAdd, changes.ToRemove) {
			if err := tx.Model(&model.Post{}).
				Where("id = ?", pid).
				UpdateColumn("likes", gorm.Expr("(SELECT COUNT(*) FROM post_likes WHERE post_id = ?)", pid)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
