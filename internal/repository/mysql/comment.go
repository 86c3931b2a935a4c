package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Guyuepp/creatorhub/domain"
	"github.com/Guyuepp/creatorhub/internal/repository"
	"github.com/Guyuepp/creatorhub/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func toDomainComments(rows []model.Comment) []*domain.Comment {
	res := make([]*domain.Comment, 0, len(rows))
	for i := range rows {
		c := rows[i].ToDomain()
		res = append(res, &c)
	}
	return res
}

// Delete removes the comment if it belongs to uid, and every reply of its thread.
func (c *commentRepository) Delete(ctx context.Context, postID, commentID, uid int64) error {
	return c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND post_id = ? AND user_id = ?", commentID, postID, uid).Delete(&model.Comment{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrForbidden
		}
		return tx.Where("root_id = ?", commentID).Delete(&model.Comment{}).Error
	})
}

func (c *commentRepository) FetchReplies(ctx context.Context, rootIDs []int64) ([]*domain.Comment, error) {
	if len(rootIDs) == 0 {
		return []*domain.Comment{}, nil
	}
	var comments []model.Comment
	err := c.DB.WithContext(ctx).
		Where("root_id IN ?", rootIDs).
		Order("created_at, id").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return toDomainComments(comments), nil
}

func (c *commentRepository) FetchRoots(ctx context.Context, postID int64, cursor string, limit int64) ([]*domain.Comment, error) {
	repository.PageVerify(&limit)

	q := c.DB.WithContext(ctx).Where("post_id = ? AND parent_id = 0", postID)
	if cursor != "" {
		createdAt, id, err := repository.DecodeCursor(cursor)
		if err != nil {
			return nil, domain.ErrBadParamInput
		}
		q = q.Where("(created_at < ? OR (created_at = ? AND id < ?))", createdAt, createdAt, id)
	}

	var comments []model.Comment
	err := q.Order("created_at DESC, id DESC").
		Limit(int(limit)).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return toDomainComments(comments), nil
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var comment model.Comment
	err := c.DB.WithContext(ctx).First(&comment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	res := comment.ToDomain()
	return &res, nil
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	m := model.NewCommentFromDomain(comment)
	if err := c.DB.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	comment.ID = m.ID
	return nil
}
