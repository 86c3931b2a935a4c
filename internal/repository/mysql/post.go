package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/creatorhub/domain"
	"github.com/Guyuepp/creatorhub/internal/repository"
	"github.com/Guyuepp/creatorhub/internal/repository/mysql/model"
)

const postWithCreatorColumns = "posts.id, posts.creator_id, posts.title, posts.content, posts.is_paid, posts.price, posts.views, posts.likes, posts.updated_at, posts.created_at, creators.name AS creator_name, creators.user_id AS creator_user_id"

type postRepository struct {
	DB *gorm.DB
}

// mysql层只负责数据库操作
var _ domain.PostRepository = (*postRepository)(nil)

func NewPostRepository(db *gorm.DB) *postRepository {
	return &postRepository{db}
}

// withCreator 关联 creators 表以取得作者名
func (m *postRepository) withCreator(ctx context.Context) *gorm.DB {
	return m.DB.WithContext(ctx).
		Model(&model.Post{}).
		Select(postWithCreatorColumns).
		Joins("JOIN creators ON creators.id = posts.creator_id")
}

func toDomainPosts(rows []model.PostWithCreator) []domain.Post {
	res := make([]domain.Post, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res
}

func (m *postRepository) FetchFree(ctx context.Context, cursor string, num int64) ([]domain.Post, error) {
	repository.PageVerify(&num)

	q := m.withCreator(ctx).Where("posts.is_paid = ?", false)
	if cursor != "" {
		createdAt, id, err := repository.DecodeCursor(cursor)
		if err != nil {
			return nil, domain.ErrBadParamInput
		}
		q = q.Where("(posts.created_at < ? OR (posts.created_at = ? AND posts.id < ?))", createdAt, createdAt, id)
	}

	var rows []model.PostWithCreator
	err := q.Order("posts.created_at DESC, posts.id DESC").
		Limit(int(num)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainPosts(rows), nil
}

func (m *postRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	var row model.PostWithCreator
	result := m.withCreator(ctx).Where("posts.id = ?", id).Limit(1).Scan(&row)
	if result.Error != nil {
		return domain.Post{}, result.Error
	}
	if result.RowsAffected == 0 {
		return domain.Post{}, domain.ErrNotFound
	}
	return row.ToDomain(), nil
}

func (m *postRepository) FetchMostViewedFree(ctx context.Context, limit int64) ([]domain.Post, error) {
	var rows []model.PostWithCreator
	err := m.withCreator(ctx).
		Where("posts.is_paid = ?", false).
		Order("posts.views DESC, posts.created_at DESC, posts.id DESC").
		Limit(int(limit)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainPosts(rows), nil
}

func (m *postRepository) FetchFreeByCreators(ctx context.Context, creatorIDs []int64) ([]domain.Post, error) {
	if len(creatorIDs) == 0 {
		return nil, nil
	}
	var rows []model.PostWithCreator
	err := m.withCreator(ctx).
		Where("posts.is_paid = ? AND posts.creator_id IN ?", false, creatorIDs).
		Order("posts.created_at DESC, posts.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainPosts(rows), nil
}

func (m *postRepository) AddViews(ctx context.Context, id int64, deltaViews int64) error {
	result := m.DB.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", deltaViews))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (m *postRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Post{}).
		Select("id").
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Find(&ids).Error
	return
}
