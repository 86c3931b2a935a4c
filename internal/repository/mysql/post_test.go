package mysql

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/creatorhub/domain"
	"github.com/Guyuepp/creatorhub/internal/repository"
)

var postColumns = []string{"id", "creator_id", "title", "content", "is_paid", "price", "views", "updated_at", "created_at", "creator_name"}

func TestFetchMostViewedFree(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)

	now := time.Now()
	title1, title2 := faker.Sentence(), faker.Sentence()
	rows := sqlmock.NewRows(postColumns).
		AddRow(2, 10, title1, faker.Paragraph(), false, 0, 900, now, now, "alice").
		AddRow(1, 11, title2, faker.Paragraph(), false, 0, 300, now, now, "bob")

	mock.ExpectQuery(regexp.QuoteMeta("JOIN creators ON creators.id = posts.creator_id WHERE posts.is_paid = ? ORDER BY posts.views DESC, posts.created_at DESC, posts.id DESC")).
		WillReturnRows(rows)

	res, err := repo.FetchMostViewedFree(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, int64(2), res[0].ID)
	assert.Equal(t, title1, res[0].Title)
	assert.Equal(t, "alice", res[0].Creator.Name)
	assert.Equal(t, int64(10), res[0].Creator.ID)
	assert.Equal(t, int64(900), res[0].Views)
	assert.Equal(t, "bob", res[1].Creator.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchFreeByCreatorsSkipsEmptyInput(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)

	res, err := repo.FetchFreeByCreators(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchFreeByCreators(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(postColumns).
		AddRow(5, 3, faker.Sentence(), faker.Paragraph(), false, 0, 1, now, now, faker.Name())
	mock.ExpectQuery(regexp.QuoteMeta("WHERE posts.is_paid = ? AND posts.creator_id IN (?,?)")).
		WithArgs(false, int64(3), int64(4)).
		WillReturnRows(rows)

	res, err := repo.FetchFreeByCreators(context.Background(), []int64{3, 4})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, int64(3), res[0].Creator.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchFreeRejectsBadCursor(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewPostRepository(db)

	_, err := repo.FetchFree(context.Background(), "not-base64!", 10)
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestFetchFreeWithCursor(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)

	cursorTime := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := sqlmock.NewRows(postColumns).
		AddRow(6, 3, faker.Sentence(), faker.Paragraph(), false, 0, 1, cursorTime, cursorTime, faker.Name())
	mock.ExpectQuery(regexp.QuoteMeta("WHERE posts.is_paid = ? AND (posts.created_at < ? OR (posts.created_at = ? AND posts.id < ?)) ORDER BY posts.created_at DESC, posts.id DESC")).
		WithArgs(false, cursorTime, cursorTime, int64(7), 10).
		WillReturnRows(rows)

	res, err := repo.FetchFree(context.Background(), repository.EncodeCursor(cursorTime, 7), 10)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, int64(6), res[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPostByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE posts.id = ?")).
		WillReturnRows(sqlmock.NewRows(postColumns))

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddViews(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE `posts` SET `views`=views + ? WHERE id = ?")).
		WithArgs(int64(5), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.AddViews(context.Background(), 9, 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddViewsMissingPost(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectExec("UPDATE `posts`").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.AddViews(context.Background(), 9, 5), domain.ErrNotFound)

	mock.ExpectExec("UPDATE `posts`").WillReturnError(errors.New("deadlock"))
	assert.EqualError(t, repo.AddViews(context.Background(), 9, 5), "deadlock")
}
