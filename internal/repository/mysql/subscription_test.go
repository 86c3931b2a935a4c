package mysql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/creatorhub/domain"
)

func TestFetchAllSubscriptions(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubscriptionRepository(db)

	exp := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"user_id", "creator_id", "expires_at"}).
		AddRow(1, 1, exp).
		AddRow(1, 2, exp)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, creator_id, expires_at FROM `subscriptions`")).
		WillReturnRows(rows)

	res, err := repo.FetchAll(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, []domain.Subscription{
		{UserID: 1, CreatorID: 1, ExpiresAt: exp},
		{UserID: 1, CreatorID: 2, ExpiresAt: exp},
	}, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchAllActiveOnly(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubscriptionRepository(db)
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	mock.ExpectQuery(regexp.QuoteMeta("FROM `subscriptions` WHERE expires_at > ?")).
		WithArgs(now).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "creator_id", "expires_at"}))

	res, err := repo.FetchAll(context.Background(), true)
	require.NoError(t, err)
	assert.Empty(t, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchActiveCreatorIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubscriptionRepository(db)
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT `creator_id` FROM `subscriptions` WHERE user_id = ? AND expires_at > ?")).
		WithArgs(int64(4), now).
		WillReturnRows(sqlmock.NewRows([]string{"creator_id"}).AddRow(2).AddRow(9))

	ids, err := repo.FetchActiveCreatorIDs(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 9}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsActive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubscriptionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `subscriptions`")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	ok, err := repo.IsActive(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, ok)
}
