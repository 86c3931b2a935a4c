package mysql

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/creatorhub/domain"
)

var (
	deleteSimilaritySQL = regexp.QuoteMeta("DELETE FROM `user_similarity` WHERE 1 = 1")
	insertSimilaritySQL = regexp.QuoteMeta("INSERT INTO `user_similarity` (`user1_id`,`user2_id`,`similarity_score`) VALUES")
)

func TestReplaceAllCommitsInBatches(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSimilarityRepository(db, 2)

	entries := []domain.SimilarityEntry{
		{User1ID: 1, User2ID: 2, Score: 1.0 / 3},
		{User1ID: 1, User2ID: 3, Score: 2.0 / 3},
		{User1ID: 2, User2ID: 3, Score: 2.0 / 3},
	}

	mock.ExpectBegin()
	mock.ExpectExec(deleteSimilaritySQL).WillReturnResult(sqlmock.NewResult(0, 7))
	mock.ExpectExec(insertSimilaritySQL).
		WithArgs(int64(1), int64(2), 1.0/3, int64(1), int64(3), 2.0/3).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(insertSimilaritySQL).
		WithArgs(int64(2), int64(3), 2.0/3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.ReplaceAll(context.Background(), entries)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAllRollsBackWhenInsertFails(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSimilarityRepository(db, 1)

	entries := []domain.SimilarityEntry{
		{User1ID: 1, User2ID: 2, Score: 0.5},
		{User1ID: 1, User2ID: 3, Score: 0.25},
	}

	mock.ExpectBegin()
	mock.ExpectExec(deleteSimilaritySQL).WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec(insertSimilaritySQL).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insertSimilaritySQL).WillReturnError(errors.New("lost connection"))
	mock.ExpectRollback()

	err := repo.ReplaceAll(context.Background(), entries)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lost connection")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAllRollsBackWhenDeleteFails(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSimilarityRepository(db, 0)

	mock.ExpectBegin()
	mock.ExpectExec(deleteSimilaritySQL).WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	err := repo.ReplaceAll(context.Background(), []domain.SimilarityEntry{{User1ID: 1, User2ID: 2, Score: 1}})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAllWithEmptyRelation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSimilarityRepository(db, 10)

	mock.ExpectBegin()
	mock.ExpectExec(deleteSimilaritySQL).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceAll(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchNeighbors(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSimilarityRepository(db, 10)

	rows := sqlmock.NewRows([]string{"neighbor_id", "similarity_score"}).
		AddRow(7, 0.8).
		AddRow(3, 0.5)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT CASE WHEN user1_id = ? THEN user2_id ELSE user1_id END AS neighbor_id, similarity_score FROM `user_similarity` WHERE (user1_id = ? OR user2_id = ?) AND similarity_score > 0 ORDER BY similarity_score DESC, neighbor_id ASC")).
		WillReturnRows(rows)

	res, err := repo.FetchNeighbors(context.Background(), 5, domain.NeighborLimit)
	require.NoError(t, err)
	assert.Equal(t, []domain.Neighbor{{UserID: 7, Score: 0.8}, {UserID: 3, Score: 0.5}}, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchNeighborsError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSimilarityRepository(db, 10)

	mock.ExpectQuery("SELECT CASE WHEN").WillReturnError(errors.New("timeout"))

	res, err := repo.FetchNeighbors(context.Background(), 5, domain.NeighborLimit)
	assert.Error(t, err)
	assert.Nil(t, res)
}
