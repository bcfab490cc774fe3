package mysql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/gordonblake/moviereviews/domain"
	mysqlRepo "github.com/gordonblake/moviereviews/internal/repository/mysql"
)

var reviewColumns = []string{
	"id", "title", "poster", "text", "director", "release_year",
	"reviewer_name", "publication_date", "bottomline", "rating", "likes",
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gdb, mock
}

func TestGetByID(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := mysqlRepo.NewReviewDBRepository(gdb)

	rows := sqlmock.NewRows(reviewColumns).
		AddRow(1, "Heat", "https://example.com/heat.jpg", "A heist epic.", "Michael Mann",
			1995, "Gordon Blake", "2024-02-10", "Essential viewing.", 7, 3)
	mock.ExpectQuery("SELECT \\* FROM `reviews` WHERE id = \\?").
		WillReturnRows(rows)

	res, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ID)
	assert.Equal(t, "Heat", res.Title)
	assert.Equal(t, int64(3), res.Likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := mysqlRepo.NewReviewDBRepository(gdb)

	mock.ExpectQuery("SELECT \\* FROM `reviews` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows(reviewColumns))

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := mysqlRepo.NewReviewDBRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `reviews`").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectCommit()

	review := domain.Review{
		Title:  "Heat",
		Text:   "A heist epic.",
		Rating: 7,
		Likes:  99, // must be ignored
	}
	err := repo.Store(context.Background(), &review)
	require.NoError(t, err)
	assert.Equal(t, int64(5), review.ID)
	assert.Zero(t, review.Likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateNotFound(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := mysqlRepo.NewReviewDBRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `reviews` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), &domain.Review{ID: 404, Title: "Heat", Rating: 7})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleLikeAddsWhenNotLiked(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := mysqlRepo.NewReviewDBRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `reviews` WHERE id = \\?(.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows(reviewColumns).
			AddRow(1, "Heat", "", "A heist epic.", "Michael Mann", 1995, "Gordon Blake",
				"2024-02-10", "Essential viewing.", 7, 0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `likes` WHERE review_id = \\? AND user_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectExec("INSERT INTO `likes`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `likes` WHERE review_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectExec("UPDATE `reviews` SET `likes`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	liked, likes, err := repo.ToggleLike(context.Background(), 1, "gordonblake")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleLikeRemovesWhenLiked(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := mysqlRepo.NewReviewDBRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `reviews` WHERE id = \\?(.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows(reviewColumns).
			AddRow(1, "Heat", "", "A heist epic.", "Michael Mann", 1995, "Gordon Blake",
				"2024-02-10", "Essential viewing.", 7, 1))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `likes` WHERE review_id = \\? AND user_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectExec("DELETE FROM `likes`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `likes` WHERE review_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectExec("UPDATE `reviews` SET `likes`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	liked, likes, err := repo.ToggleLike(context.Background(), 1, "gordonblake")
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Zero(t, likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleLikeUnknownReview(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := mysqlRepo.NewReviewDBRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `reviews` WHERE id = \\?(.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows(reviewColumns))
	mock.ExpectRollback()

	_, _, err := repo.ToggleLike(context.Background(), 404, "gordonblake")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasLike(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := mysqlRepo.NewReviewDBRepository(gdb)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `likes` WHERE review_id = \\? AND user_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	has, err := repo.HasLike(context.Background(), 1, "gordonblake")
	require.NoError(t, err)
	assert.True(t, has)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchUserLikedReviews(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := mysqlRepo.NewReviewDBRepository(gdb)

	mock.ExpectQuery("SELECT `review_id` FROM `likes` WHERE user_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"review_id"}).AddRow(2).AddRow(9))

	ids, err := repo.FetchUserLikedReviews(context.Background(), "gordonblake")
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 9}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReconcileLikes(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := mysqlRepo.NewReviewDBRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `likes` WHERE review_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(4))
	mock.ExpectExec("UPDATE `reviews` SET `likes`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.ReconcileLikes(context.Background(), []int64{1})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
