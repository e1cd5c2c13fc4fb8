package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placehub/business-review-service/internal/domain"
)

func int64Ptr(v int64) *int64 { return &v }
func strPtr(s string) *string { return &s }

func reviewRows(id, userID int64, businessID *int64, text *string, stars int) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "user_id", "business_id", "review_text", "stars"}).
		AddRow(id, userID, businessID, text, stars)
}

func TestPgReviewRepository_Create(t *testing.T) {
	t.Run("inserts then re-reads by generated id", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)
		review := &domain.Review{
			UserID:     10,
			BusinessID: int64Ptr(2),
			ReviewText: "great place",
			Stars:      5,
		}

		mock.ExpectQuery(`INSERT INTO reviews`).
			WithArgs(review.UserID, review.BusinessID, strPtr("great place"), review.Stars).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))

		mock.ExpectQuery(`SELECT id, user_id, business_id, review_text, stars FROM reviews WHERE id = \$1`).
			WithArgs(int64(11)).
			WillReturnRows(reviewRows(11, 10, int64Ptr(2), strPtr("great place"), 5))

		created, err := repo.Create(context.Background(), review)
		require.NoError(t, err)
		assert.Equal(t, int64(11), created.ID)
		assert.Equal(t, "great place", created.ReviewText)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stores empty text as NULL", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)
		review := &domain.Review{UserID: 10, BusinessID: int64Ptr(2), Stars: 3}

		mock.ExpectQuery(`INSERT INTO reviews`).
			WithArgs(review.UserID, review.BusinessID, (*string)(nil), review.Stars).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(12)))

		mock.ExpectQuery(`SELECT id, user_id, business_id, review_text, stars FROM reviews WHERE id = \$1`).
			WithArgs(int64(12)).
			WillReturnRows(reviewRows(12, 10, int64Ptr(2), nil, 3))

		created, err := repo.Create(context.Background(), review)
		require.NoError(t, err)
		assert.Equal(t, "", created.ReviewText)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps foreign key violation to business not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)
		review := &domain.Review{UserID: 10, BusinessID: int64Ptr(99), Stars: 4}

		mock.ExpectQuery(`INSERT INTO reviews`).
			WithArgs(review.UserID, review.BusinessID, (*string)(nil), review.Stars).
			WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

		_, err = repo.Create(context.Background(), review)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))

		var nfErr *domain.NotFoundError
		require.True(t, errors.As(err, &nfErr))
		assert.Equal(t, "business", nfErr.Entity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects nil review", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		_, err = repo.Create(context.Background(), nil)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	})
}

func TestPgReviewRepository_GetByID(t *testing.T) {
	t.Run("returns review when found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		mock.ExpectQuery(`SELECT id, user_id, business_id, review_text, stars FROM reviews WHERE id = \$1`).
			WithArgs(int64(3)).
			WillReturnRows(reviewRows(3, 10, int64Ptr(2), strPtr("nice"), 4))

		got, err := repo.GetByID(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.ID)
		require.NotNil(t, got.BusinessID)
		assert.Equal(t, int64(2), *got.BusinessID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		mock.ExpectQuery(`SELECT id, user_id, business_id, review_text, stars FROM reviews WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)

		_, err = repo.GetByID(context.Background(), 99)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPgReviewRepository_Update(t *testing.T) {
	t.Run("updates stars and text", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		mock.ExpectExec(`UPDATE reviews SET stars = \$1, review_text = \$2 WHERE id = \$3`).
			WithArgs(2, strPtr("changed my mind"), int64(3)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		mock.ExpectQuery(`SELECT id, user_id, business_id, review_text, stars FROM reviews WHERE id = \$1`).
			WithArgs(int64(3)).
			WillReturnRows(reviewRows(3, 10, int64Ptr(2), strPtr("changed my mind"), 2))

		updated, err := repo.Update(context.Background(), 3, 2, strPtr("changed my mind"))
		require.NoError(t, err)
		assert.Equal(t, 2, updated.Stars)
		assert.Equal(t, "changed my mind", updated.ReviewText)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("preserves text when reviewText is nil", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		mock.ExpectExec(`UPDATE reviews SET stars = \$1 WHERE id = \$2`).
			WithArgs(1, int64(3)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		mock.ExpectQuery(`SELECT id, user_id, business_id, review_text, stars FROM reviews WHERE id = \$1`).
			WithArgs(int64(3)).
			WillReturnRows(reviewRows(3, 10, int64Ptr(2), strPtr("unchanged"), 1))

		updated, err := repo.Update(context.Background(), 3, 1, nil)
		require.NoError(t, err)
		assert.Equal(t, "unchanged", updated.ReviewText)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found when no rows affected", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		mock.ExpectExec(`UPDATE reviews SET stars = \$1 WHERE id = \$2`).
			WithArgs(5, int64(99)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		_, err = repo.Update(context.Background(), 99, 5, nil)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPgReviewRepository_Delete(t *testing.T) {
	t.Run("deletes existing review", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		mock.ExpectExec(`DELETE FROM reviews WHERE id = \$1`).
			WithArgs(int64(3)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.Delete(context.Background(), 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found when absent", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		mock.ExpectExec(`DELETE FROM reviews WHERE id = \$1`).
			WithArgs(int64(3)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err = repo.Delete(context.Background(), 3)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPgReviewRepository_ListByUser(t *testing.T) {
	t.Run("returns reviews in id order", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		rows := pgxmock.NewRows([]string{"id", "user_id", "business_id", "review_text", "stars"}).
			AddRow(int64(1), int64(10), int64Ptr(2), strPtr("first"), 5).
			AddRow(int64(2), int64(10), (*int64)(nil), nil, 3)

		mock.ExpectQuery(`SELECT id, user_id, business_id, review_text, stars FROM reviews WHERE user_id = \$1 ORDER BY id ASC`).
			WithArgs(int64(10)).
			WillReturnRows(rows)

		got, err := repo.ListByUser(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "first", got[0].ReviewText)
		assert.Nil(t, got[1].BusinessID)
		assert.Equal(t, "", got[1].ReviewText)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns empty slice when user has none", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		mock.ExpectQuery(`SELECT id, user_id, business_id, review_text, stars FROM reviews WHERE user_id = \$1 ORDER BY id ASC`).
			WithArgs(int64(42)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "business_id", "review_text", "stars"}))

		got, err := repo.ListByUser(context.Background(), 42)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPgReviewRepository_ExistsForUserAndBusiness(t *testing.T) {
	t.Run("reports existing pair", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs(int64(10), int64(2)).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := repo.ExistsForUserAndBusiness(context.Background(), 10, 2)
		require.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports missing pair", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs(int64(10), int64(2)).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		exists, err := repo.ExistsForUserAndBusiness(context.Background(), 10, 2)
		require.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
