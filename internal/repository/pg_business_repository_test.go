package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placehub/business-review-service/internal/domain"
)

// Helper to create a valid business for testing.
func newTestBusiness() *domain.Business {
	return &domain.Business{
		OwnerID:       1,
		Name:          "Cafe",
		StreetAddress: "1 Main St",
		City:          "Metropolis",
		State:         "NY",
		ZipCode:       10001,
	}
}

func businessRows(id int64, b *domain.Business) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "owner_id", "name", "street_address", "city", "state", "zip_code"}).
		AddRow(id, b.OwnerID, b.Name, b.StreetAddress, b.City, b.State, b.ZipCode)
}

func TestPgBusinessRepository_Create(t *testing.T) {
	t.Run("inserts then re-reads by generated id", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgBusinessRepository(mock)
		ctx := context.Background()
		business := newTestBusiness()

		mock.ExpectQuery(`INSERT INTO businesses`).
			WithArgs(business.OwnerID, business.Name, business.StreetAddress, business.City, business.State, business.ZipCode).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

		mock.ExpectQuery(`SELECT id, owner_id, name, street_address, city, state, zip_code FROM businesses WHERE id = \$1`).
			WithArgs(int64(7)).
			WillReturnRows(businessRows(7, business))

		created, err := repo.Create(ctx, business)
		require.NoError(t, err)
		assert.Equal(t, int64(7), created.ID)
		assert.Equal(t, "Cafe", created.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects nil business", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgBusinessRepository(mock)

		_, err = repo.Create(context.Background(), nil)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	})

	t.Run("wraps insert error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgBusinessRepository(mock)
		business := newTestBusiness()

		mock.ExpectQuery(`INSERT INTO businesses`).
			WithArgs(business.OwnerID, business.Name, business.StreetAddress, business.City, business.State, business.ZipCode).
			WillReturnError(errors.New("connection reset"))

		_, err = repo.Create(context.Background(), business)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPgBusinessRepository_GetByID(t *testing.T) {
	t.Run("returns business when found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgBusinessRepository(mock)

		mock.ExpectQuery(`SELECT id, owner_id, name, street_address, city, state, zip_code FROM businesses WHERE id = \$1`).
			WithArgs(int64(3)).
			WillReturnRows(businessRows(3, newTestBusiness()))

		got, err := repo.GetByID(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.ID)
		assert.Equal(t, "NY", got.State)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgBusinessRepository(mock)

		mock.ExpectQuery(`SELECT id, owner_id, name, street_address, city, state, zip_code FROM businesses WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)

		_, err = repo.GetByID(context.Background(), 99)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPgBusinessRepository_Update(t *testing.T) {
	t.Run("updates all fields and re-reads", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgBusinessRepository(mock)
		business := newTestBusiness()
		business.ID = 4
		business.City = "Gotham"

		mock.ExpectExec(`UPDATE businesses`).
			WithArgs(business.OwnerID, business.Name, business.StreetAddress, business.City, business.State, business.ZipCode, business.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		mock.ExpectQuery(`SELECT id, owner_id, name, street_address, city, state, zip_code FROM businesses WHERE id = \$1`).
			WithArgs(int64(4)).
			WillReturnRows(businessRows(4, business))

		updated, err := repo.Update(context.Background(), business)
		require.NoError(t, err)
		assert.Equal(t, "Gotham", updated.City)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found when no rows affected", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgBusinessRepository(mock)
		business := newTestBusiness()
		business.ID = 99

		mock.ExpectExec(`UPDATE businesses`).
			WithArgs(business.OwnerID, business.Name, business.StreetAddress, business.City, business.State, business.ZipCode, business.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		_, err = repo.Update(context.Background(), business)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPgBusinessRepository_Delete(t *testing.T) {
	t.Run("deletes existing business", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgBusinessRepository(mock)

		mock.ExpectExec(`DELETE FROM businesses WHERE id = \$1`).
			WithArgs(int64(5)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.Delete(context.Background(), 5))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found when absent", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgBusinessRepository(mock)

		mock.ExpectExec(`DELETE FROM businesses WHERE id = \$1`).
			WithArgs(int64(5)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err = repo.Delete(context.Background(), 5)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPgBusinessRepository_List(t *testing.T) {
	t.Run("returns businesses in id order", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgBusinessRepository(mock)
		b := newTestBusiness()

		rows := pgxmock.NewRows([]string{"id", "owner_id", "name", "street_address", "city", "state", "zip_code"}).
			AddRow(int64(1), b.OwnerID, "First", b.StreetAddress, b.City, b.State, b.ZipCode).
			AddRow(int64(2), b.OwnerID, "Second", b.StreetAddress, b.City, b.State, b.ZipCode)

		mock.ExpectQuery(`SELECT id, owner_id, name, street_address, city, state, zip_code FROM businesses ORDER BY id ASC`).
			WillReturnRows(rows)

		got, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "First", got[0].Name)
		assert.Equal(t, "Second", got[1].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns empty slice for empty table", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgBusinessRepository(mock)

		mock.ExpectQuery(`SELECT id, owner_id, name, street_address, city, state, zip_code FROM businesses ORDER BY id ASC`).
			WillReturnRows(pgxmock.NewRows([]string{"id", "owner_id", "name", "street_address", "city", "state", "zip_code"}))

		got, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPgBusinessRepository_ListByOwner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPgBusinessRepository(mock)
	b := newTestBusiness()

	mock.ExpectQuery(`SELECT id, owner_id, name, street_address, city, state, zip_code FROM businesses WHERE owner_id = \$1 ORDER BY id ASC`).
		WithArgs(int64(1)).
		WillReturnRows(businessRows(1, b))

	got, err := repo.ListByOwner(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].OwnerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
