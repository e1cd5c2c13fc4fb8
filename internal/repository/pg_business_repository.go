package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/placehub/business-review-service/internal/domain"
)

// Compile-time interface verification.
var _ BusinessRepository = (*PgBusinessRepository)(nil)

// PgBusinessRepository is a PostgreSQL implementation of BusinessRepository.
type PgBusinessRepository struct {
	db DBTX
}

// NewPgBusinessRepository creates a new PostgreSQL business repository.
func NewPgBusinessRepository(db DBTX) *PgBusinessRepository {
	return &PgBusinessRepository{db: db}
}

const businessColumns = "id, owner_id, name, street_address, city, state, zip_code"

// Create inserts a new business and re-reads it by its generated id.
func (r *PgBusinessRepository) Create(ctx context.Context, business *domain.Business) (*domain.Business, error) {
	if business == nil {
		return nil, domain.NewValidationError("business", "business cannot be nil")
	}

	query := `
		INSERT INTO businesses (owner_id, name, street_address, city, state, zip_code)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		business.OwnerID, business.Name, business.StreetAddress,
		business.City, business.State, business.ZipCode,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create business: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID retrieves a business by its id.
func (r *PgBusinessRepository) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`

	row := r.db.QueryRow(ctx, query, id)
	business, err := scanBusiness(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("business", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	return business, nil
}

// Update replaces all mutable fields of a business and re-reads the row.
func (r *PgBusinessRepository) Update(ctx context.Context, business *domain.Business) (*domain.Business, error) {
	if business == nil {
		return nil, domain.NewValidationError("business", "business cannot be nil")
	}

	query := `
		UPDATE businesses
		SET owner_id = $1, name = $2, street_address = $3, city = $4, state = $5, zip_code = $6
		WHERE id = $7`

	result, err := r.db.Exec(ctx, query,
		business.OwnerID, business.Name, business.StreetAddress,
		business.City, business.State, business.ZipCode,
		business.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update business: %w", err)
	}

	if result.RowsAffected() == 0 {
		return nil, domain.NewNotFoundError("business", strconv.FormatInt(business.ID, 10))
	}

	return r.GetByID(ctx, business.ID)
}

// Delete removes a business by id. Dependent reviews are removed by the
// schema's ON DELETE CASCADE.
func (r *PgBusinessRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM businesses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete business: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.NewNotFoundError("business", strconv.FormatInt(id, 10))
	}

	return nil
}

// List returns all businesses ordered by id ascending.
func (r *PgBusinessRepository) List(ctx context.Context) ([]*domain.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	defer rows.Close()

	return collectBusinesses(rows)
}

// ListByOwner returns all businesses belonging to the given owner.
func (r *PgBusinessRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE owner_id = $1 ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses by owner: %w", err)
	}
	defer rows.Close()

	return collectBusinesses(rows)
}

// scanBusiness scans a single row into a Business.
func scanBusiness(row pgx.Row) (*domain.Business, error) {
	var b domain.Business
	err := row.Scan(&b.ID, &b.OwnerID, &b.Name, &b.StreetAddress, &b.City, &b.State, &b.ZipCode)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// collectBusinesses drains rows into a slice of businesses.
func collectBusinesses(rows pgx.Rows) ([]*domain.Business, error) {
	businesses := make([]*domain.Business, 0)
	for rows.Next() {
		business, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan business: %w", err)
		}
		businesses = append(businesses, business)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating businesses: %w", err)
	}

	return businesses, nil
}
