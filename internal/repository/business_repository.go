package repository

import (
	"context"

	"github.com/placehub/business-review-service/internal/domain"
)

// BusinessRepository manages persistence of business records.
type BusinessRepository interface {
	// Create inserts a new business and returns the stored row,
	// re-read by its generated id.
	Create(ctx context.Context, business *domain.Business) (*domain.Business, error)

	// GetByID returns a business by id, or domain.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*domain.Business, error)

	// Update replaces all mutable fields of a business and returns the
	// stored row, or domain.ErrNotFound when the id does not exist.
	Update(ctx context.Context, business *domain.Business) (*domain.Business, error)

	// Delete removes a business by id, or returns domain.ErrNotFound.
	// Reviews referencing the business are removed by the schema's cascade.
	Delete(ctx context.Context, id int64) error

	// List returns all businesses ordered by id ascending.
	List(ctx context.Context) ([]*domain.Business, error)

	// ListByOwner returns all businesses with the given owner, ordered by id.
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Business, error)
}
