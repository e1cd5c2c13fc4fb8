package repository

import (
	"context"

	"github.com/placehub/business-review-service/internal/domain"
)

// ReviewRepository manages persistence of review records.
type ReviewRepository interface {
	// Create inserts a new review and returns the stored row, re-read by
	// its generated id. A foreign key violation on business_id is reported
	// as domain.ErrNotFound for the business.
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)

	// GetByID returns a review by id, or domain.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*domain.Review, error)

	// Update sets the stars of a review and, when reviewText is non-nil,
	// its text. It returns the stored row, or domain.ErrNotFound when the
	// id does not exist.
	Update(ctx context.Context, id int64, stars int, reviewText *string) (*domain.Review, error)

	// Delete removes a review by id, or returns domain.ErrNotFound.
	Delete(ctx context.Context, id int64) error

	// ListByUser returns all reviews written by the given user, ordered by id.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Review, error)

	// ExistsForUserAndBusiness reports whether the user has already
	// reviewed the business.
	ExistsForUserAndBusiness(ctx context.Context, userID, businessID int64) (bool, error)
}
