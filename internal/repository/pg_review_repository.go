package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/placehub/business-review-service/internal/domain"
)

// PostgreSQL error code used for constraint violation detection.
const pgForeignKeyViolation = "23503" // foreign_key_violation

// Compile-time interface verification.
var _ ReviewRepository = (*PgReviewRepository)(nil)

// PgReviewRepository is a PostgreSQL implementation of ReviewRepository.
type PgReviewRepository struct {
	db DBTX
}

// NewPgReviewRepository creates a new PostgreSQL review repository.
func NewPgReviewRepository(db DBTX) *PgReviewRepository {
	return &PgReviewRepository{db: db}
}

const reviewColumns = "id, user_id, business_id, review_text, stars"

// Create inserts a new review and re-reads it by its generated id.
// A foreign key violation on business_id means the referenced business
// does not exist and is reported as domain.ErrNotFound.
func (r *PgReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	if review == nil {
		return nil, domain.NewValidationError("review", "review cannot be nil")
	}

	query := `
		INSERT INTO reviews (user_id, business_id, review_text, stars)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		review.UserID, review.BusinessID, nullString(review.ReviewText), review.Stars,
	).Scan(&id)
	if err != nil {
		if isPgForeignKeyViolation(err) {
			businessID := ""
			if review.BusinessID != nil {
				businessID = strconv.FormatInt(*review.BusinessID, 10)
			}
			return nil, domain.NewNotFoundError("business", businessID)
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID retrieves a review by its id.
func (r *PgReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	row := r.db.QueryRow(ctx, query, id)
	review, err := scanReview(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("review", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return review, nil
}

// Update sets the stars of a review and, when reviewText is non-nil, its
// text. A nil reviewText preserves the existing text (partial update).
func (r *PgReviewRepository) Update(ctx context.Context, id int64, stars int, reviewText *string) (*domain.Review, error) {
	var (
		result pgconn.CommandTag
		err    error
	)

	if reviewText != nil {
		result, err = r.db.Exec(ctx,
			`UPDATE reviews SET stars = $1, review_text = $2 WHERE id = $3`,
			stars, nullString(*reviewText), id,
		)
	} else {
		result, err = r.db.Exec(ctx,
			`UPDATE reviews SET stars = $1 WHERE id = $2`,
			stars, id,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	if result.RowsAffected() == 0 {
		return nil, domain.NewNotFoundError("review", strconv.FormatInt(id, 10))
	}

	return r.GetByID(ctx, id)
}

// Delete removes a review by id.
func (r *PgReviewRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.NewNotFoundError("review", strconv.FormatInt(id, 10))
	}

	return nil
}

// ListByUser returns all reviews written by the given user.
func (r *PgReviewRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE user_id = $1 ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews by user: %w", err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, nil
}

// ExistsForUserAndBusiness reports whether the user has already reviewed
// the business. This check is not transactionally coupled to the insert;
// concurrent creates for the same pair can both pass it.
func (r *PgReviewRepository) ExistsForUserAndBusiness(ctx context.Context, userID, businessID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM reviews WHERE user_id = $1 AND business_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, businessID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check for existing review: %w", err)
	}

	return exists, nil
}

// scanReview scans a single row into a Review. A NULL review_text is
// rendered as the empty string.
func scanReview(row pgx.Row) (*domain.Review, error) {
	var (
		review domain.Review
		text   *string
	)
	err := row.Scan(&review.ID, &review.UserID, &review.BusinessID, &text, &review.Stars)
	if err != nil {
		return nil, err
	}
	if text != nil {
		review.ReviewText = *text
	}
	return &review, nil
}

// isPgForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func isPgForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	return false
}

// nullString returns a pointer to the string if non-empty, otherwise nil.
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
