package httpserver

import (
	"net/http"

	"github.com/placehub/business-review-service/internal/domain"
	"github.com/placehub/business-review-service/internal/hypermedia"
	"github.com/placehub/business-review-service/internal/observability"
)

// reviewRequest is the JSON request body for creating a review.
// review_text is optional.
type reviewRequest struct {
	UserID     *int64  `json:"user_id" validate:"required"`
	BusinessID *int64  `json:"business_id" validate:"required"`
	Stars      *int    `json:"stars" validate:"required"`
	ReviewText *string `json:"review_text" validate:"omitempty,max=1000"`
}

// updateReviewRequest is the JSON request body for updating a review.
// Only stars and text are mutable; leaving review_text out preserves
// the stored text.
type updateReviewRequest struct {
	Stars      *int    `json:"stars" validate:"required"`
	ReviewText *string `json:"review_text" validate:"omitempty,max=1000"`
}

// createReview handles POST /reviews. A user may review a business only
// once; a duplicate is rejected with 409 before the insert is attempted.
func (s *Server) createReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON request body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	ctx := r.Context()

	exists, err := s.reviewRepo.ExistsForUserAndBusiness(ctx, *req.UserID, *req.BusinessID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if exists {
		if s.metrics != nil {
			s.metrics.RecordReviewConflict()
		}
		writeError(w, http.StatusConflict,
			"user has already posted a review of this business; update or delete that review instead")
		return
	}

	review := &domain.Review{
		UserID:     *req.UserID,
		BusinessID: req.BusinessID,
		Stars:      *req.Stars,
	}
	if req.ReviewText != nil {
		review.ReviewText = *req.ReviewText
	}

	created, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordReviewCreated()
	}

	logger := observability.WithReviewContext(s.logger, created.ID, created.UserID)
	logger.Info().
		Str("request_id", observability.RequestIDFromContext(ctx)).
		Msg("review created")

	ri := hypermedia.FromRequest(r)
	writeJSON(w, http.StatusCreated, hypermedia.ToReviewView(created, hypermedia.ModeCreated, ri))
}

// getReview handles GET /reviews/{reviewID}.
func (s *Server) getReview(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "reviewID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	review, err := s.reviewRepo.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	ri := hypermedia.FromRequest(r)
	writeJSON(w, http.StatusOK, hypermedia.ToReviewView(review, hypermedia.ModeCollection, ri))
}

// updateReview handles PUT /reviews/{reviewID}.
func (s *Server) updateReview(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "reviewID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req updateReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON request body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	updated, err := s.reviewRepo.Update(r.Context(), id, *req.Stars, req.ReviewText)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordReviewUpdated()
	}

	ri := hypermedia.FromRequest(r)
	writeJSON(w, http.StatusOK, hypermedia.ToReviewView(updated, hypermedia.ModeCollection, ri))
}

// deleteReview handles DELETE /reviews/{reviewID}.
func (s *Server) deleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "reviewID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.reviewRepo.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordReviewDeleted()
	}

	w.WriteHeader(http.StatusNoContent)
}

// listReviewsByUser handles GET /users/{userID}/reviews: the unpaged
// listing of a user's reviews.
func (s *Server) listReviewsByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "userID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	reviews, err := s.reviewRepo.ListByUser(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	ri := hypermedia.FromRequest(r)
	views := make([]hypermedia.ReviewView, len(reviews))
	for i, review := range reviews {
		views[i] = hypermedia.ToReviewView(review, hypermedia.ModeOwnedList, ri)
	}

	writeJSON(w, http.StatusOK, views)
}
