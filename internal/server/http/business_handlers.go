package httpserver

import (
	"net/http"

	"github.com/placehub/business-review-service/internal/domain"
	"github.com/placehub/business-review-service/internal/hypermedia"
	"github.com/placehub/business-review-service/internal/observability"
)

// businessRequest is the JSON request body for creating or updating a
// business. All fields are required; pointers distinguish absent fields
// from zero values.
type businessRequest struct {
	OwnerID       *int64  `json:"owner_id" validate:"required"`
	Name          *string `json:"name" validate:"required,max=50"`
	StreetAddress *string `json:"street_address" validate:"required,max=100"`
	City          *string `json:"city" validate:"required,max=50"`
	State         *string `json:"state" validate:"required,len=2"`
	ZipCode       *int    `json:"zip_code" validate:"required"`
}

func (req *businessRequest) toDomain() *domain.Business {
	return &domain.Business{
		OwnerID:       *req.OwnerID,
		Name:          *req.Name,
		StreetAddress: *req.StreetAddress,
		City:          *req.City,
		State:         *req.State,
		ZipCode:       *req.ZipCode,
	}
}

// createBusiness handles POST /businesses.
func (s *Server) createBusiness(w http.ResponseWriter, r *http.Request) {
	var req businessRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON request body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	ctx := r.Context()

	created, err := s.businessRepo.Create(ctx, req.toDomain())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordBusinessCreated()
	}

	logger := observability.WithBusinessContext(s.logger, created.ID, created.OwnerID)
	logger.Info().
		Str("request_id", observability.RequestIDFromContext(ctx)).
		Msg("business created")

	ri := hypermedia.FromRequest(r)
	writeJSON(w, http.StatusCreated, hypermedia.ToBusinessView(created, hypermedia.ModeCreated, ri))
}

// getBusiness handles GET /businesses/{businessID}.
func (s *Server) getBusiness(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "businessID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	business, err := s.businessRepo.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	ri := hypermedia.FromRequest(r)
	writeJSON(w, http.StatusOK, hypermedia.ToBusinessView(business, hypermedia.ModeCollection, ri))
}

// updateBusiness handles PUT /businesses/{businessID}.
func (s *Server) updateBusiness(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "businessID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req businessRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON request body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	business := req.toDomain()
	business.ID = id

	updated, err := s.businessRepo.Update(r.Context(), business)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordBusinessUpdated()
	}

	ri := hypermedia.FromRequest(r)
	writeJSON(w, http.StatusOK, hypermedia.ToBusinessView(updated, hypermedia.ModeCollection, ri))
}

// deleteBusiness handles DELETE /businesses/{businessID}. Reviews of the
// business are removed by the cascade.
func (s *Server) deleteBusiness(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "businessID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.businessRepo.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordBusinessDeleted()
	}

	w.WriteHeader(http.StatusNoContent)
}

// listBusinesses handles GET /businesses?offset=N: the paged listing.
func (s *Server) listBusinesses(w http.ResponseWriter, r *http.Request) {
	businesses, err := s.businessRepo.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	ri := hypermedia.FromRequest(r)
	views := make([]hypermedia.BusinessView, len(businesses))
	for i, b := range businesses {
		views[i] = hypermedia.ToBusinessView(b, hypermedia.ModeItem, ri)
	}

	offset := hypermedia.ParseOffset(r.URL.Query().Get("offset"))
	page := hypermedia.Paginate(views, offset, s.pageSize, func(next int) string {
		return ri.CollectionURL(next, s.pageSize)
	})

	writeJSON(w, http.StatusOK, page)
}

// listBusinessesByOwner handles GET /owners/{ownerID}/businesses: the
// unpaged owned listing.
func (s *Server) listBusinessesByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := idParam(r, "ownerID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	businesses, err := s.businessRepo.ListByOwner(r.Context(), ownerID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	ri := hypermedia.FromRequest(r)
	views := make([]hypermedia.BusinessView, len(businesses))
	for i, b := range businesses {
		views[i] = hypermedia.ToBusinessView(b, hypermedia.ModeOwnedList, ri)
	}

	writeJSON(w, http.StatusOK, views)
}
