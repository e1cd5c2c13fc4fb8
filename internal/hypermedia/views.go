package hypermedia

import (
	"fmt"

	"github.com/placehub/business-review-service/internal/domain"
)

// BusinessView is the client-facing representation of a business.
// Field order mirrors the stored column order; self is appended last.
type BusinessView struct {
	ID            int64  `json:"id"`
	OwnerID       int64  `json:"owner_id"`
	Name          string `json:"name"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       int    `json:"zip_code"`
	Self          string `json:"self,omitempty"`
}

// ReviewView is the client-facing representation of a review. The
// business_id column is rewritten to a business link; a review whose
// business was deleted (NULL business_id) renders an empty link.
type ReviewView struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	Business   string `json:"business"`
	ReviewText string `json:"review_text"`
	Stars      int    `json:"stars"`
	Self       string `json:"self,omitempty"`
}

// ToBusinessView projects a business into its representation, computing
// the self link per mode.
func ToBusinessView(b *domain.Business, mode LinkMode, ri RequestInfo) BusinessView {
	view := BusinessView{
		ID:            b.ID,
		OwnerID:       b.OwnerID,
		Name:          b.Name,
		StreetAddress: b.StreetAddress,
		City:          b.City,
		State:         b.State,
		ZipCode:       b.ZipCode,
	}

	switch mode {
	case ModeCreated:
		view.Self = fmt.Sprintf("%s/%d", ri.URL, b.ID)
	case ModeCollection:
		view.Self = ri.URL
	case ModeItem, ModeOwnedList:
		view.Self = ri.BusinessURL(b.ID)
	}

	return view
}

// ToReviewView projects a review into its representation, rewriting
// business_id to a business URL and computing the self link per mode.
func ToReviewView(r *domain.Review, mode LinkMode, ri RequestInfo) ReviewView {
	view := ReviewView{
		ID:         r.ID,
		UserID:     r.UserID,
		ReviewText: r.ReviewText,
		Stars:      r.Stars,
	}

	if r.BusinessID != nil {
		view.Business = ri.BusinessURL(*r.BusinessID)
	}

	switch mode {
	case ModeCreated:
		view.Self = fmt.Sprintf("%s/%d", ri.URL, r.ID)
	case ModeCollection:
		view.Self = ri.URL
	case ModeItem, ModeOwnedList:
		view.Self = ri.ReviewURL(r.ID)
	}

	return view
}
