// Package domain contains the core entities and errors of the business review service.
package domain

// Business is a registered business with a street address.
// The ID is generated by the database and immutable once assigned.
type Business struct {
	ID            int64
	OwnerID       int64
	Name          string
	StreetAddress string
	City          string
	State         string
	ZipCode       int
}

// Review is a user's star rating of a business, with optional text.
// BusinessID is nullable in the schema; the row is removed by cascade
// when the referenced business is deleted.
type Review struct {
	ID         int64
	UserID     int64
	BusinessID *int64
	ReviewText string
	Stars      int
}

// Field length limits, matching the persisted schema.
const (
	MaxBusinessNameLen  = 50
	MaxStreetAddressLen = 100
	MaxCityLen          = 50
	StateLen            = 2
	MaxReviewTextLen    = 1000
)
