// Package hypermedia builds client-facing representations of domain
// objects: typed projections that rewrite foreign-key columns into
// absolute resource URLs, append self links, and window collections
// into fixed-size pages with a next link.
package hypermedia

import (
	"fmt"
	"net/http"
)

// LinkMode selects how a projection computes its self link.
type LinkMode int

const (
	// ModeCreated appends the new id to the URL the client posted to.
	ModeCreated LinkMode = iota
	// ModeCollection uses the request's own URL unchanged.
	ModeCollection
	// ModeItem builds a canonical resource URL from scheme and host.
	ModeItem
	// ModeOwnedList marks entries of an owner's or user's list; the
	// self link is the canonical resource URL, same as ModeItem.
	ModeOwnedList
)

// String returns a human-readable name for the mode.
func (m LinkMode) String() string {
	switch m {
	case ModeCreated:
		return "created"
	case ModeCollection:
		return "collection"
	case ModeItem:
		return "item"
	case ModeOwnedList:
		return "owned-list"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// RequestInfo carries the pieces of an HTTP request needed to build
// absolute URLs: the scheme, the host, and the full request URL.
type RequestInfo struct {
	Scheme string
	Host   string
	URL    string
}

// FromRequest extracts a RequestInfo from an incoming request. The
// scheme is taken from X-Forwarded-Proto when a proxy set it, falling
// back to the connection itself.
func FromRequest(r *http.Request) RequestInfo {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	return RequestInfo{
		Scheme: scheme,
		Host:   r.Host,
		URL:    scheme + "://" + r.Host + r.URL.RequestURI(),
	}
}

// BusinessURL returns the canonical URL of a business resource.
func (ri RequestInfo) BusinessURL(id int64) string {
	return fmt.Sprintf("%s://%s/businesses/%d", ri.Scheme, ri.Host, id)
}

// ReviewURL returns the canonical URL of a review resource.
func (ri RequestInfo) ReviewURL(id int64) string {
	return fmt.Sprintf("%s://%s/reviews/%d", ri.Scheme, ri.Host, id)
}

// CollectionURL returns the business collection URL carrying explicit
// paging parameters.
func (ri RequestInfo) CollectionURL(offset, limit int) string {
	return fmt.Sprintf("%s://%s/businesses?offset=%d&limit=%d", ri.Scheme, ri.Host, offset, limit)
}
