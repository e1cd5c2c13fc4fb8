package hypermedia

import "strconv"

// DefaultPageSize is the number of entries per page on paged listings.
const DefaultPageSize = 3

// Page is a bounded window of an ordered collection plus a link to the
// next window. Next is empty when the collection is exhausted.
type Page[T any] struct {
	Entries []T    `json:"entries"`
	Next    string `json:"next"`
}

// Paginate windows items to at most size consecutive entries starting
// at offset. A negative offset is treated as 0. When more items remain
// past the window, nextURL is called with the next offset to build the
// Next link; otherwise Next stays empty. Entries is never nil.
func Paginate[T any](items []T, offset, size int, nextURL func(offset int) string) Page[T] {
	if offset < 0 {
		offset = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}

	page := Page[T]{Entries: make([]T, 0, size)}

	if offset < len(items) {
		end := offset + size
		if end > len(items) {
			end = len(items)
		}
		page.Entries = append(page.Entries, items[offset:end]...)
	}

	if offset+size < len(items) {
		page.Next = nextURL(offset + size)
	}

	return page
}

// ParseOffset parses an offset query parameter. Missing, unparseable,
// or negative values fall back to 0.
func ParseOffset(raw string) int {
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}
