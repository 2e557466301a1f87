package pagesql

import (
	"fmt"
	"math"
	"strings"
)

// Sentinels meaning "no offset" and "no limit".
const (
	NoRowOffset = 0
	NoRowLimit  = math.MaxInt32
)

// PageBounds is one pagination request.
//
// The zero value asks for zero rows; start from Unbounded or
// NewPageBounds instead.
type PageBounds struct {
	// Where is a raw condition without the WHERE keyword.
	Where string
	// OrderBy is a raw ORDER BY clause without the keywords.
	// When set it takes precedence over Orders.
	OrderBy string
	Orders  []*Order
	Offset  int
	Limit   int
}

// Unbounded returns bounds with no offset and no limit.
func Unbounded() PageBounds {
	return PageBounds{Offset: NoRowOffset, Limit: NoRowLimit}
}

// NewPageBounds returns bounds for a 1-based page of limit rows.
func NewPageBounds(page, limit int, orders ...*Order) PageBounds {
	if page < 1 {
		page = 1
	}
	return PageBounds{
		Offset: (page - 1) * limit,
		Limit:  limit,
		Orders: orders,
	}
}

// HasOrderBy reports whether any ordering was requested.
func (b PageBounds) HasOrderBy() bool {
	if b.HasRawOrderBy() {
		return true
	}
	for _, o := range b.Orders {
		if o != nil {
			return true
		}
	}
	return false
}

// HasRawOrderBy reports whether raw ORDER BY text was supplied.
func (b PageBounds) HasRawOrderBy() bool {
	return strings.TrimSpace(b.OrderBy) != ""
}

// Windowed reports whether an offset or a limit was requested.
func (b PageBounds) Windowed() bool {
	return b.Offset != NoRowOffset || b.Limit != NoRowLimit
}

// Page returns the 1-based page the offset falls on.
func (b PageBounds) Page() int {
	if b.Limit <= 0 || b.Limit == NoRowLimit {
		return 1
	}
	return b.Offset/b.Limit + 1
}

// Validate rejects negative offsets and limits.
func (b PageBounds) Validate() error {
	if b.Offset < 0 || b.Limit < 0 {
		return fmt.Errorf("%w: offset=%d limit=%d", ErrInvalidBounds, b.Offset, b.Limit)
	}
	return nil
}
