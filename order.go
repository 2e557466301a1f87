package pagesql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/pagesql/internal/types"
)

// NewOrder creates a sort term, rejecting columns that look like injected SQL.
func NewOrder(column string, dir Direction) (*Order, error) {
	column = strings.TrimSpace(column)
	if column == "" {
		return nil, fmt.Errorf("%w: empty column", ErrInvalidOrder)
	}
	if isSuspiciousColumn(column) {
		return nil, fmt.Errorf("%w: %q", ErrSuspiciousColumn, column)
	}
	if dir == "" {
		dir = ASC
	}
	return &Order{Column: column, Direction: dir}, nil
}

// ParseOrders reads a comma separated list such as "name.asc, id.desc".
// The direction is optional and defaults to ASC. Blank terms and terms
// starting with "." or "null." are skipped.
func ParseOrders(segment string) ([]*Order, error) {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return nil, nil
	}

	var orders []*Order
	for _, term := range strings.Split(segment, ",") {
		term = strings.TrimSpace(term)
		if term == "" || strings.HasPrefix(term, ".") || strings.HasPrefix(term, "null.") {
			continue
		}

		parts := strings.Split(term, ".")
		if len(parts) > 2 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOrder, term)
		}

		dir := ASC
		if len(parts) == 2 {
			dir = types.ParseDirection(parts[1])
		}

		order, err := NewOrder(parts[0], dir)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// isSuspiciousColumn flags quotes, statement terminators and comments.
func isSuspiciousColumn(column string) bool {
	return strings.ContainsAny(column, "';") || strings.Contains(column, "--")
}
