package pagesql

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBounds is returned for a negative offset or limit.
	ErrInvalidBounds = errors.New("offset and limit must not be negative")

	// ErrLimitExceeded is returned when the limit is above the pager's maximum.
	ErrLimitExceeded = errors.New("limit exceeds maximum")

	// ErrStatementNotFound is returned by Statements for an unknown id.
	ErrStatementNotFound = errors.New("statement not found")

	// ErrSuspiciousColumn is returned for sort columns carrying quotes,
	// statement terminators or comments.
	ErrSuspiciousColumn = errors.New("suspicious sort column")

	// ErrInvalidOrder is returned for order terms that are not column[.direction].
	ErrInvalidOrder = errors.New("order term must be column[.direction]")

	// ErrUnknownColumn is returned when a sort column is missing from the schema.
	ErrUnknownColumn = errors.New("unknown sort column")

	// ErrInvalidParamName is returned for a window parameter name the
	// dialect cannot bind.
	ErrInvalidParamName = errors.New("invalid window parameter name")
)

// ParamCollisionError reports a synthetic window parameter whose name is
// already used by the statement or the caller's values.
type ParamCollisionError struct {
	Name string
}

func (e ParamCollisionError) Error() string {
	return fmt.Sprintf("window parameter '%s' collides with an existing parameter", e.Name)
}
