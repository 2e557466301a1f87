package types

import "strings"

// Direction represents sort direction.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// ParseDirection reads "desc" in any case as DESC; anything else is ASC.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), "desc") {
		return DESC
	}
	return ASC
}

// Order is a single structured sort term.
type Order struct {
	Column    string
	Direction Direction
}

// String renders the term as "<column> <direction>".
func (o Order) String() string {
	dir := o.Direction
	if dir == "" {
		dir = ASC
	}
	return o.Column + " " + string(dir)
}
