package types

import (
	"reflect"
	"strconv"
)

// Binding is one declared parameter binding of a statement.
// Bindings are ordered; positional drivers consume them in sequence.
type Binding struct {
	Type reflect.Type
	Name string
}

// BindStyle selects how a synthetic parameter is written into SQL text.
type BindStyle int

const (
	BindQuestion BindStyle = iota // ?
	BindDollar                    // $1, $2, ...
	BindNamed                     // :name
	BindAt                        // @name
)

// String returns the configuration name of the style.
func (s BindStyle) String() string {
	switch s {
	case BindQuestion:
		return "question"
	case BindDollar:
		return "dollar"
	case BindNamed:
		return "named"
	case BindAt:
		return "at"
	default:
		return "BindStyle(" + strconv.Itoa(int(s)) + ")"
	}
}

// ParseBindStyle maps a configuration name back to a BindStyle.
func ParseBindStyle(name string) (BindStyle, bool) {
	switch name {
	case "question":
		return BindQuestion, true
	case "dollar":
		return BindDollar, true
	case "named":
		return BindNamed, true
	case "at":
		return BindAt, true
	default:
		return BindQuestion, false
	}
}

// Named reports whether the style refers to parameters by name rather than position.
func (s BindStyle) Named() bool {
	return s == BindNamed || s == BindAt
}

// Placeholder renders the SQL text for a parameter called name that will
// occupy the given 1-based position in the binding list.
func (s BindStyle) Placeholder(name string, position int) string {
	switch s {
	case BindDollar:
		return "$" + strconv.Itoa(position)
	case BindNamed:
		return ":" + name
	case BindAt:
		return "@" + name
	default:
		return "?"
	}
}
