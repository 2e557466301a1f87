// Package h2 provides the H2 row window for pagesql.
package h2

import (
	"github.com/zoobzio/pagesql/internal/render"
	"github.com/zoobzio/pagesql/internal/types"
)

// Dialect implements the H2 LIMIT/OFFSET window.
type Dialect struct{}

// New creates a new H2 dialect.
func New() *Dialect {
	return &Dialect{}
}

// Name returns "h2".
func (d *Dialect) Name() string {
	return "h2"
}

// Capabilities returns the H2 capabilities.
func (d *Dialect) Capabilities() render.Capabilities {
	return render.Capabilities{
		Placeholder:     types.BindQuestion,
		Window:          true,
		OrderedSubquery: true,
		SubqueryAlias:   true,
	}
}

// Window appends LIMIT ? OFFSET ?.
func (d *Dialect) Window(st types.State, w types.Window) (types.State, error) {
	st, limit := st.Bind(w.LimitName, w.Limit)
	st, offset := st.Bind(w.OffsetName, w.Offset)
	return st.WithSQL(st.SQL + " LIMIT " + limit + " OFFSET " + offset), nil
}
