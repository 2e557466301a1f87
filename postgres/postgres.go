// Package postgres provides the PostgreSQL row window for pagesql.
package postgres

import (
	"github.com/zoobzio/pagesql/internal/render"
	"github.com/zoobzio/pagesql/internal/types"
)

// Dialect implements the PostgreSQL LIMIT/OFFSET window.
type Dialect struct{}

// New creates a new PostgreSQL dialect.
func New() *Dialect {
	return &Dialect{}
}

// Name returns "postgres".
func (d *Dialect) Name() string {
	return "postgres"
}

// Capabilities returns the PostgreSQL capabilities.
func (d *Dialect) Capabilities() render.Capabilities {
	return render.Capabilities{
		Placeholder:     types.BindDollar,
		Window:          true,
		OrderedSubquery: true,
		SubqueryAlias:   true,
	}
}

// Window appends LIMIT and OFFSET, binding the limit first.
func (d *Dialect) Window(st types.State, w types.Window) (types.State, error) {
	st, limit := st.Bind(w.LimitName, w.Limit)
	st, offset := st.Bind(w.OffsetName, w.Offset)
	return st.WithSQL(st.SQL + " LIMIT " + limit + " OFFSET " + offset), nil
}
