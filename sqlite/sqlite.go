// Package sqlite provides the SQLite row window for pagesql.
package sqlite

import (
	"github.com/zoobzio/pagesql/internal/render"
	"github.com/zoobzio/pagesql/internal/types"
)

// Dialect implements the SQLite LIMIT/OFFSET window.
type Dialect struct{}

// New creates a new SQLite dialect.
func New() *Dialect {
	return &Dialect{}
}

// Name returns "sqlite".
func (d *Dialect) Name() string {
	return "sqlite"
}

// Capabilities returns the SQLite capabilities.
func (d *Dialect) Capabilities() render.Capabilities {
	return render.Capabilities{
		Placeholder:     types.BindQuestion,
		Window:          true,
		OrderedSubquery: true,
		SubqueryAlias:   true,
	}
}

// Window appends LIMIT ? OFFSET ?.
// SQLite has no OFFSET without LIMIT, so the limit is always written.
func (d *Dialect) Window(st types.State, w types.Window) (types.State, error) {
	st, limit := st.Bind(w.LimitName, w.Limit)
	st, offset := st.Bind(w.OffsetName, w.Offset)
	return st.WithSQL(st.SQL + " LIMIT " + limit + " OFFSET " + offset), nil
}
