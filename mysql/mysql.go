// Package mysql provides the MySQL row window for pagesql.
package mysql

import (
	"github.com/zoobzio/pagesql/internal/render"
	"github.com/zoobzio/pagesql/internal/types"
)

// Dialect implements the MySQL "LIMIT offset, count" window.
type Dialect struct{}

// New creates a new MySQL dialect.
func New() *Dialect {
	return &Dialect{}
}

// Name returns "mysql".
func (d *Dialect) Name() string {
	return "mysql"
}

// Capabilities returns the MySQL capabilities.
func (d *Dialect) Capabilities() render.Capabilities {
	return render.Capabilities{
		Placeholder:     types.BindQuestion,
		Window:          true,
		OrderedSubquery: true,
		SubqueryAlias:   true,
	}
}

// Window appends LIMIT <offset>, <limit>. The offset is bound first
// because it comes first in the text.
func (d *Dialect) Window(st types.State, w types.Window) (types.State, error) {
	st, offset := st.Bind(w.OffsetName, w.Offset)
	st, limit := st.Bind(w.LimitName, w.Limit)
	return st.WithSQL(st.SQL + " LIMIT " + offset + ", " + limit), nil
}
