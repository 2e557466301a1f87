// Package db2 provides the DB2 row window for pagesql.
package db2

import (
	"github.com/zoobzio/pagesql/internal/render"
	"github.com/zoobzio/pagesql/internal/types"
)

// Dialect implements a ROW_NUMBER() window for DB2.
type Dialect struct{}

// New creates a new DB2 dialect.
func New() *Dialect {
	return &Dialect{}
}

// Name returns "db2".
func (d *Dialect) Name() string {
	return "db2"
}

// Capabilities returns the DB2 capabilities.
func (d *Dialect) Capabilities() render.Capabilities {
	return render.Capabilities{
		Placeholder:     types.BindQuestion,
		Window:          true,
		OrderedSubquery: true,
		SubqueryAlias:   true,
	}
}

// Window numbers the rows and keeps those in (offset, offset+limit].
// The limit binding carries offset+limit.
func (d *Dialect) Window(st types.State, w types.Window) (types.State, error) {
	inner := st.SQL
	st, offset := st.Bind(w.OffsetName, w.Offset)
	st, upper := st.Bind(w.LimitName, w.Offset+w.Limit)
	return st.WithSQL("SELECT * FROM (SELECT inner_.*, ROW_NUMBER() OVER () AS rownumber_ FROM (" + inner +
		") AS inner_) AS outer_ WHERE rownumber_ > " + offset + " AND rownumber_ <= " + upper), nil
}
