// Package oracle provides the Oracle row window for pagesql.
//
// The window nests the statement twice and filters on ROWNUM, which Oracle
// assigns before the outer predicate runs. The inner filter therefore
// needs the upper row number (offset+limit) rather than the limit.
package oracle

import (
	"github.com/zoobzio/pagesql/internal/render"
	"github.com/zoobzio/pagesql/internal/types"
)

// Dialect implements the Oracle nested ROWNUM window.
type Dialect struct{}

// New creates a new Oracle dialect.
func New() *Dialect {
	return &Dialect{}
}

// Name returns "oracle".
func (d *Dialect) Name() string {
	return "oracle"
}

// Default names of the window parameters. Oracle bind variables follow
// unquoted identifier rules, so the package defaults "__offset" and
// "__limit" are rejected with ORA-01745.
const (
	OffsetParam = "pagesql_offset"
	LimitParam  = "pagesql_limit"
)

// Capabilities returns the Oracle capabilities.
// Oracle rejects AS before a table alias.
func (d *Dialect) Capabilities() render.Capabilities {
	return render.Capabilities{
		Placeholder:     types.BindNamed,
		OffsetParam:     OffsetParam,
		LimitParam:      LimitParam,
		Window:          true,
		OrderedSubquery: true,
		LetterBindNames: true,
	}
}

// Window wraps the statement in ROWNUM filters. The limit binding
// carries offset+limit.
func (d *Dialect) Window(st types.State, w types.Window) (types.State, error) {
	inner := st.SQL
	st, upper := st.Bind(w.LimitName, w.Offset+w.Limit)
	st, offset := st.Bind(w.OffsetName, w.Offset)
	return st.WithSQL("SELECT * FROM (SELECT row_.*, ROWNUM rownum_ FROM (" + inner +
		") row_ WHERE ROWNUM <= " + upper + ") WHERE rownum_ > " + offset), nil
}
