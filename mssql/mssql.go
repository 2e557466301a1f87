// Package mssql provides the SQL Server row window for pagesql.
package mssql

import (
	"regexp"

	"github.com/zoobzio/pagesql/internal/render"
	"github.com/zoobzio/pagesql/internal/types"
)

// orderByPattern finds an ORDER BY anywhere in the text. Like the WHERE
// detection it is a heuristic, not a parser: an ORDER BY inside OVER (...)
// or a subquery satisfies it even when the outer query is unordered, and
// SQL Server then rejects the OFFSET/FETCH.
var orderByPattern = regexp.MustCompile(`(?i)\bORDER\s+BY\b`)

// Dialect implements the SQL Server OFFSET/FETCH window (2012 and later).
type Dialect struct{}

// New creates a new SQL Server dialect.
func New() *Dialect {
	return &Dialect{}
}

// Name returns "mssql".
func (d *Dialect) Name() string {
	return "mssql"
}

// Capabilities returns the SQL Server capabilities.
func (d *Dialect) Capabilities() render.Capabilities {
	return render.Capabilities{
		Placeholder:     types.BindAt,
		Window:          true,
		RequiresOrderBy: true,
		SubqueryAlias:   true,
	}
}

// Window appends OFFSET ... ROWS FETCH NEXT ... ROWS ONLY.
// SQL Server uses OFFSET/FETCH instead of LIMIT/OFFSET and it requires ORDER BY.
func (d *Dialect) Window(st types.State, w types.Window) (types.State, error) {
	if !orderByPattern.MatchString(st.SQL) {
		return types.State{}, render.NewUnsupportedFeatureError("mssql", render.FeatureUnorderedWindow,
			"add an ORDER BY clause or sort terms when using offset or limit")
	}
	st, offset := st.Bind(w.OffsetName, w.Offset)
	st, limit := st.Bind(w.LimitName, w.Limit)
	return st.WithSQL(st.SQL + " OFFSET " + offset + " ROWS FETCH NEXT " + limit + " ROWS ONLY"), nil
}
