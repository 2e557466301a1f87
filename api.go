// Package pagesql rewrites a SQL SELECT statement into a paged statement
// and a count statement without parsing the SQL.
//
// The rewrite runs four fixed stages over one statement: the statement is
// loaded and trimmed, a WHERE fragment and an ORDER BY clause are
// injected, the dialect applies a row window, and a count query is
// synthesized from the filtered, unwindowed SQL.
//
// # Basic Usage
//
//	import "github.com/zoobzio/pagesql/postgres"
//
//	pager := pagesql.New(postgres.New())
//
//	result, err := pager.Rewrite(
//		pagesql.Statement{SQL: "SELECT id, name FROM users"},
//		nil,
//		pagesql.PageBounds{
//			Where:  "age > 18",
//			Orders: []*pagesql.Order{{Column: "name", Direction: pagesql.ASC}},
//			Offset: 20,
//			Limit:  10,
//		},
//	)
//	// result.PageSQL:  SELECT * FROM (SELECT id, name FROM users WHERE age > 18) AS temp_order ORDER BY name ASC LIMIT $1 OFFSET $2
//	// result.CountSQL: SELECT COUNT(1) FROM (SELECT * FROM (...) AS temp_order ORDER BY name ASC) AS tmp_count
//	// result.Args():   []any{10, 20}
//
// # Dialects
//
// Row windows are dialect specific. Available dialects: postgres, mysql,
// mariadb, sqlite, mssql, oracle, db2 and h2. Engines without a window
// implementation use Unsupported, which fails any offset or limit request.
// The dialects package looks dialects up by name for configuration.
//
// # WHERE injection
//
// The fragment is placed at WherePlaceholder when the statement contains
// it, otherwise it is joined to the first WHERE keyword, otherwise it is
// appended. Keyword detection is a whitespace-delimited, case-insensitive
// pattern match and can pick a WHERE inside a subquery when the outer
// query has none.
//
// The SQL Server window has the same limitation for ORDER BY: any ORDER BY
// in the text, including one in OVER (...) or a subquery, passes its check.
// SQL Server counts from the filtered SQL before the ORDER BY wrap, so a
// statement that ends in its own ORDER BY still produces a count query the
// server rejects; leave ordering to PageBounds for that dialect.
package pagesql

import (
	"github.com/zoobzio/pagesql/internal/render"
	"github.com/zoobzio/pagesql/internal/types"
)

// Binding is one declared parameter binding.
type Binding = types.Binding

// State is the working state of a rewrite, handed between stages.
type State = types.State

// Window is the row window handed to a dialect.
type Window = types.Window

// BindStyle selects how synthetic parameters are written into SQL.
type BindStyle = types.BindStyle

// Re-export bind style constants for public API.
const (
	BindQuestion = types.BindQuestion
	BindDollar   = types.BindDollar
	BindNamed    = types.BindNamed
	BindAt       = types.BindAt
)

// ParseBindStyle maps "question", "dollar", "named" or "at" to a BindStyle.
func ParseBindStyle(name string) (BindStyle, bool) {
	return types.ParseBindStyle(name)
}

// Direction represents sort direction.
type Direction = types.Direction

// Re-export direction constants for public API.
const (
	ASC  = types.ASC
	DESC = types.DESC
)

// Order is a structured sort term.
type Order = types.Order

// Capabilities describes how a dialect expresses a row window.
type Capabilities = render.Capabilities

// UnsupportedFeatureError is returned when a dialect cannot render a request.
type UnsupportedFeatureError = render.UnsupportedFeatureError
