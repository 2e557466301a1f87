package render

import "github.com/zoobzio/pagesql/internal/types"

// Capabilities describes how a dialect expresses a row window.
type Capabilities struct {
	Placeholder     types.BindStyle // default style for synthetic parameters
	OffsetParam     string          // default offset name; empty keeps the package default
	LimitParam      string          // default limit name; empty keeps the package default
	Window          bool            // row windows are supported at all
	RequiresOrderBy bool            // OFFSET/FETCH needs an ORDER BY
	OrderedSubquery bool            // ORDER BY is allowed inside a derived table
	SubqueryAlias   bool            // derived tables may be aliased with AS
	LetterBindNames bool            // named bind variables must start with a letter
}
