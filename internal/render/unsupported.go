package render

import "github.com/zoobzio/pagesql/internal/types"

// Unsupported is the dialect for engines without a row window
// implementation. Counting and clause injection still work; any request
// for an offset or limit fails.
type Unsupported struct {
	Dialect string
}

// Name returns the engine name.
func (u Unsupported) Name() string {
	return u.Dialect
}

// Capabilities reports that no window can be rendered.
func (u Unsupported) Capabilities() Capabilities {
	return Capabilities{
		Placeholder:     types.BindQuestion,
		OrderedSubquery: true,
		SubqueryAlias:   true,
	}
}

// Window always fails.
func (u Unsupported) Window(_ types.State, _ types.Window) (types.State, error) {
	return types.State{}, NewUnsupportedFeatureError(u.Dialect, FeaturePagedQueries,
		"choose a supported dialect or request the statement without offset and limit")
}
