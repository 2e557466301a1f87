package pagesql

import "database/sql"

// Result is the output of one rewrite.
type Result struct {
	// Values holds every parameter value by name, synthetic ones included.
	Values map[string]any

	// PageSQL returns only the requested rows.
	PageSQL string

	// CountSQL counts every row matching the filters.
	CountSQL string

	// Bindings lists the parameters of PageSQL in order.
	Bindings []Binding

	// CountBindings lists the parameters of CountSQL in order.
	CountBindings []Binding

	// Style is how the synthetic parameters were written.
	Style BindStyle
}

// Args returns the PageSQL arguments for database/sql or pgx.
func (r *Result) Args() []any {
	return r.args(r.Bindings)
}

// CountArgs returns the CountSQL arguments.
func (r *Result) CountArgs() []any {
	return r.args(r.CountBindings)
}

// Positional styles get plain values in binding order. Named styles get
// one sql.NamedArg per distinct name.
func (r *Result) args(bindings []Binding) []any {
	args := make([]any, 0, len(bindings))
	if !r.Style.Named() {
		for _, b := range bindings {
			args = append(args, r.Values[b.Name])
		}
		return args
	}

	seen := make(map[string]bool, len(bindings))
	for _, b := range bindings {
		if seen[b.Name] {
			continue
		}
		seen[b.Name] = true
		args = append(args, sql.Named(b.Name, r.Values[b.Name]))
	}
	return args
}
