package pagesql

import "github.com/zoobzio/pagesql/internal/render"

// Dialect applies a row window using one database engine's syntax.
type Dialect interface {
	// Name returns the engine name used in errors and logs.
	Name() string

	// Capabilities describes the engine's window syntax.
	Capabilities() render.Capabilities

	// Window restricts st.SQL to the requested rows. Synthetic bindings
	// are added in the order their placeholders appear in the text.
	Window(st State, w Window) (State, error)
}

// Counter is implemented by dialects that need their own count query.
type Counter interface {
	Count(sql string) string
}

// Unsupported returns a dialect that injects clauses and counts normally
// but rejects every row window.
func Unsupported(name string) Dialect {
	return render.Unsupported{Dialect: name}
}
