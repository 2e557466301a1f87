package render

import (
	"errors"
	"testing"

	"github.com/zoobzio/pagesql/internal/types"
)

func TestUnsupportedFeatureError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      UnsupportedFeatureError
		expected string
	}{
		{
			name: "without hint",
			err: UnsupportedFeatureError{
				Feature: "paged queries",
				Dialect: "sybase",
			},
			expected: "sybase does not support paged queries",
		},
		{
			name: "with hint",
			err: UnsupportedFeatureError{
				Feature: FeatureUnorderedWindow,
				Dialect: "mssql",
				Hint:    "add an ORDER BY clause",
			},
			expected: "mssql does not support OFFSET/FETCH without ORDER BY (add an ORDER BY clause)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewUnsupportedFeatureError(t *testing.T) {
	t.Run("without hint", func(t *testing.T) {
		err := NewUnsupportedFeatureError("sybase", FeaturePagedQueries)
		var ufErr UnsupportedFeatureError
		if !errors.As(err, &ufErr) {
			t.Fatal("expected UnsupportedFeatureError")
		}
		if ufErr.Dialect != "sybase" {
			t.Errorf("Dialect = %q, want %q", ufErr.Dialect, "sybase")
		}
		if ufErr.Feature != FeaturePagedQueries {
			t.Errorf("Feature = %q, want %q", ufErr.Feature, FeaturePagedQueries)
		}
		if ufErr.Hint != "" {
			t.Errorf("Hint = %q, want empty", ufErr.Hint)
		}
	})

	t.Run("with hint", func(t *testing.T) {
		err := NewUnsupportedFeatureError("mssql", "OFFSET", "use ORDER BY")
		var ufErr UnsupportedFeatureError
		if !errors.As(err, &ufErr) {
			t.Fatal("expected UnsupportedFeatureError")
		}
		if ufErr.Hint != "use ORDER BY" {
			t.Errorf("Hint = %q, want %q", ufErr.Hint, "use ORDER BY")
		}
	})
}

func TestUnsupported_Window(t *testing.T) {
	u := Unsupported{Dialect: "sybase"}
	if u.Name() != "sybase" {
		t.Errorf("Name() = %q, want %q", u.Name(), "sybase")
	}

	st := types.NewState("SELECT 1", nil, nil, types.BindQuestion)
	_, err := u.Window(st, types.Window{OffsetName: "__offset", LimitName: "__limit", Offset: 10, Limit: 5})
	var ufErr UnsupportedFeatureError
	if !errors.As(err, &ufErr) {
		t.Fatalf("Window() error = %v, want UnsupportedFeatureError", err)
	}
	if ufErr.Feature != FeaturePagedQueries {
		t.Errorf("Feature = %q, want %q", ufErr.Feature, FeaturePagedQueries)
	}
	if u.Capabilities().Window {
		t.Error("Capabilities().Window = true for unsupported dialect")
	}
}
