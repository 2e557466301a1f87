package oracle

import (
	"testing"

	"github.com/zoobzio/pagesql/internal/types"
)

func TestNew(t *testing.T) {
	d := New()
	if d == nil {
		t.Fatal("New() returned nil")
	}
	if d.Name() != "oracle" {
		t.Errorf("Name() = %q, want %q", d.Name(), "oracle")
	}
}

func TestWindow(t *testing.T) {
	st := types.NewState("SELECT id FROM users", nil, nil, types.BindNamed)

	got, err := New().Window(st, types.Window{OffsetName: "__offset", Offset: 20, LimitName: "__limit", Limit: 10})
	if err != nil {
		t.Fatalf("Window() error = %v", err)
	}

	expected := "SELECT * FROM (SELECT row_.*, ROWNUM rownum_ FROM (SELECT id FROM users) row_ " +
		"WHERE ROWNUM <= :__limit) WHERE rownum_ > :__offset"
	if got.SQL != expected {
		t.Errorf("SQL = %q, want %q", got.SQL, expected)
	}

	// The upper bound is offset+limit
	if got.Values["__limit"] != 30 {
		t.Errorf("Values[__limit] = %v, want 30", got.Values["__limit"])
	}
	if got.Values["__offset"] != 20 {
		t.Errorf("Values[__offset] = %v, want 20", got.Values["__offset"])
	}
	if got.Bindings[0].Name != "__limit" || got.Bindings[1].Name != "__offset" {
		t.Errorf("bindings = %+v", got.Bindings)
	}
}

func TestCapabilities_NoSubqueryAlias(t *testing.T) {
	if New().Capabilities().SubqueryAlias {
		t.Error("Oracle does not accept AS before a table alias")
	}
}

func TestCapabilities_BindNames(t *testing.T) {
	caps := New().Capabilities()
	if !caps.LetterBindNames {
		t.Error("Oracle bind names must start with a letter")
	}
	for _, name := range []string{caps.OffsetParam, caps.LimitParam} {
		if name == "" || name[0] == '_' {
			t.Errorf("default parameter name %q is not a legal Oracle bind name", name)
		}
	}
}
