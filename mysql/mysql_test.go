package mysql

import (
	"testing"

	"github.com/zoobzio/pagesql/internal/types"
)

func TestNew(t *testing.T) {
	d := New()
	if d == nil {
		t.Fatal("New() returned nil")
	}
	if d.Name() != "mysql" {
		t.Errorf("Name() = %q, want %q", d.Name(), "mysql")
	}
}

func TestWindow(t *testing.T) {
	st := types.NewState(
		"SELECT id FROM users WHERE status = ?",
		[]types.Binding{{Name: "status"}},
		map[string]any{"status": "active"},
		types.BindQuestion,
	)

	got, err := New().Window(st, types.Window{OffsetName: "__offset", Offset: 30, LimitName: "__limit", Limit: 15})
	if err != nil {
		t.Fatalf("Window() error = %v", err)
	}

	// MySQL takes the offset first
	expected := "SELECT id FROM users WHERE status = ? LIMIT ?, ?"
	if got.SQL != expected {
		t.Errorf("SQL = %q, want %q", got.SQL, expected)
	}
	if got.Bindings[1].Name != "__offset" || got.Bindings[2].Name != "__limit" {
		t.Errorf("bindings = %+v", got.Bindings)
	}
	if got.Values["status"] != "active" {
		t.Errorf("declared value lost: %v", got.Values)
	}
}
