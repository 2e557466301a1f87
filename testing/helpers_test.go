package testing

import (
	"errors"
	"testing"

	"github.com/zoobzio/pagesql"
)

// =============================================================================
// TestSchema Tests
// =============================================================================

func TestTestSchema(t *testing.T) {
	schema := TestSchema(t)
	if schema == nil {
		t.Fatal("Expected non-nil schema")
	}

	for _, table := range []string{"users", "orders", "products"} {
		if !schema.HasTable(table) {
			t.Errorf("Expected table %q", table)
		}
	}

	AssertNoError(t, schema.ValidateColumn("users.email"))
	AssertNoError(t, schema.ValidateColumn("u.created_at"))
	AssertError(t, schema.ValidateColumn("users.price"))
}

// =============================================================================
// AssertSQL Tests
// =============================================================================

func TestAssertSQL_Match(t *testing.T) {
	AssertSQL(t, "SELECT * FROM users", "SELECT * FROM users")
}

// =============================================================================
// AssertBindings Tests
// =============================================================================

func TestAssertBindings_Match(t *testing.T) {
	AssertBindings(t, []string{"id", "__limit"}, []pagesql.Binding{{Name: "id"}, {Name: "__limit"}})
}

func TestAssertBindings_EmptySlices(t *testing.T) {
	AssertBindings(t, []string{}, nil)
}

// =============================================================================
// Error Assertion Tests
// =============================================================================

func TestAssertNoError_Nil(t *testing.T) {
	AssertNoError(t, nil)
}

func TestAssertError_Error(t *testing.T) {
	AssertError(t, errors.New("test error"))
}

func TestAssertErrorContains_PartialMatch(t *testing.T) {
	AssertErrorContains(t, errors.New("unknown sort column: 'x'"), "sort column")
}
