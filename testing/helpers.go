// Package testing provides test utilities for pagesql.
package testing

import (
	"strings"
	"testing"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/pagesql"
)

// TestProject returns the DBML project behind TestSchema.
// Includes users, orders and products tables.
func TestProject() *dbml.Project {
	project := dbml.NewProject("test")

	// Users table
	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	users.AddColumn(dbml.NewColumn("age", "int"))
	users.AddColumn(dbml.NewColumn("active", "boolean"))
	users.AddColumn(dbml.NewColumn("created_at", "timestamp"))
	project.AddTable(users)

	// Orders table
	orders := dbml.NewTable("orders")
	orders.AddColumn(dbml.NewColumn("id", "bigint"))
	orders.AddColumn(dbml.NewColumn("user_id", "bigint"))
	orders.AddColumn(dbml.NewColumn("total", "numeric"))
	orders.AddColumn(dbml.NewColumn("status", "varchar"))
	orders.AddColumn(dbml.NewColumn("created_at", "timestamp"))
	project.AddTable(orders)

	// Products table
	products := dbml.NewTable("products")
	products.AddColumn(dbml.NewColumn("id", "bigint"))
	products.AddColumn(dbml.NewColumn("name", "varchar"))
	products.AddColumn(dbml.NewColumn("price", "numeric"))
	products.AddColumn(dbml.NewColumn("stock", "int"))
	project.AddTable(products)

	return project
}

// TestSchema creates a sort column schema over TestProject.
func TestSchema(t *testing.T) *pagesql.Schema {
	t.Helper()

	schema, err := pagesql.NewSchemaFromDBML(TestProject())
	if err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}
	return schema
}

// AssertSQL compares expected and actual SQL, reporting detailed differences.
func AssertSQL(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertBindings checks binding names in order.
func AssertBindings(t *testing.T, expected []string, actual []pagesql.Binding) {
	t.Helper()
	names := make([]string, len(actual))
	for i, b := range actual {
		names[i] = b.Name
	}
	if len(expected) != len(names) {
		t.Errorf("Binding count mismatch: expected %d, got %d\nExpected: %v\nActual: %v",
			len(expected), len(names), expected, names)
		return
	}
	for i := range expected {
		if expected[i] != names[i] {
			t.Errorf("Binding %d mismatch: expected %q, got %q\nExpected: %v\nActual: %v",
				i, expected[i], names[i], expected, names)
		}
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertErrorContains checks that error message contains substring.
func AssertErrorContains(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error containing %q but got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("Expected error containing %q, got: %v", substr, err)
	}
}
