package pagesql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/dbml"
)

// Schema validates sort columns against a DBML project.
type Schema struct {
	project *dbml.Project
	// Internal indexes for fast validation
	tables  map[string]bool
	columns map[string]map[string]bool // table -> column
}

// NewSchemaFromDBML creates a Schema from a DBML project.
func NewSchemaFromDBML(project *dbml.Project) (*Schema, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	s := &Schema{
		project: project,
		tables:  make(map[string]bool),
		columns: make(map[string]map[string]bool),
	}

	for _, table := range project.Tables {
		s.tables[table.Name] = true
		s.columns[table.Name] = make(map[string]bool)
		for _, col := range table.Columns {
			s.columns[table.Name][col.Name] = true
		}
	}

	return s, nil
}

// Project returns the underlying DBML project.
func (s *Schema) Project() *dbml.Project {
	return s.project
}

// HasTable reports whether the schema has a table called name.
func (s *Schema) HasTable(name string) bool {
	return s.tables[name]
}

// ValidateColumn checks a sort column. "column" must exist in some table;
// "table.column" must exist in that table; "a.column" with a single
// lowercase letter is treated as an alias and checked against all tables.
func (s *Schema) ValidateColumn(column string) error {
	if isSuspiciousColumn(column) {
		return fmt.Errorf("%w: %q", ErrSuspiciousColumn, column)
	}

	name := column
	qualifier := ""
	if dot := strings.LastIndexByte(column, '.'); dot != -1 {
		qualifier, name = column[:dot], column[dot+1:]
	}

	if qualifier != "" && !isTableAlias(qualifier) {
		cols, ok := s.columns[qualifier]
		if !ok {
			return fmt.Errorf("%w: table '%s' not found in schema", ErrUnknownColumn, qualifier)
		}
		if !cols[name] {
			return fmt.Errorf("%w: '%s' not found in table '%s'", ErrUnknownColumn, name, qualifier)
		}
		return nil
	}

	for _, cols := range s.columns {
		if cols[name] {
			return nil
		}
	}
	return fmt.Errorf("%w: '%s' not found in schema", ErrUnknownColumn, column)
}

// ValidateOrders checks every non-nil order's column.
func (s *Schema) ValidateOrders(orders []*Order) error {
	for _, o := range orders {
		if o == nil {
			continue
		}
		if err := s.ValidateColumn(o.Column); err != nil {
			return err
		}
	}
	return nil
}

// isTableAlias checks if a string is a valid single-letter table alias.
func isTableAlias(alias string) bool {
	return len(alias) == 1 && alias[0] >= 'a' && alias[0] <= 'z'
}
