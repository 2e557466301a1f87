package pagesql

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/zoobzio/pagesql/internal/types"
)

// Statement is the original SQL and its declared parameter bindings.
type Statement struct {
	SQL      string
	Bindings []Binding
}

// StatementProvider resolves a logical query id to its statement.
type StatementProvider interface {
	Statement(id string) (Statement, error)
}

// Statements is a StatementProvider backed by a map.
type Statements map[string]Statement

// Statement returns the statement registered under id.
func (s Statements) Statement(id string) (Statement, error) {
	stmt, ok := s[id]
	if !ok {
		return Statement{}, fmt.Errorf("%w: '%s'", ErrStatementNotFound, id)
	}
	return stmt, nil
}

// Load builds the initial rewrite state for stmt.
//
// The SQL is trimmed and a single trailing ';' is removed. A map with
// string keys seeds the values directly; any other non-nil params is
// bound to every declared binding name.
func Load(stmt Statement, params any, style BindStyle) State {
	sql := strings.TrimSpace(stmt.SQL)
	if strings.HasSuffix(sql, ";") {
		sql = strings.TrimSpace(sql[:len(sql)-1])
	}

	values := make(map[string]any)
	if params != nil {
		if m, ok := params.(map[string]any); ok {
			values = m
		} else if rv := reflect.ValueOf(params); rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
			iter := rv.MapRange()
			for iter.Next() {
				values[iter.Key().String()] = iter.Value().Interface()
			}
		} else {
			for _, b := range stmt.Bindings {
				values[b.Name] = params
			}
		}
	}

	return types.NewState(sql, stmt.Bindings, values, style)
}
