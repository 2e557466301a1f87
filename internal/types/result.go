package types

import "reflect"

// State is the working state of one rewrite.
// Methods never modify the receiver; each returns a fresh copy so every
// stage of the pipeline sees exactly what the previous stage produced.
type State struct {
	Values   map[string]any
	SQL      string
	Bindings []Binding
	Style    BindStyle
}

// NewState creates a state owning copies of bindings and values.
func NewState(sql string, bindings []Binding, values map[string]any, style BindStyle) State {
	st := State{
		SQL:      sql,
		Bindings: make([]Binding, len(bindings)),
		Values:   make(map[string]any, len(values)),
		Style:    style,
	}
	copy(st.Bindings, bindings)
	for k, v := range values {
		st.Values[k] = v
	}
	return st
}

// WithSQL returns a copy of the state carrying new SQL text.
func (s State) WithSQL(sql string) State {
	next := s.clone()
	next.SQL = sql
	return next
}

// Bind appends a synthetic binding and returns the new state together
// with the placeholder text that refers to it.
func (s State) Bind(name string, value any) (State, string) {
	next := s.clone()
	next.Bindings = append(next.Bindings, Binding{Name: name, Type: reflect.TypeOf(value)})
	next.Values[name] = value
	return next, next.Style.Placeholder(name, len(next.Bindings))
}

// Has reports whether name is already a declared binding or a supplied value.
func (s State) Has(name string) bool {
	if _, ok := s.Values[name]; ok {
		return true
	}
	for _, b := range s.Bindings {
		if b.Name == name {
			return true
		}
	}
	return false
}

func (s State) clone() State {
	return NewState(s.SQL, s.Bindings, s.Values, s.Style)
}

// Window is the row window requested from a dialect.
type Window struct {
	OffsetName string
	LimitName  string
	Offset     int
	Limit      int
}
