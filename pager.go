package pagesql

import (
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// Default names of the synthetic window parameters.
const (
	DefaultOffsetParam = "__offset"
	DefaultLimitParam  = "__limit"
)

// logSQLLimit bounds the SQL text written to debug logs.
const logSQLLimit = 200

// Pager rewrites statements for one dialect.
// A Pager is immutable after New and safe for concurrent use.
type Pager struct {
	dialect    Dialect
	schema     *Schema
	logger     zerolog.Logger
	offsetName string
	limitName  string
	style      BindStyle
	maxLimit   int
}

// Option configures a Pager.
type Option func(*Pager)

// WithBindStyle overrides the dialect's default placeholder style.
func WithBindStyle(style BindStyle) Option {
	return func(p *Pager) {
		p.style = style
	}
}

// WithParamNames sets the names of the synthetic offset and limit parameters.
func WithParamNames(offset, limit string) Option {
	return func(p *Pager) {
		p.offsetName = offset
		p.limitName = limit
	}
}

// WithLogger sets the logger used for debug output of each rewrite.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Pager) {
		p.logger = logger
	}
}

// WithSchema validates structured sort columns against schema.
func WithSchema(schema *Schema) Option {
	return func(p *Pager) {
		p.schema = schema
	}
}

// WithMaxLimit rejects windowed requests above max rows. Zero disables the cap.
func WithMaxLimit(max int) Option {
	return func(p *Pager) {
		p.maxLimit = max
	}
}

// New creates a Pager for dialect d. Window parameter names start from
// the dialect's defaults when it declares any.
func New(d Dialect, opts ...Option) *Pager {
	caps := d.Capabilities()
	p := &Pager{
		dialect:    d,
		logger:     zerolog.Nop(),
		offsetName: DefaultOffsetParam,
		limitName:  DefaultLimitParam,
		style:      caps.Placeholder,
	}
	if caps.OffsetParam != "" {
		p.offsetName = caps.OffsetParam
	}
	if caps.LimitParam != "" {
		p.limitName = caps.LimitParam
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Dialect returns the pager's dialect.
func (p *Pager) Dialect() Dialect {
	return p.dialect
}

// ParamNames returns the names of the synthetic offset and limit parameters.
func (p *Pager) ParamNames() (offset, limit string) {
	return p.offsetName, p.limitName
}

// ValidateParamNames rejects window parameter names the dialect cannot
// bind: identical names, or names not starting with a letter when the
// dialect requires that of named bind variables.
func (p *Pager) ValidateParamNames() error {
	if p.offsetName == p.limitName {
		return ParamCollisionError{Name: p.limitName}
	}
	if !p.dialect.Capabilities().LetterBindNames || !p.style.Named() {
		return nil
	}
	for _, name := range []string{p.offsetName, p.limitName} {
		if !startsWithLetter(name) {
			return fmt.Errorf("%w: %q on %s", ErrInvalidParamName, name, p.dialect.Name())
		}
	}
	return nil
}

func startsWithLetter(name string) bool {
	if name == "" {
		return false
	}
	c := name[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// RewriteID resolves id through provider and rewrites the statement.
func (p *Pager) RewriteID(provider StatementProvider, id string, params any, bounds PageBounds) (*Result, error) {
	stmt, err := provider.Statement(id)
	if err != nil {
		return nil, err
	}
	return p.Rewrite(stmt, params, bounds)
}

// Rewrite produces the paged and count statements for stmt.
//
// Stages run once, in order: load, WHERE, ORDER BY, count, window. The
// window stage only runs when bounds ask for an offset or a limit. The
// count is taken before the window; for dialects that reject ORDER BY in
// a derived table it is taken before the ORDER BY as well.
func (p *Pager) Rewrite(stmt Statement, params any, bounds PageBounds) (*Result, error) {
	if err := p.check(bounds); err != nil {
		return nil, err
	}

	caps := p.dialect.Capabilities()

	loaded := Load(stmt, params, p.style)
	filtered := loaded.WithSQL(InjectWhere(loaded.SQL, bounds.Where))
	ordered := filtered.WithSQL(injectOrderBy(filtered.SQL, bounds, caps.SubqueryAlias))

	counted := ordered
	if !caps.OrderedSubquery {
		counted = filtered
	}
	count := p.count(counted.SQL)

	paged := ordered
	if bounds.Windowed() {
		if err := p.checkNames(ordered); err != nil {
			return nil, err
		}
		var err error
		paged, err = p.dialect.Window(ordered, Window{
			OffsetName: p.offsetName,
			Offset:     bounds.Offset,
			LimitName:  p.limitName,
			Limit:      bounds.Limit,
		})
		if err != nil {
			return nil, err
		}
	}

	p.logger.Debug().
		Str("dialect", p.dialect.Name()).
		Str("page_sql", truncateSQLForLog(paged.SQL, logSQLLimit)).
		Str("count_sql", truncateSQLForLog(count, logSQLLimit)).
		Int("params", len(paged.Bindings)).
		Bool("windowed", bounds.Windowed()).
		Msg("Rewrote statement")

	return &Result{
		PageSQL:       paged.SQL,
		CountSQL:      count,
		Bindings:      paged.Bindings,
		CountBindings: counted.Bindings,
		Values:        paged.Values,
		Style:         paged.Style,
	}, nil
}

func (p *Pager) check(bounds PageBounds) error {
	if err := bounds.Validate(); err != nil {
		return err
	}
	if p.maxLimit > 0 && bounds.Limit != NoRowLimit && bounds.Limit > p.maxLimit {
		return fmt.Errorf("%w: %d > %d", ErrLimitExceeded, bounds.Limit, p.maxLimit)
	}
	if p.schema != nil && !bounds.HasRawOrderBy() {
		if err := p.schema.ValidateOrders(bounds.Orders); err != nil {
			return err
		}
	}
	return nil
}

// checkNames refuses synthetic names that the statement already uses.
func (p *Pager) checkNames(st State) error {
	if err := p.ValidateParamNames(); err != nil {
		return err
	}
	for _, name := range []string{p.offsetName, p.limitName} {
		if st.Has(name) {
			return ParamCollisionError{Name: name}
		}
	}
	return nil
}

func (p *Pager) count(sql string) string {
	if c, ok := p.dialect.(Counter); ok {
		return c.Count(sql)
	}
	return countSQL(sql, p.dialect.Capabilities().SubqueryAlias)
}

// truncateSQLForLog returns at most n bytes of SQL for logging, cut on a
// rune boundary.
func truncateSQLForLog(sql string, n int) string {
	if len(sql) <= n {
		return sql
	}
	for n > 0 && !utf8.RuneStart(sql[n]) {
		n--
	}
	return sql[:n] + "..."
}
