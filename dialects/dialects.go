// Package dialects looks up pagesql dialects by name.
package dialects

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zoobzio/pagesql"
	"github.com/zoobzio/pagesql/db2"
	"github.com/zoobzio/pagesql/h2"
	"github.com/zoobzio/pagesql/mariadb"
	"github.com/zoobzio/pagesql/mssql"
	"github.com/zoobzio/pagesql/mysql"
	"github.com/zoobzio/pagesql/oracle"
	"github.com/zoobzio/pagesql/postgres"
	"github.com/zoobzio/pagesql/sqlite"
)

// registry is built once and only read afterwards.
var registry = map[string]func() pagesql.Dialect{
	"postgres":   func() pagesql.Dialect { return postgres.New() },
	"postgresql": func() pagesql.Dialect { return postgres.New() },
	"mysql":      func() pagesql.Dialect { return mysql.New() },
	"mariadb":    func() pagesql.Dialect { return mariadb.New() },
	"sqlite":     func() pagesql.Dialect { return sqlite.New() },
	"sqlite3":    func() pagesql.Dialect { return sqlite.New() },
	"mssql":      func() pagesql.Dialect { return mssql.New() },
	"sqlserver":  func() pagesql.Dialect { return mssql.New() },
	"oracle":     func() pagesql.Dialect { return oracle.New() },
	"db2":        func() pagesql.Dialect { return db2.New() },
	"h2":         func() pagesql.Dialect { return h2.New() },
	"sybase":     func() pagesql.Dialect { return pagesql.Unsupported("sybase") },
}

// Lookup returns the dialect registered under name (case-insensitive).
func Lookup(name string) (pagesql.Dialect, error) {
	ctor, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown dialect '%s' (known: %s)", name, strings.Join(Names(), ", "))
	}
	return ctor(), nil
}

// Names returns every registered name, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
