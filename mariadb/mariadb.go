// Package mariadb provides the MariaDB row window for pagesql.
// MariaDB shares MySQL's LIMIT syntax.
package mariadb

import "github.com/zoobzio/pagesql/mysql"

// Dialect is the MySQL window under the MariaDB name.
type Dialect struct {
	mysql.Dialect
}

// New creates a new MariaDB dialect.
func New() *Dialect {
	return &Dialect{}
}

// Name returns "mariadb".
func (d *Dialect) Name() string {
	return "mariadb"
}
