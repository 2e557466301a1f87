package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/pagesql"
	"github.com/zoobzio/pagesql/mariadb"
)

// setupMariaDB recreates and seeds the users table.
func setupMariaDB(ctx context.Context, t *testing.T, mc *MariaDBContainer) {
	t.Helper()

	_, err := mc.db.ExecContext(ctx, "DROP TABLE IF EXISTS users")
	require.NoError(t, err)

	_, err = mc.db.ExecContext(ctx, `
		CREATE TABLE users (
			id BIGINT PRIMARY KEY,
			username VARCHAR(255) NOT NULL,
			age INT,
			active TINYINT NOT NULL DEFAULT 0
		)
	`)
	require.NoError(t, err)

	for _, stmt := range seedStatements() {
		_, err := mc.db.ExecContext(ctx, stmt)
		require.NoError(t, err)
	}
}

func queryMariaDBIDs(ctx context.Context, t *testing.T, mc *MariaDBContainer, query string, args ...any) []int64 {
	t.Helper()

	rows, err := mc.db.QueryContext(ctx, query, args...)
	require.NoError(t, err, query)
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		var username string
		var age int
		require.NoError(t, rows.Scan(&id, &username, &age))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	return ids
}

// TestMariaDBIntegration_Paging pages through users against real MariaDB.
func TestMariaDBIntegration_Paging(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	mc := getMariaDBContainer(t)
	setupMariaDB(ctx, t, mc)

	pager := pagesql.New(mariadb.New())

	for _, tc := range pagingCases() {
		t.Run(tc.name, func(t *testing.T) {
			result, err := pager.Rewrite(usersStatement, nil, tc.bounds)
			require.NoError(t, err)

			assert.Equal(t, tc.ids, queryMariaDBIDs(ctx, t, mc, result.PageSQL, result.Args()...))

			var total int64
			require.NoError(t, mc.db.QueryRowContext(ctx, result.CountSQL, result.CountArgs()...).Scan(&total))
			assert.Equal(t, tc.total, total)
		})
	}
}

// TestMariaDBIntegration_DeclaredBinding checks positional ? ordering with
// the offset bound before the limit.
func TestMariaDBIntegration_DeclaredBinding(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	mc := getMariaDBContainer(t)
	setupMariaDB(ctx, t, mc)

	pager := pagesql.New(mariadb.New())
	stmt := pagesql.Statement{
		SQL:      "SELECT id, username, age FROM users WHERE active = ?",
		Bindings: []pagesql.Binding{{Name: "active"}},
	}

	result, err := pager.Rewrite(stmt, 1, pageOf(3, 4, pagesql.ASC))
	require.NoError(t, err)

	assert.Equal(t, []int64{20, 22, 24}, queryMariaDBIDs(ctx, t, mc, result.PageSQL, result.Args()...))
}
