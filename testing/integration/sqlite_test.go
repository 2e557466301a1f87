package integration

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/zoobzio/pagesql"
	"github.com/zoobzio/pagesql/sqlite"
	pstesting "github.com/zoobzio/pagesql/testing"
)

// newSQLiteDB opens a seeded in-memory SQLite database.
func newSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// Each pooled connection would get its own empty :memory: database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE users (
		id INTEGER PRIMARY KEY,
		username TEXT NOT NULL,
		age INTEGER,
		active INTEGER NOT NULL DEFAULT 0
	)`)
	require.NoError(t, err)

	for _, stmt := range seedStatements() {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	return db
}

func querySQLiteIDs(t *testing.T, db *sql.DB, query string, args ...any) []int64 {
	t.Helper()

	rows, err := db.Query(query, args...)
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

func TestSQLiteIntegration_Paging(t *testing.T) {
	db := newSQLiteDB(t)
	pager := pagesql.New(sqlite.New(), pagesql.WithSchema(pstesting.TestSchema(t)))

	for _, tc := range pagingCases() {
		t.Run(tc.name, func(t *testing.T) {
			result, err := pager.Rewrite(usersStatement, nil, tc.bounds)
			require.NoError(t, err)

			assert.Equal(t, tc.ids, querySQLiteIDs(t, db, result.PageSQL, result.Args()...))

			var total int64
			require.NoError(t, db.QueryRow(result.CountSQL, result.CountArgs()...).Scan(&total))
			assert.Equal(t, tc.total, total)
		})
	}
}

func TestSQLiteIntegration_DeclaredBinding(t *testing.T) {
	db := newSQLiteDB(t)
	pager := pagesql.New(sqlite.New())

	stmt := pagesql.Statement{
		SQL:      "SELECT id, username, age FROM users WHERE active = ?",
		Bindings: []pagesql.Binding{{Name: "active"}},
	}
	bounds := pageOf(1, 4, pagesql.ASC)

	result, err := pager.Rewrite(stmt, 1, bounds)
	require.NoError(t, err)

	// Even users from 4 up.
	assert.Equal(t, []int64{4, 6, 8, 10}, querySQLiteIDs(t, db, result.PageSQL, result.Args()...))

	var total int64
	require.NoError(t, db.QueryRow(result.CountSQL, result.CountArgs()...).Scan(&total))
	assert.Equal(t, int64(11), total)
}

func TestSQLiteIntegration_Placeholder(t *testing.T) {
	db := newSQLiteDB(t)
	pager := pagesql.New(sqlite.New())

	stmt := pagesql.Statement{SQL: "SELECT id, username, age FROM users _WHERE_CLAUSE_PLACEHOLDER ORDER BY id DESC"}
	result, err := pager.Rewrite(stmt, nil, pagesql.PageBounds{Where: "age < 20", Offset: 1, Limit: 2})
	require.NoError(t, err)

	// Users 1..4 match; skip 4, take 3 and 2.
	assert.Equal(t, []int64{3, 2}, querySQLiteIDs(t, db, result.PageSQL, result.Args()...))
}

func TestSQLiteIntegration_OffsetOnly(t *testing.T) {
	db := newSQLiteDB(t)
	pager := pagesql.New(sqlite.New())

	bounds := pagesql.PageBounds{
		Where:  "age > 18",
		Orders: []*pagesql.Order{{Column: "id", Direction: pagesql.ASC}},
		Offset: 20,
		Limit:  pagesql.NoRowLimit,
	}
	result, err := pager.Rewrite(usersStatement, nil, bounds)
	require.NoError(t, err)

	assert.Equal(t, []int64{24, 25}, querySQLiteIDs(t, db, result.PageSQL, result.Args()...))
}
