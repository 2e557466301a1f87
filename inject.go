package pagesql

import (
	"regexp"
	"strings"
)

// WherePlaceholder marks the exact spot for the WHERE fragment in
// caller-authored SQL.
const WherePlaceholder = "_WHERE_CLAUSE_PLACEHOLDER"

// Aliases given to the derived tables built by the rewrite.
const (
	orderAlias = "temp_order"
	countAlias = "tmp_count"
)

// wherePattern finds a WHERE keyword with whitespace on both sides.
// It is a heuristic, not a parser: it cannot tell an outer WHERE from one
// inside a subquery or a string literal.
var wherePattern = regexp.MustCompile(`(?i)(\s)WHERE(\s)`)

// InjectWhere adds clause (a condition without the WHERE keyword) to sql.
//
// If sql contains WherePlaceholder, every occurrence is replaced: by
// "WHERE <clause>" when sql has no WHERE keyword, by the bare clause
// otherwise. Without a placeholder the first WHERE keyword becomes
// "WHERE <clause> AND", or " WHERE <clause>" is appended when there is none.
// A blank clause returns sql unchanged.
func InjectWhere(sql, clause string) string {
	if strings.TrimSpace(clause) == "" {
		return sql
	}

	loc := wherePattern.FindStringSubmatchIndex(sql)
	hasWhere := loc != nil

	if strings.Contains(sql, WherePlaceholder) {
		if hasWhere {
			return strings.ReplaceAll(sql, WherePlaceholder, clause)
		}
		return strings.ReplaceAll(sql, WherePlaceholder, "WHERE "+clause)
	}

	if hasWhere {
		// loc[3] ends the leading whitespace, loc[4] starts the trailing one
		return sql[:loc[3]] + "WHERE " + clause + " AND" + sql[loc[4]:]
	}

	return sql + " WHERE " + clause
}

// OrderClause returns the ORDER BY body for b: the raw OrderBy text when
// set, otherwise the non-nil Orders joined with ", ".
func OrderClause(b PageBounds) string {
	if b.HasRawOrderBy() {
		return b.OrderBy
	}

	terms := make([]string, 0, len(b.Orders))
	for _, o := range b.Orders {
		if o != nil {
			terms = append(terms, o.String())
		}
	}
	return strings.Join(terms, ", ")
}

// InjectOrderBy wraps sql in a derived table ordered by b's clause.
// Without any requested ordering sql is returned unchanged.
func InjectOrderBy(sql string, b PageBounds) string {
	return injectOrderBy(sql, b, true)
}

func injectOrderBy(sql string, b PageBounds, alias bool) string {
	if !b.HasOrderBy() {
		return sql
	}
	return "SELECT * FROM (" + sql + ")" + aliasAs(orderAlias, alias) + " ORDER BY " + OrderClause(b)
}

// CountSQL wraps sql in SELECT COUNT(1).
func CountSQL(sql string) string {
	return countSQL(sql, true)
}

func countSQL(sql string, alias bool) string {
	return "SELECT COUNT(1) FROM (" + sql + ")" + aliasAs(countAlias, alias)
}

func aliasAs(name string, as bool) string {
	if as {
		return " AS " + name
	}
	return " " + name
}
