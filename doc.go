// Package querybuilder provides a fluent SQL statement builder for Go.
//
// go-query-builder assembles SELECT, INSERT, UPDATE and DELETE statements
// through chained method calls and renders each one as a single
// semicolon-terminated SQL string. It produces strings only: it does not
// connect, execute, parse or optimize anything.
//
// # Quick Start
//
// Build a SELECT statement:
//
//	sql, err := querybuilder.Select("users").
//	    Fields("id", "name").
//	    Where("name = $1").
//	    OrderBy("id", querybuilder.OrderAsc).
//	    Build()
//	// SELECT id, name FROM users WHERE name = $1 ORDER BY id ASC;
//
// # Statement Kinds
//
// Each statement kind has its own builder and constructor:
//
//	querybuilder.Select("users").Fields("id", "name").Build()
//	querybuilder.Insert("users").Fields("id", "name").Values("1", "'a'").Build()
//	querybuilder.Update("users").Set("name", "'x'").Where("id = 1").Build()
//	querybuilder.Delete("users").Where("id = 1").Build()
//
// Builders are independent values sharing no state. Clause setters may be
// chained in any order; the rendered clause order is fixed per statement
// kind. Clauses whose backing data was never supplied are omitted entirely.
//
// # Conditions
//
// Where and Having take one complete predicate string. A repeated call
// replaces the previous predicate; combining multiple predicates with
// AND/OR is the caller's job:
//
//	querybuilder.Delete("users").Where("name = $1 AND karma <= $2").Build()
//
// # Security
//
// go-query-builder does NOT escape, quote or parameterize anything. Every
// table, field, condition and value string is emitted verbatim. Passing
// untrusted input to any builder method is an SQL injection. Use the
// placeholder syntax of your driver ("$1", "?") and bind values at the
// execution layer.
//
// # Thread Safety
//
// Builder instances are NOT thread-safe. Create one builder per statement
// and treat Build as terminal.
//
// # Supported Databases
//
// The emitted token set is shared by PostgreSQL, MySQL and SQLite; the
// builder contains no dialect-specific branching. FULL JOIN support varies
// by engine (SQLite and older MySQL lack it) and is not validated here.
package querybuilder
