package querybuilder

import (
	"strconv"
	"strings"
)

// Shared rendering helpers. Each builder's Build composes these pure
// functions; none of them touches builder state.

// writeClause appends " KEYWORD body" when body is non-empty.
// An empty body writes nothing, so absent clauses leave no residual keyword.
func writeClause(sql *strings.Builder, keyword, body string) {
	if body == "" {
		return
	}
	sql.WriteString(" ")
	sql.WriteString(keyword)
	sql.WriteString(" ")
	sql.WriteString(body)
}

// writeIntClause appends " KEYWORD n" when n is set.
// A nil pointer means the clause was never supplied; an explicit 0 renders.
func writeIntClause(sql *strings.Builder, keyword string, n *int) {
	if n == nil {
		return
	}
	sql.WriteString(" ")
	sql.WriteString(keyword)
	sql.WriteString(" ")
	sql.WriteString(strconv.Itoa(*n))
}

// compileJoin renders a single join segment: "KIND JOIN table ON condition".
func compileJoin(j joinClause) string {
	return string(j.kind) + " JOIN " + j.table + " ON " + j.condition
}

// compileOrders renders order clauses as a comma-joined "column DIRECTION" list.
func compileOrders(orders []orderClause) string {
	if len(orders) == 0 {
		return ""
	}
	parts := make([]string, len(orders))
	for i, o := range orders {
		parts[i] = o.column + " " + string(o.direction)
	}
	return strings.Join(parts, ", ")
}

// assignment renders a single "column = value" pair. The value is emitted
// verbatim; quoting is the caller's responsibility.
func assignment(column, value string) string {
	return column + " = " + value
}

// terminate appends the statement terminator and returns the final SQL.
func terminate(sql *strings.Builder) string {
	sql.WriteString(";")
	return sql.String()
}
