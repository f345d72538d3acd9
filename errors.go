package querybuilder

import "errors"

// Sentinel errors for go-query-builder.
// These errors can be checked using errors.Is().
var (
	// ErrFieldValueMismatch is returned by InsertBuilder.Build when the
	// number of fields and the number of values differ. Misaligned lists
	// would insert values into the wrong columns, so the builder fails
	// loudly instead of truncating or padding.
	ErrFieldValueMismatch = errors.New("querybuilder: fields and values count mismatch")

	// ErrNoFields is returned when an INSERT has no columns or an UPDATE
	// has no assignments; neither renders as valid SQL.
	ErrNoFields = errors.New("querybuilder: no fields specified")
)
