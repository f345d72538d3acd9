package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdate_Build(t *testing.T) {
	tests := []struct {
		name    string
		builder *UpdateBuilder
		want    string
	}{
		{
			name:    "set with where",
			builder: Update("users").Set("name", "'x'").Where("id = 1"),
			want:    "UPDATE users SET name = 'x' WHERE id = 1;",
		},
		{
			name:    "multiple assignments keep call order",
			builder: Update("users").Set("karma", "0").Set("last_login", "'1970-01-01'"),
			want:    "UPDATE users SET karma = 0, last_login = '1970-01-01';",
		},
		{
			name:    "raw assignment strings",
			builder: Update("users").Fields("karma = karma + 1", "name = $1").Where("id = $2"),
			want:    "UPDATE users SET karma = karma + 1, name = $1 WHERE id = $2;",
		},
		{
			name:    "set mixed with raw assignments",
			builder: Update("users").Set("name", "$1").Fields("karma = karma + 1"),
			want:    "UPDATE users SET name = $1, karma = karma + 1;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.builder.Build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Omitting Where is legal and renders a whole-table update; the library
// deliberately does not guard against it.
func TestUpdate_Unconditional(t *testing.T) {
	got, err := Update("users").Set("karma", "0").Build()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE users SET karma = 0;", got)
}

func TestUpdate_WhereOverwrites(t *testing.T) {
	got, err := Update("users").Set("karma", "0").Where("id = 1").Where("id = 2").Build()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE users SET karma = 0 WHERE id = 2;", got)
}

func TestUpdate_NoAssignments(t *testing.T) {
	_, err := Update("users").Where("id = 1").Build()
	assert.ErrorIs(t, err, ErrNoFields)
}

func TestUpdate_BuildIsRepeatable(t *testing.T) {
	b := Update("users").Set("name", "'x'").Where("id = 1")

	first, err := b.Build()
	require.NoError(t, err)
	second, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
