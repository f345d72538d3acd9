package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelete_Build(t *testing.T) {
	tests := []struct {
		name    string
		builder *DeleteBuilder
		want    string
	}{
		{
			name:    "with where",
			builder: Delete("users").Where("id = 1"),
			want:    "DELETE FROM users WHERE id = 1;",
		},
		{
			name:    "pre-joined predicate",
			builder: Delete("users").Where("name = $1 AND karma <= $2"),
			want:    "DELETE FROM users WHERE name = $1 AND karma <= $2;",
		},
		{
			// Whole-table delete is legal; same caveat as UpdateBuilder.
			name:    "unconditional",
			builder: Delete("users"),
			want:    "DELETE FROM users;",
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

func TestDelete_WhereOverwrites(t *testing.T) {
	got, err := Delete("users").Where("id = 1").Where("id = 2").Build()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM users WHERE id = 2;", got)
}

func TestDelete_BuildIsRepeatable(t *testing.T) {
	b := Delete("users").Where("id = 1")

	first, err := b.Build()
	require.NoError(t, err)
	second, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
