package postgres

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ferreteria-api/internal/domain/repository"
)

func TestProductWhere(t *testing.T) {
	where, args := productWhere(repository.ProductFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = productWhere(repository.ProductFilter{OnlyActive: true, CategoryID: "c-1", Search: "taladro"})
	assert.Equal(t, " WHERE active AND category_id = $1 AND (name ILIKE $2 OR sku ILIKE $2)", where)
	assert.Equal(t, []any{"c-1", "%taladro%"}, args)
}

func TestNullables(t *testing.T) {
	assert.Nil(t, nullIfEmpty(""))
	assert.Equal(t, "x", nullIfEmpty("x"))
	assert.Nil(t, nullIfZero(0))
	assert.Equal(t, int64(12345678), nullIfZero(12345678))
}

func TestMigracionesEmbebidas(t *testing.T) {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	body, err := migrations.ReadFile(names[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS products")
}
