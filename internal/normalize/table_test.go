package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-normalizer/internal/diagnostic"
	"schema-normalizer/internal/schema"
)

func TestTable_RegisterAndLookup(t *testing.T) {
	table, err := NewTable(
		schema.Decl("Cart", schema.Struct(schema.Req("items", schema.ArrayOf(schema.Ref("Item"))))),
		schema.Decl("Item", schema.Str("Burger")),
	)
	require.NoError(t, err)

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"Cart", "Item"}, table.Names())

	d, err := table.Lookup("Item")
	require.NoError(t, err)
	assert.Equal(t, "Item", d.Name)
	assert.False(t, d.IsGeneric())

	_, err = table.Lookup("Drink")
	assert.ErrorIs(t, err, diagnostic.KindUnknownDeclaration)
}

func TestTable_DuplicateDeclaration(t *testing.T) {
	_, err := NewTable(
		schema.Decl("Item", schema.Str("Burger")),
		schema.Decl("Item", schema.Str("Fries")),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, diagnostic.KindDuplicateDeclaration)

	var ge *diagnostic.Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, "Item", ge.Name)
}

func TestTable_NamesIsACopy(t *testing.T) {
	table, err := NewTable(schema.Decl("A", schema.Str("a")))
	require.NoError(t, err)

	names := table.Names()
	names[0] = "B"

	assert.Equal(t, []string{"A"}, table.Names())
}
