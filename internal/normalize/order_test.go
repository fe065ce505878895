package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-normalizer/internal/diagnostic"
	"schema-normalizer/internal/schema"
)

func newTable(t *testing.T, decls ...schema.Declaration) *Table {
	t.Helper()

	table, err := NewTable(decls...)
	require.NoError(t, err)

	return table
}

func TestTable_Dependencies(t *testing.T) {
	table := newTable(t,
		schema.Decl("Drink", schema.Struct(
			schema.Req("name", schema.P("NAME")),
			schema.Opt("options", schema.ArrayOf(schema.Ref("Ice"))),
		), schema.Extends("NAME", schema.Ref("DrinkNames"))),
		schema.Decl("Ice", schema.Strs("Light", "No")),
		schema.Decl("DrinkNames", schema.Or(schema.Wrap(schema.Str("Coke"), nil, false), schema.Ref("Missing"))),
	)

	deps, err := table.Dependencies("Drink")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ice", "DrinkNames"}, deps)

	deps, err = table.Dependencies("DrinkNames")
	require.NoError(t, err)
	assert.Empty(t, deps)

	_, err = table.Dependencies("Nope")
	assert.ErrorIs(t, err, diagnostic.KindUnknownDeclaration)
}

func TestTable_Order(t *testing.T) {
	table := newTable(t,
		schema.Decl("Cart", schema.Struct(schema.Req("items", schema.ArrayOf(schema.Ref("Item"))))),
		schema.Decl("Item", schema.Or(schema.Ref("Fries"), schema.Ref("Drink"))),
		schema.Decl("Sizes", schema.Strs("S", "L")),
		schema.Decl("Fries", schema.Struct(schema.Req("size", schema.Ref("Sizes")))),
		schema.Decl("Drink", schema.Struct(schema.Req("size", schema.Ref("Sizes")))),
	)

	order, err := table.Order()
	require.NoError(t, err)
	assert.Equal(t, []string{"Sizes", "Fries", "Drink", "Item", "Cart"}, order)
}

func TestTable_Order_Cycle(t *testing.T) {
	table := newTable(t,
		schema.Decl("Leaf", schema.Str("x")),
		schema.Decl("A", schema.Struct(schema.Req("b", schema.Ref("B")))),
		schema.Decl("B", schema.Or(schema.Ref("A"), schema.Ref("Leaf"))),
		schema.Decl("Self", schema.ArrayOf(schema.Ref("Self"))),
	)

	_, err := table.Order()

	var ge *diagnostic.Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, diagnostic.KindRecursiveDefinition, ge.Kind)
	assert.Equal(t, "A", ge.Name)
	assert.Contains(t, ge.Detail, "A, B, Self")
}

func TestTopoSort(t *testing.T) {
	order, err := topoSort(3, func(i int) []int {
		if i == 0 {
			return []int{2}
		}

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, order)

	order, err = topoSort(0, nil)
	require.NoError(t, err)
	assert.Empty(t, order)
}
