package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-normalizer/internal/diagnostic"
	"schema-normalizer/internal/schema"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		expr schema.Expr
		kind diagnostic.Kind
		path string
	}{
		{
			name: "reference",
			expr: schema.Struct(schema.Req("items", schema.ArrayOf(schema.Ref("Item")))),
			kind: diagnostic.KindUnknownDeclaration,
			path: "Cart.items[]",
		},
		{
			name: "parameter",
			expr: schema.Struct(schema.Req("size", schema.P("SIZE"))),
			kind: diagnostic.KindUnknownDeclaration,
			path: "Cart.size",
		},
		{
			name: "wildcard",
			expr: schema.Or(schema.Str("a"), schema.Any()),
			kind: diagnostic.KindStrayWildcard,
			path: "Cart",
		},
		{
			name: "wrapper",
			expr: schema.Struct(schema.Req("name", schema.Wrap(schema.Str("Mayo"), nil, false))),
			kind: diagnostic.KindAliasConflict,
			path: "Cart.name",
		},
		{
			name: "duplicate literal",
			expr: schema.Struct(schema.Opt("amount", schema.Strs("No", "Regular", "No"))),
			kind: diagnostic.KindDuplicateUnionAlternative,
			path: "Cart.amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.expr, "Cart")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)

			var ge *diagnostic.Error
			require.ErrorAs(t, err, &ge)
			assert.Equal(t, tt.path, ge.Path)
		})
	}
}

func TestValidate_AcceptsNormalizedTrees(t *testing.T) {
	expr := schema.Struct(
		schema.Req("name", schema.Strs("French Fries", "Onion Rings")),
		schema.Req("size", schema.Or(schema.Num("6"), schema.Str("6"), schema.Bool(true))),
		schema.Opt("options", schema.ArrayOf(schema.Or(
			schema.Struct(schema.Req("name", schema.Str("Ice"))),
			schema.Struct(schema.Req("name", schema.Str("Ice"))),
		))),
		schema.Req("note", schema.Prim(schema.PrimString)),
	)

	assert.NoError(t, Validate(expr, "Side"))
}
