package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		expr     Expr
		expected string
	}{
		{name: "string literal", expr: Str("Jalapeño Poppers"), expected: `"Jalapeño Poppers"`},
		{name: "number literal", expr: Num("12"), expected: `12`},
		{name: "boolean literal", expr: Bool(false), expected: `false`},
		{name: "union", expr: Strs("a", "b"), expected: `"a"|"b"`},
		{name: "reference without arguments", expr: Ref("CHOOSE"), expected: `CHOOSE`},
		{name: "generic reference", expr: Ref("OtherFries", Any(), Str("6 Piece")), expected: `OtherFries<any,"6 Piece">`},
		{name: "parameter", expr: P("SIZE"), expected: `SIZE`},
		{name: "array of union", expr: ArrayOf(Or(Ref("Veggies"), Ref("Bacon"))), expected: `(Veggies|Bacon)[]`},
		{name: "array", expr: ArrayOf(Ref("Ice")), expected: `Ice[]`},
		{name: "primitive", expr: Prim(PrimNumber), expected: `number`},
		{
			name:     "wrapper",
			expr:     Wrap(Str("Mayo"), []string{"mayonnaise", "hellmanns"}, false),
			expected: `LITERAL<"Mayo",["mayonnaise","hellmanns"],false>`,
		},
		{
			name:     "product",
			expr:     Struct(Req("name", Str("Ice")), Opt("amount", Strs("Regular", "Light"))),
			expected: `{name:"Ice",amount?:"Regular"|"Light"}`,
		},
		{name: "empty union", expr: Or(), expected: ``},
		{name: "nil", expr: nil, expected: `<nil>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.expr))
		})
	}
}

func TestFormatDeclaration(t *testing.T) {
	d := Decl("FountainDrink",
		Struct(Req("name", P("NAME")), Req("size", P("SIZE"))),
		Extends("NAME", Ref("DrinkNames")),
		Extends("SIZE", nil),
	)

	assert.Equal(t, `type FountainDrink<NAME extends DrinkNames,SIZE>={name:NAME,size:SIZE};`, FormatDeclaration(&d))
	assert.True(t, d.IsGeneric())
}

func TestPath(t *testing.T) {
	p := NewPath("Cart")
	items := p.Field("items").Elem()

	assert.Equal(t, "Cart", p.String())
	assert.Equal(t, "Cart.items[]", items.String())
	assert.Equal(t, "Cart.items[].name", items.Field("name").String())
	assert.Equal(t, "[]", Path{}.Elem().String())
}

func TestLiterals(t *testing.T) {
	lits, rest := Literals(Or(Str("a"), Ref("B"), Num("1")))
	assert.Equal(t, []*Literal{Str("a"), Num("1")}, lits)
	assert.Equal(t, []Expr{Ref("B")}, rest)

	lits, rest = Literals(Str("x"))
	assert.Equal(t, []*Literal{Str("x")}, lits)
	assert.Empty(t, rest)

	lits, rest = Literals(Prim(PrimString))
	assert.Empty(t, lits)
	assert.Len(t, rest, 1)
}

func TestWalk(t *testing.T) {
	expr := Struct(
		Req("name", Wrap(Str("Ice"), nil, false)),
		Opt("options", ArrayOf(Ref("Extra", Str("x")))),
	)

	var visited []string

	Walk(expr, func(e Expr) bool {
		visited = append(visited, Format(e))
		_, isArray := e.(*Array)

		return !isArray
	})

	assert.Equal(t, []string{
		`{name:LITERAL<"Ice",[],false>,options?:Extra<"x">[]}`,
		`LITERAL<"Ice",[],false>`,
		`"Ice"`,
		`Extra<"x">[]`,
	}, visited)
}
