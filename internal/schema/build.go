package schema

import "strconv"

// Builders keep hand-written grammars (tests, fixtures) readable.

// Ref builds a Reference to name with the given arguments.
func Ref(name string, args ...Expr) *Reference {
	return &Reference{Name: name, Args: args}
}

// Or builds a Union of the given alternatives.
func Or(alts ...Expr) *Union {
	return &Union{Alts: alts}
}

// Struct builds a Product from the given fields.
func Struct(fields ...Field) *Product {
	return &Product{Fields: fields}
}

// Req builds a required field.
func Req(name string, t Expr) Field {
	return Field{Name: name, Type: t}
}

// Opt builds an optional field.
func Opt(name string, t Expr) Field {
	return Field{Name: name, Type: t, Optional: true}
}

// Wrap builds a Wrapper around display.
func Wrap(display Expr, aliases []string, isDefault bool) *Wrapper {
	return &Wrapper{Display: display, Aliases: aliases, Default: isDefault}
}

// Str builds a string literal.
func Str(s string) *Literal {
	return &Literal{Kind: LiteralString, Text: s}
}

// Num builds a number literal from its source text.
func Num(text string) *Literal {
	return &Literal{Kind: LiteralNumber, Text: text}
}

// Bool builds a boolean literal.
func Bool(b bool) *Literal {
	return &Literal{Kind: LiteralBoolean, Text: strconv.FormatBool(b)}
}

// Strs builds a union of string literals, or a single literal for one value.
func Strs(values ...string) Expr {
	if len(values) == 1 {
		return Str(values[0])
	}

	alts := make([]Expr, 0, len(values))
	for _, v := range values {
		alts = append(alts, Str(v))
	}

	return Or(alts...)
}

// P builds a ParamRef.
func P(name string) *ParamRef {
	return &ParamRef{Name: name}
}

// Any builds a Wildcard.
func Any() *Wildcard {
	return &Wildcard{}
}

// ArrayOf builds an Array of elem.
func ArrayOf(elem Expr) *Array {
	return &Array{Elem: elem}
}

// Prim builds a Primitive.
func Prim(name PrimitiveName) *Primitive {
	return &Primitive{Name: name}
}

// Decl builds a Declaration.
func Decl(name string, body Expr, params ...Param) Declaration {
	return Declaration{Name: name, Params: params, Body: body}
}

// Extends builds a Param with a constraint. A nil constraint means none.
func Extends(name string, constraint Expr) Param {
	return Param{Name: name, Constraint: constraint}
}
