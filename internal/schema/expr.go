package schema

// Expr is a node of the grammar's expression algebra.
//
// The set of variants is closed: Reference, Union, Product, Wrapper, Literal,
// Wildcard, ParamRef, Array and Primitive. Trees are never mutated after
// construction; every rewrite builds new nodes.
type Expr interface {
	exprNode()
}

// Reference is an applied use of another declaration, possibly generic.
type Reference struct {
	Name string
	Args []Expr
}

// Union is a sum of alternatives. Order is kept for deterministic output only.
type Union struct {
	Alts []Expr
}

// Product is a structural record with ordered fields.
type Product struct {
	Fields []Field
}

// Field is a single named member of a Product.
type Field struct {
	Name     string
	Type     Expr
	Optional bool
}

// Wrapper attaches recognition aliases and a default-when-unspecified flag to
// a display value. It never survives normalization.
type Wrapper struct {
	Display Expr
	Aliases []string
	Default bool
}

// LiteralKind distinguishes the primitive domains a literal can come from.
type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralNumber
	LiteralBoolean
)

// String returns a human-readable literal kind name.
func (k LiteralKind) String() string {
	switch k {
	case LiteralString:
		return "string"
	case LiteralNumber:
		return "number"
	case LiteralBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// Literal is an atomic value. Text holds the value in source form for numbers
// and booleans and the unquoted value for strings.
type Literal struct {
	Kind LiteralKind
	Text string
}

// Wildcard stands for "unconstrained". It is legal only as a reference argument.
type Wildcard struct{}

// ParamRef refers to a type parameter of the enclosing declaration.
type ParamRef struct {
	Name string
}

// Array is a homogeneous list of its element type.
type Array struct {
	Elem Expr
}

// PrimitiveName names a built-in, non-enumerable type.
type PrimitiveName string

const (
	PrimString  PrimitiveName = "string"
	PrimNumber  PrimitiveName = "number"
	PrimBoolean PrimitiveName = "boolean"
	PrimNever   PrimitiveName = "never"
)

// IsValid reports whether the name is one of the built-in primitives.
func (p PrimitiveName) IsValid() bool {
	switch p {
	case PrimString, PrimNumber, PrimBoolean, PrimNever:
		return true
	default:
		return false
	}
}

// Primitive is a built-in type such as string or number.
type Primitive struct {
	Name PrimitiveName
}

func (*Reference) exprNode() {}
func (*Union) exprNode()     {}
func (*Product) exprNode()   {}
func (*Wrapper) exprNode()   {}
func (*Literal) exprNode()   {}
func (*Wildcard) exprNode()  {}
func (*ParamRef) exprNode()  {}
func (*Array) exprNode()     {}
func (*Primitive) exprNode() {}

// Declaration is a named, possibly generic, type definition.
type Declaration struct {
	Name   string
	Params []Param
	Body   Expr
}

// Param is a declared type parameter. Constraint is nil when the parameter
// has no "extends" bound.
type Param struct {
	Name       string
	Constraint Expr
}

// IsGeneric returns true if the declaration has type parameters.
func (d *Declaration) IsGeneric() bool {
	return len(d.Params) > 0
}

// Field returns the named field and true, or a zero Field and false.
func (p *Product) Field(name string) (Field, bool) {
	for _, f := range p.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}
