package schema

import (
	"strconv"
	"strings"
)

// Format returns a compact TypeScript-like rendering of an expression.
// Examples:
//   - `"a"|"b"` for a union of string literals
//   - `{name:"Ice",amount?:"No"|"Light"}` for a product
//   - `FountainDrink<any,"Medium">` for a reference
//   - `LITERAL<"Mayo",["mayonnaise"],false>` for a wrapper
func Format(e Expr) string {
	var sb strings.Builder
	writeExpr(&sb, e)

	return sb.String()
}

// FormatDeclaration renders a declaration as `type Name<P extends C>=body;`.
func FormatDeclaration(d *Declaration) string {
	var sb strings.Builder

	sb.WriteString("type ")
	sb.WriteString(d.Name)

	if len(d.Params) > 0 {
		sb.WriteByte('<')

		for i, p := range d.Params {
			if i > 0 {
				sb.WriteByte(',')
			}

			sb.WriteString(p.Name)

			if p.Constraint != nil {
				sb.WriteString(" extends ")
				writeExpr(&sb, p.Constraint)
			}
		}

		sb.WriteByte('>')
	}

	sb.WriteByte('=')
	writeExpr(&sb, d.Body)
	sb.WriteByte(';')

	return sb.String()
}

// FormatLiteral renders a literal value the way it appears in source.
func FormatLiteral(l *Literal) string {
	if l.Kind == LiteralString {
		return strconv.Quote(l.Text)
	}

	return l.Text
}

func writeExpr(sb *strings.Builder, e Expr) {
	switch n := e.(type) {
	case nil:
		sb.WriteString("<nil>")

	case *Reference:
		sb.WriteString(n.Name)
		writeList(sb, '<', '>', n.Args)

	case *Union:
		for i, alt := range n.Alts {
			if i > 0 {
				sb.WriteByte('|')
			}

			writeExpr(sb, alt)
		}

	case *Product:
		sb.WriteByte('{')

		for i, f := range n.Fields {
			if i > 0 {
				sb.WriteByte(',')
			}

			sb.WriteString(f.Name)

			if f.Optional {
				sb.WriteByte('?')
			}

			sb.WriteByte(':')
			writeExpr(sb, f.Type)
		}

		sb.WriteByte('}')

	case *Wrapper:
		sb.WriteString("LITERAL<")
		writeExpr(sb, n.Display)
		sb.WriteString(",[")

		for i, a := range n.Aliases {
			if i > 0 {
				sb.WriteByte(',')
			}

			sb.WriteString(strconv.Quote(a))
		}

		sb.WriteString("],")
		sb.WriteString(strconv.FormatBool(n.Default))
		sb.WriteByte('>')

	case *Literal:
		sb.WriteString(FormatLiteral(n))

	case *Wildcard:
		sb.WriteString("any")

	case *ParamRef:
		sb.WriteString(n.Name)

	case *Array:
		if _, isUnion := n.Elem.(*Union); isUnion {
			sb.WriteByte('(')
			writeExpr(sb, n.Elem)
			sb.WriteByte(')')
		} else {
			writeExpr(sb, n.Elem)
		}

		sb.WriteString("[]")

	case *Primitive:
		sb.WriteString(string(n.Name))
	}
}

func writeList(sb *strings.Builder, open, closing byte, items []Expr) {
	if len(items) == 0 {
		return
	}

	sb.WriteByte(open)

	for i, it := range items {
		if i > 0 {
			sb.WriteByte(',')
		}

		writeExpr(sb, it)
	}

	sb.WriteByte(closing)
}
