package schema

// Walk visits e and its children depth-first, parents before children.
// When fn returns false the children of that node are skipped.
// Wrapper aliases and parameter constraints are not expressions of the tree
// and are not visited.
func Walk(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}

	switch n := e.(type) {
	case *Reference:
		for _, a := range n.Args {
			Walk(a, fn)
		}
	case *Union:
		for _, a := range n.Alts {
			Walk(a, fn)
		}
	case *Product:
		for _, f := range n.Fields {
			Walk(f.Type, fn)
		}
	case *Wrapper:
		Walk(n.Display, fn)
	case *Array:
		Walk(n.Elem, fn)
	}
}

// Literals returns the literal alternatives of e: e itself when it is a
// literal, the literal members when it is a union. Non-literal members are
// returned separately.
func Literals(e Expr) (lits []*Literal, rest []Expr) {
	switch n := e.(type) {
	case *Literal:
		return []*Literal{n}, nil
	case *Union:
		for _, a := range n.Alts {
			if l, ok := a.(*Literal); ok {
				lits = append(lits, l)
			} else {
				rest = append(rest, a)
			}
		}

		return lits, rest
	default:
		return nil, []Expr{e}
	}
}
