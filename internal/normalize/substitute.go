package normalize

import (
	"errors"
	"fmt"

	"schema-normalizer/internal/diagnostic"
	"schema-normalizer/internal/schema"
)

// substitute rewrites e under env. References are fully inlined, nested
// unions are flattened and wrappers are collapsed on the way back up.
func (r *run) substitute(e schema.Expr, env Env, path schema.Path) (schema.Expr, error) {
	switch n := e.(type) {
	case *schema.ParamRef:
		bound, ok := env[n.Name]
		if !ok {
			return nil, diagnostic.Errorf(diagnostic.KindUnknownDeclaration, n.Name,
				"unbound type parameter in %s", r.scope()).At(path.String())
		}

		return bound, nil

	case *schema.Reference:
		return r.expand(n, env, path)

	case *schema.Union:
		var alts []schema.Expr

		for _, alt := range n.Alts {
			s, err := r.substitute(alt, env, path)
			if err != nil {
				return nil, err
			}

			if u, ok := s.(*schema.Union); ok {
				alts = append(alts, u.Alts...)
			} else {
				alts = append(alts, s)
			}
		}

		if len(alts) == 1 {
			return alts[0], nil
		}

		return &schema.Union{Alts: alts}, nil

	case *schema.Product:
		var fields []schema.Field

		for _, f := range n.Fields {
			t, err := r.substitute(f.Type, env, path.Field(f.Name))
			if err != nil {
				return nil, err
			}

			fields = append(fields, schema.Field{Name: f.Name, Type: t, Optional: f.Optional})
		}

		return &schema.Product{Fields: fields}, nil

	case *schema.Wrapper:
		display, err := r.substitute(n.Display, env, path)
		if err != nil {
			return nil, err
		}

		return r.collapse(n, display, path)

	case *schema.Array:
		elem, err := r.substitute(n.Elem, env, path.Elem())
		if err != nil {
			return nil, err
		}

		return &schema.Array{Elem: elem}, nil

	case *schema.Literal, *schema.Primitive:
		return n, nil

	case *schema.Wildcard:
		return nil, diagnostic.Errorf(diagnostic.KindStrayWildcard, r.scope(),
			"wildcard is only allowed as a reference argument").At(path.String())

	default:
		return nil, fmt.Errorf("%s: unsupported expression %T", path, e)
	}
}

// expand inlines one reference: resolve, bind, then substitute the callee
// body while the callee sits on the resolution stack.
func (r *run) expand(ref *schema.Reference, env Env, path schema.Path) (schema.Expr, error) {
	decl, args, err := r.resolve(ref, env, path)
	if err != nil {
		return nil, err
	}

	if err := r.push(decl.Name, signature(args), path); err != nil {
		return nil, err
	}
	defer r.pop()

	r.reach(decl.Name)

	callee, err := r.bind(decl, args, path)
	if err != nil {
		return nil, err
	}

	return r.substitute(decl.Body, callee, path)
}

// collapse sinks the metadata of w into the index, once per literal value of
// its already substituted display, and returns the bare display.
// Non-literal alternatives of the display are kept but carry no metadata.
func (r *run) collapse(w *schema.Wrapper, display schema.Expr, path schema.Path) (schema.Expr, error) {
	lits, rest := schema.Literals(display)

	for _, l := range lits {
		if err := r.index.Add(*l, w.Aliases, w.Default); err != nil {
			return nil, located(err, path)
		}
	}

	if len(rest) > 0 {
		r.logger.Debug("wrapper display has non-literal alternatives",
			"path", path.String(),
			"count", len(rest),
		)
		r.diags.AddWarning(CodeUnindexedAlternative,
			fmt.Sprintf("%d non-literal alternatives of %s carry no alias metadata", len(rest), schema.Format(display)),
			r.root, path.String())
	}

	return display, nil
}

func (r *run) scope() string {
	if name := r.current(); name != "" {
		return name
	}

	return "<root>"
}

func located(err error, path schema.Path) error {
	var ge *diagnostic.Error
	if errors.As(err, &ge) {
		return ge.At(path.String())
	}

	return err
}
