package normalize

import (
	"strings"

	"schema-normalizer/internal/common"
	"schema-normalizer/internal/diagnostic"
	"schema-normalizer/internal/schema"
)

// Env binds the type parameters of one declaration to fully substituted
// expressions. An Env never outlives the reference resolution that built it.
type Env map[string]schema.Expr

// frame is an in-flight declaration expansion.
type frame struct {
	name      string
	signature string
}

// resolve substitutes the arguments of ref in the caller's scope, looks up
// the callee and pads missing trailing arguments with wildcards.
// Arguments may mention the caller's own parameters, so env is the caller's.
func (r *run) resolve(ref *schema.Reference, env Env, path schema.Path) (*schema.Declaration, []schema.Expr, error) {
	args, err := common.Map(ref.Args, func(a schema.Expr) (schema.Expr, error) {
		if _, ok := a.(*schema.Wildcard); ok {
			return a, nil
		}

		return r.substitute(a, env, path)
	})
	if err != nil {
		return nil, nil, err
	}

	decl, err := r.table.Lookup(ref.Name)
	if err != nil {
		return nil, nil, located(err, path)
	}

	if len(args) > len(decl.Params) {
		return nil, nil, diagnostic.Errorf(diagnostic.KindArityMismatch, ref.Name,
			"%d arguments supplied, declaration takes at most %d", len(args), len(decl.Params)).At(path.String())
	}

	args = common.PadTo(args, len(decl.Params), func() schema.Expr { return schema.Any() })

	return decl, args, nil
}

// bind pairs each parameter of decl with its argument. A wildcard argument
// falls back to the parameter's declared constraint, which is itself
// substituted in the callee's scope under the parameters bound before it.
func (r *run) bind(decl *schema.Declaration, args []schema.Expr, path schema.Path) (Env, error) {
	env := make(Env, len(decl.Params))

	for i, p := range decl.Params {
		arg := args[i]

		if _, isWildcard := arg.(*schema.Wildcard); !isWildcard {
			env[p.Name] = arg
			continue
		}

		if p.Constraint == nil {
			return nil, diagnostic.Errorf(diagnostic.KindUnconstrainedWildcard, decl.Name,
				"wildcard argument for parameter %s, which declares no constraint", p.Name).At(path.String())
		}

		bound, err := r.substitute(p.Constraint, env, path)
		if err != nil {
			return nil, err
		}

		env[p.Name] = bound
	}

	return env, nil
}

// push marks decl as being expanded. Re-entering a declaration that is
// already on the stack, with the same arguments or not, is a cycle.
func (r *run) push(name, signature string, path schema.Path) error {
	for i, f := range r.stack {
		if f.name != name {
			continue
		}

		chain := make([]string, 0, len(r.stack)-i+1)
		for _, g := range r.stack[i:] {
			chain = append(chain, g.name+g.signature)
		}

		chain = append(chain, name+signature)

		return diagnostic.Errorf(diagnostic.KindRecursiveDefinition, name,
			"reference chain revisits itself: %s", strings.Join(chain, " -> ")).At(path.String())
	}

	r.stack = append(r.stack, frame{name: name, signature: signature})

	return nil
}

func (r *run) pop() {
	r.stack = r.stack[:len(r.stack)-1]
}

// current names the declaration being expanded, or "" at the top level.
func (r *run) current() string {
	if len(r.stack) == 0 {
		return ""
	}

	return r.stack[len(r.stack)-1].name
}

func signature(args []schema.Expr) string {
	if len(args) == 0 {
		return ""
	}

	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, schema.Format(a))
	}

	return "<" + strings.Join(parts, ",") + ">"
}
