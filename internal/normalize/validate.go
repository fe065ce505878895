package normalize

import (
	"fmt"

	"github.com/hashicorp/go-set/v3"

	"schema-normalizer/internal/diagnostic"
	"schema-normalizer/internal/schema"
)

// Validate checks that a normalized tree holds no reference, parameter,
// wildcard or wrapper, and that no union lists the same literal twice.
// root names the tree in reported paths.
func Validate(e schema.Expr, root string) error {
	return validateExpr(e, schema.NewPath(root))
}

func validateExpr(e schema.Expr, path schema.Path) error {
	switch n := e.(type) {
	case *schema.Reference:
		return diagnostic.Errorf(diagnostic.KindUnknownDeclaration, n.Name,
			"reference survived normalization").At(path.String())

	case *schema.ParamRef:
		return diagnostic.Errorf(diagnostic.KindUnknownDeclaration, n.Name,
			"type parameter survived normalization").At(path.String())

	case *schema.Wildcard:
		return diagnostic.Errorf(diagnostic.KindStrayWildcard, path.String(),
			"wildcard survived normalization").At(path.String())

	case *schema.Wrapper:
		return diagnostic.Errorf(diagnostic.KindAliasConflict, schema.Format(n.Display),
			"wrapper survived normalization, its metadata is not indexed").At(path.String())

	case *schema.Union:
		seen := set.New[schema.Literal](len(n.Alts))

		for _, alt := range n.Alts {
			if l, ok := alt.(*schema.Literal); ok && !seen.Insert(*l) {
				return diagnostic.Errorf(diagnostic.KindDuplicateUnionAlternative, l.Text,
					"%s appears more than once in %s", schema.FormatLiteral(l), schema.Format(n)).At(path.String())
			}

			if err := validateExpr(alt, path); err != nil {
				return err
			}
		}

	case *schema.Product:
		for _, f := range n.Fields {
			if err := validateExpr(f.Type, path.Field(f.Name)); err != nil {
				return err
			}
		}

	case *schema.Array:
		return validateExpr(n.Elem, path.Elem())

	case *schema.Literal, *schema.Primitive:

	default:
		return fmt.Errorf("%s: unsupported expression %T", path, e)
	}

	return nil
}
