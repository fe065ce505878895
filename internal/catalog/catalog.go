package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/hashicorp/go-set/v3"

	"schema-normalizer/internal/diagnostic"
	"schema-normalizer/internal/normalize"
	"schema-normalizer/internal/schema"
)

// NameField is the product field whose literals identify a declaration.
const NameField = "name"

// Catalog is the lookup data derived from a set of declarations.
type Catalog struct {
	// Types maps a name literal to the declaration that owns it.
	// When several declarations claim a literal, the last one wins.
	Types map[string]string `yaml:"types"`
	// Defaults maps a declaration to its optional fields, in field order.
	Defaults map[string][]string `yaml:"defaults"`
	// Duplicates maps a literal claimed by several declarations to them, sorted.
	Duplicates map[string][]string `yaml:"duplicates,omitempty"`
	// Skipped lists generic declarations that cannot be normalized alone.
	// Their name literals are unknown, but their optional fields are listed
	// in Defaults when the body is a product.
	Skipped []string `yaml:"skipped,flow,omitempty"`
}

// Build catalogs the declarations named by names, or every declaration of
// the normalizer's table, dependencies first, when names is empty.
//
// Each declaration is normalized as a reference without arguments. One that
// fails with UnconstrainedWildcard is skipped but still contributes its
// optional fields; any other failure aborts.
func Build(n *normalize.Normalizer, names []string) (*Catalog, error) {
	if len(names) == 0 {
		var err error

		names, err = n.Table().Order()
		if err != nil {
			return nil, fmt.Errorf("failed to order declarations: %w", err)
		}
	}

	c := &Catalog{
		Types:      map[string]string{},
		Defaults:   map[string][]string{},
		Duplicates: map[string][]string{},
	}

	claims := map[string]*set.TreeSet[string]{}

	for _, name := range names {
		res, err := n.Normalize(name)
		if errors.Is(err, diagnostic.KindUnconstrainedWildcard) {
			c.Skipped = append(c.Skipped, name)

			// The fields of a generic product are known without its arguments.
			if d, lookupErr := n.Table().Lookup(name); lookupErr == nil {
				if p, ok := d.Body.(*schema.Product); ok {
					c.addDefaults(name, p)
				}
			}

			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to catalog %s: %w", name, err)
		}

		p, ok := res.Schema.(*schema.Product)
		if !ok {
			continue
		}

		c.addDefaults(name, p)

		field, ok := p.Field(NameField)
		if !ok {
			continue
		}

		lits, _ := schema.Literals(field.Type)
		for _, l := range lits {
			if l.Kind != schema.LiteralString {
				continue
			}

			c.Types[l.Text] = name

			if claims[l.Text] == nil {
				claims[l.Text] = set.NewTreeSet[string](cmp.Compare[string])
			}

			claims[l.Text].Insert(name)
		}
	}

	for lit, owners := range claims {
		if owners.Size() > 1 {
			c.Duplicates[lit] = owners.Slice()
		}
	}

	return c, nil
}

func (c *Catalog) addDefaults(name string, p *schema.Product) {
	var optional []string

	for _, f := range p.Fields {
		if f.Optional {
			optional = append(optional, f.Name)
		}
	}

	if len(optional) > 0 {
		c.Defaults[name] = optional
	}
}

// Reachable lists the declarations reached by results, first visit first.
func Reachable(results ...*normalize.Result) []string {
	seen := set.New[string](0)

	var names []string

	for _, r := range results {
		for _, name := range r.Reachable {
			if seen.Insert(name) {
				names = append(names, name)
			}
		}
	}

	return names
}

// DuplicateNames returns the duplicated literals in sorted order.
func (c *Catalog) DuplicateNames() []string {
	return slices.Sorted(maps.Keys(c.Duplicates))
}

// Apply returns a deep copy of tree in which every object whose name is
// catalogued carries all optional fields of its declaration, missing ones
// set to nil. Fields already present are kept as they are.
func (c *Catalog) Apply(tree map[string]any) map[string]any {
	out, _ := c.apply(tree).(map[string]any)
	return out
}

func (c *Catalog) apply(node any) any {
	switch v := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, child := range v {
			out[k] = c.apply(child)
		}

		if name, ok := v[NameField].(string); ok {
			for _, f := range c.Defaults[c.Types[name]] {
				if _, present := out[f]; !present {
					out[f] = nil
				}
			}
		}

		return out

	case []any:
		out := make([]any, len(v))
		for i, child := range v {
			out[i] = c.apply(child)
		}

		return out

	default:
		return v
	}
}
