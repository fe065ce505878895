package normalize

import (
	"schema-normalizer/internal/diagnostic"
	"schema-normalizer/internal/schema"
)

// Table owns every declaration of a grammar, keyed by name.
//
// Declarations may reference each other in any order; references are
// resolved by name only after the table is fully populated. A Table must not
// be modified once a normalization run has started on it.
type Table struct {
	decls map[string]*schema.Declaration
	order []string
}

// NewTable creates a Table holding decls.
func NewTable(decls ...schema.Declaration) (*Table, error) {
	t := &Table{decls: make(map[string]*schema.Declaration, len(decls))}

	for _, d := range decls {
		if err := t.Register(d); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Register adds decl to the table.
func (t *Table) Register(decl schema.Declaration) error {
	if t.decls == nil {
		t.decls = map[string]*schema.Declaration{}
	}

	if _, exists := t.decls[decl.Name]; exists {
		return diagnostic.Errorf(diagnostic.KindDuplicateDeclaration, decl.Name, "declared more than once")
	}

	d := decl
	t.decls[decl.Name] = &d
	t.order = append(t.order, decl.Name)

	return nil
}

// Lookup returns the declaration registered under name.
func (t *Table) Lookup(name string) (*schema.Declaration, error) {
	d, ok := t.decls[name]
	if !ok {
		return nil, diagnostic.Errorf(diagnostic.KindUnknownDeclaration, name, "no such declaration")
	}

	return d, nil
}

// Names returns the declaration names in registration order.
func (t *Table) Names() []string {
	return append([]string(nil), t.order...)
}

// Len returns the number of declarations.
func (t *Table) Len() int {
	return len(t.order)
}
