package schema

import "strings"

// Path builds a readable location inside an expression tree.
// Examples:
//   - "Cart" for a root declaration
//   - "Cart.items" for a field
//   - "Cart.items[]" for array elements
//   - "Cart.items[].name" for a field within array elements
//
// Paths are values; every method returns a new Path.
type Path struct {
	parts []string
}

// NewPath creates a Path rooted at name.
func NewPath(root string) Path {
	return Path{parts: []string{root}}
}

// Field appends a field name to the path.
func (p Path) Field(name string) Path {
	return Path{parts: append(append([]string{}, p.parts...), name)}
}

// Elem appends an array element indicator "[]" to the path.
func (p Path) Elem() Path {
	if len(p.parts) == 0 {
		return Path{parts: []string{"[]"}}
	}

	parts := make([]string, len(p.parts))
	copy(parts, p.parts)
	parts[len(parts)-1] += "[]"

	return Path{parts: parts}
}

// String returns the full path string.
func (p Path) String() string {
	return strings.Join(p.parts, ".")
}
