package diagnostic

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "DuplicateDeclaration", KindDuplicateDeclaration.String())
	assert.Equal(t, "DuplicateUnionAlternative", KindDuplicateUnionAlternative.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
	assert.Equal(t, "RecursiveDefinition", KindRecursiveDefinition.Error())
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "name only",
			err:      &Error{Kind: KindUnknownDeclaration, Name: "Drink"},
			expected: `UnknownDeclaration "Drink"`,
		},
		{
			name:     "with detail",
			err:      Errorf(KindArityMismatch, "Pair", "%d arguments supplied, declaration takes at most %d", 3, 2),
			expected: `ArityMismatch "Pair": 3 arguments supplied, declaration takes at most 2`,
		},
		{
			name:     "with path",
			err:      &Error{Kind: KindStrayWildcard, Name: "any", Path: "Cart.items[]"},
			expected: `Cart.items[]: StrayWildcard "any"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("normalize Cart: %w", Errorf(KindAliasConflict, "Regular", "conflict"))

	assert.ErrorIs(t, err, KindAliasConflict)
	assert.NotErrorIs(t, err, KindDuplicateDeclaration)

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindAliasConflict, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestError_At(t *testing.T) {
	base := &Error{Kind: KindRecursiveDefinition, Name: "A"}

	located := base.At("A.next")
	assert.Equal(t, "A.next", located.Path)
	assert.Empty(t, base.Path, "At must not modify the receiver")

	// The innermost location wins.
	assert.Same(t, located, located.At("A"))
	assert.Same(t, base, base.At(""))
}
