package diagnostic

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind classifies a structural grammar defect. The set is closed.
//
// Kind implements error so callers can test a failure with
// errors.Is(err, diagnostic.KindAliasConflict).
type Kind int

const (
	_ Kind = iota // zero value is reserved as invalid

	KindDuplicateDeclaration
	KindUnknownDeclaration
	KindArityMismatch
	KindUnconstrainedWildcard
	KindStrayWildcard
	KindRecursiveDefinition
	KindAliasConflict
	KindDuplicateUnionAlternative
)

// Error returns the kind name.
func (k Kind) Error() string {
	return k.String()
}
