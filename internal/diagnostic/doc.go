// Package diagnostic provides the closed set of grammar error kinds and the
// structured diagnostics collected while normalizing several roots.
//
// Key capabilities:
//   - Kind: DuplicateDeclaration, UnknownDeclaration, ArityMismatch,
//     UnconstrainedWildcard, StrayWildcard, RecursiveDefinition,
//     AliasConflict, DuplicateUnionAlternative
//   - Error: a kind plus the offending name, its location and a detail
//   - Diagnostics: per-root failure reports for batch runs and the CLI
package diagnostic
