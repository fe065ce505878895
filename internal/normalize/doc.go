// Package normalize resolves an authoring-time grammar into its canonical
// form.
//
// Pipeline (per root declaration):
//  1. Table: every declaration, registered once and read-only afterwards
//  2. Resolve: look up a reference, substitute its arguments in the caller's
//     scope, pad missing arguments with wildcards and bind each parameter,
//     falling back to the parameter's constraint for wildcard arguments
//  3. Substitute: rewrite the callee body under the new environment, inlining
//     every reference and flattening nested unions
//  4. Collapse: replace each wrapper by its display value and sink its
//     aliases and default flag into the AliasIndex (bottom-up, in the same
//     pass, so wrappers inside generic arguments are collapsed before they
//     reach a callee body)
//  5. Validate: re-check the output is free of references, parameters,
//     wildcards and wrappers, and that no union repeats a literal
//
// The Table may be shared by concurrent runs. Each run owns its resolution
// stack and AliasIndex; NormalizeAll merges indices across runs with the same
// conflict rule used inside a run.
package normalize
