// Package schema defines the grammar's expression algebra: references,
// unions, products, metadata wrappers, literals, wildcards, parameter
// references, arrays and primitives, plus type declarations.
//
// Expressions are plain data. Declarations refer to each other by name, never
// by pointer, so a grammar holds no ownership cycles.
package schema
