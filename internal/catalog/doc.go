// Package catalog derives a lookup catalog from normalized declarations.
//
// A catalog maps every string literal of a product's "name" field to the
// declaration that owns it, and lists each declaration's optional fields.
// Apply uses it to complete parsed trees with the optional fields they omit.
package catalog
