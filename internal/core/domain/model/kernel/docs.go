// Package kernel provides core domain primitives shared by the order, menu and
// access models.
//
// The package includes:
//   - UUID: a value object for order identifiers with validation and comparison
//   - Table: the table label orders are bound to, with numeric canonicalisation
//     and range checks against the configured table count
//
// Zero values of both types are invalid; construct them through their factory
// functions. Both are immutable and safe for concurrent use.
package kernel
