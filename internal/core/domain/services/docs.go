// Package services provides domain services that work across several Order
// aggregates of the point-of-service system.
//
// The package includes:
//   - OrderRelocator: moves a line item, or every order of a table, to another table
//   - TableGrouper: groups current orders by table for display
//
// Both services are pure: they operate on aggregates handed to them and leave
// loading and persistence to the application layer.
package services
