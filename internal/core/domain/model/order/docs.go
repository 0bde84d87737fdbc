// Package order provides the Order aggregate of the point-of-service system: one
// submission bound to a table and a creation time, holding one or more line items.
//
// The package includes:
//   - Order: the aggregate root (identity, table, placement time, items)
//   - Item: an immutable line value (menu item name, quantity, resolved ingredients)
//   - ResolveIngredients: merges selected default ingredients with "extra: " tagged addons
//
// Key business rules:
//   - A new order must have a valid identifier, a table and at least one item
//   - Item quantities are positive and ingredient lists hold each ingredient once
//   - Placement time has millisecond precision; clients correlate orders by it,
//     so it never changes after creation
//   - Items keep insertion order; RemoveItem addresses them by that index
//   - Only relocation (RemoveItem, AppendItems, Relabel) mutates an order
package order
