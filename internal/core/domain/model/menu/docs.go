// Package menu provides the MenuCatalog aggregate: categories, the items and
// addons they own, and the number of tables the restaurant serves.
//
// The catalog is persisted and exchanged as one document (see Document). Editing
// operations enforce the naming rules:
//   - category names are unique across the menu
//   - item and addon names are unique within their category
//   - ingredient names are unique within their item
//   - names are trimmed; an empty name is rejected with errs.ErrValueIsRequired
//   - a duplicate is rejected with errs.ErrObjectAlreadyExists
//
// Deleting a category removes its items and addons.
//
// The tabular form (ImportRows, Menu.ExportRows) flattens the tree into
// Category | Item | Ingredient | Add-on rows for spreadsheet round trips.
package menu
