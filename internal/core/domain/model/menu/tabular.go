package menu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pos/internal/pkg/errs"
)

const tableCountDirective = "tablecount:"

// ExportHeader is the header row written by ExportRows.
var ExportHeader = []string{"Category", "Item", "Ingredient", "Add-on"}

// ErrHeaderNotFound is returned by ImportRows when the rows carry no
// Category/Item header.
var ErrHeaderNotFound = errs.NewValueIsInvalidErrorWithCause("rows",
	errors.New("header row with Category and Item columns not found"))

type columns struct {
	category, item, ingredient, addon int
}

// carry is the fold state of an import: the last non-blank category and item
// seen above the current row.
type carry struct {
	category string
	item     string
}

// next applies one row to the carried state. A blank cell inherits the carried
// value; a new category forgets the carried item so that item names never leak
// across category blocks.
func (c carry) next(category, item string) carry {
	if category != "" && category != c.category {
		c = carry{category: category}
	}
	if item != "" {
		c.item = item
	}
	return c
}

// ImportRows builds a menu from Category | Item | Ingredient | Add-on rows.
//
// An optional first row "tableCount:N" sets the table count; without it the menu
// keeps fallbackTableCount. Blank rows before the header are skipped. The header
// is matched case-insensitively and must name Category and Item; Ingredient and
// Add-on are optional. Blank Category and Item cells inherit the values above.
// A row with an ingredient but no item only registers its category.
func ImportRows(rows [][]string, fallbackTableCount int) (*Menu, error) {
	m := NewMenu()
	if fallbackTableCount > 0 {
		if err := m.SetTableCount(fallbackTableCount); err != nil {
			return nil, err
		}
	}

	rest := skipBlankRows(rows)
	if len(rest) > 0 {
		if n, ok := parseTableCount(rest[0]); ok {
			if n > 0 {
				if err := m.SetTableCount(n); err != nil {
					return nil, err
				}
			}
			rest = skipBlankRows(rest[1:])
		}
	}
	if len(rest) == 0 {
		return nil, ErrHeaderNotFound
	}
	cols, ok := parseHeader(rest[0])
	if !ok {
		return nil, ErrHeaderNotFound
	}

	state := carry{}
	for i, row := range rest[1:] {
		state = state.next(cell(row, cols.category), cell(row, cols.item))
		if err := m.applyRow(state, cell(row, cols.ingredient), cell(row, cols.addon)); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return m, nil
}

func (m *Menu) applyRow(state carry, ingredient, addon string) error {
	if state.category == "" {
		return nil
	}
	category, ok := m.CategoryByName(state.category)
	if !ok {
		var err error
		if category, err = m.AddCategory(state.category); err != nil {
			return err
		}
	}

	if state.item != "" {
		idx := m.itemIndexByName(category.ID, state.item)
		if idx < 0 {
			item, err := m.AddItem(category.ID, state.item)
			if err != nil {
				return err
			}
			idx = m.itemIndex(item.ID)
		}
		if ingredient != "" {
			if err := m.AddIngredient(m.items[idx].ID, ingredient); err != nil && !errors.Is(err, errs.ErrObjectAlreadyExists) {
				return err
			}
		}
	}

	if addon != "" {
		if _, err := m.AddAddon(category.ID, addon); err != nil && !errors.Is(err, errs.ErrObjectAlreadyExists) {
			return err
		}
	}
	return nil
}

// ExportRows flattens the menu: a tableCount directive row, the header, then per
// category one row per (item, ingredient), one row per item without
// ingredients, one row per addon, or a single row for an empty category.
// Category and item names are written only on their first row within a block.
func (m *Menu) ExportRows() [][]string {
	width := len(ExportHeader)
	rows := [][]string{
		padRow([]string{"tableCount:" + strconv.Itoa(m.tableCount)}, width),
		append([]string(nil), ExportHeader...),
	}

	for _, category := range m.categories {
		items := m.ItemsOf(category.ID)
		addons := m.AddonsOf(category.ID)
		if len(items) == 0 && len(addons) == 0 {
			rows = append(rows, []string{category.Name, "", "", ""})
			continue
		}

		categoryCell := category.Name
		takeCategory := func() string {
			c := categoryCell
			categoryCell = ""
			return c
		}

		for _, item := range items {
			if len(item.Ingredients) == 0 {
				rows = append(rows, []string{takeCategory(), item.Name, "", ""})
				continue
			}
			for i, ing := range item.Ingredients {
				itemCell := ""
				if i == 0 {
					itemCell = item.Name
				}
				rows = append(rows, []string{takeCategory(), itemCell, ing, ""})
			}
		}
		for _, addon := range addons {
			rows = append(rows, []string{takeCategory(), "", "", addon.Name})
		}
	}
	return rows
}

func parseHeader(row []string) (columns, bool) {
	cols := columns{category: -1, item: -1, ingredient: -1, addon: -1}
	for i, h := range row {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "category":
			cols.category = first(cols.category, i)
		case "item":
			cols.item = first(cols.item, i)
		case "ingredient":
			cols.ingredient = first(cols.ingredient, i)
		case "add-on", "addon":
			cols.addon = first(cols.addon, i)
		}
	}
	return cols, cols.category >= 0 && cols.item >= 0
}

func parseTableCount(row []string) (int, bool) {
	head := strings.ToLower(cell(row, 0))
	if !strings.HasPrefix(head, tableCountDirective) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(head[len(tableCountDirective):]))
	if err != nil || n < 1 {
		// an unreadable directive is still a directive row; the count stays unchanged
		return 0, true
	}
	return n, true
}

func skipBlankRows(rows [][]string) [][]string {
	for len(rows) > 0 && isBlank(rows[0]) {
		rows = rows[1:]
	}
	return rows
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func first(current, idx int) int {
	if current >= 0 {
		return current
	}
	return idx
}

func padRow(row []string, width int) []string {
	for len(row) < width {
		row = append(row, "")
	}
	return row
}
