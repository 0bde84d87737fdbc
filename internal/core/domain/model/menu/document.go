package menu

import (
	"errors"
	"fmt"
	"strings"

	"pos/internal/pkg/errs"
)

// Document is the wire and storage form of a Menu, exchanged wholesale.
type Document struct {
	Categories []CategoryDocument `json:"categories"`
	Items      []ItemDocument     `json:"items"`
	Addons     []AddonDocument    `json:"addons"`
	TableCount int                `json:"tableCount,omitempty"`
}

type CategoryDocument struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ItemDocument struct {
	ID          string   `json:"id"`
	CategoryID  string   `json:"categoryId"`
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
}

type AddonDocument struct {
	ID         string `json:"id"`
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
}

// Document renders the menu for storage or for a client.
func (m *Menu) Document() Document {
	doc := Document{
		Categories: make([]CategoryDocument, 0, len(m.categories)),
		Items:      make([]ItemDocument, 0, len(m.items)),
		Addons:     make([]AddonDocument, 0, len(m.addons)),
		TableCount: m.tableCount,
	}
	for _, c := range m.categories {
		doc.Categories = append(doc.Categories, CategoryDocument{ID: c.ID, Name: c.Name})
	}
	for _, i := range m.items {
		item := cloneItem(i)
		doc.Items = append(doc.Items, ItemDocument{
			ID:          item.ID,
			CategoryID:  item.CategoryID,
			Name:        item.Name,
			Ingredients: item.Ingredients,
		})
	}
	for _, a := range m.addons {
		doc.Addons = append(doc.Addons, AddonDocument{ID: a.ID, CategoryID: a.CategoryID, Name: a.Name})
	}
	return doc
}

// FromDocument rebuilds a menu from its document form, applying the same naming
// rules as the editing operations. Entries without an id get a fresh one; a
// missing or non-positive tableCount falls back to kernel.DefaultTableCount.
//
// Items and addons must reference a category of the document.
func FromDocument(doc Document) (*Menu, error) {
	m := NewMenu()
	if doc.TableCount > 0 {
		if err := m.SetTableCount(doc.TableCount); err != nil {
			return nil, err
		}
	}

	var errList []error
	for _, c := range doc.Categories {
		errList = append(errList, m.restoreCategory(c))
	}
	for _, i := range doc.Items {
		errList = append(errList, m.restoreItem(i))
	}
	for _, a := range doc.Addons {
		errList = append(errList, m.restoreAddon(a))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Menu) restoreCategory(c CategoryDocument) error {
	id := strings.TrimSpace(c.ID)
	if id != "" && m.categoryIndex(id) >= 0 {
		return errs.NewObjectAlreadyExistsError("category id", id)
	}
	category, err := m.AddCategory(c.Name)
	if err != nil {
		return err
	}
	if id != "" {
		m.categories[m.categoryIndex(category.ID)].ID = id
	}
	return nil
}

func (m *Menu) restoreItem(i ItemDocument) error {
	id := strings.TrimSpace(i.ID)
	if id != "" && m.itemIndex(id) >= 0 {
		return errs.NewObjectAlreadyExistsError("item id", id)
	}
	if m.categoryIndex(i.CategoryID) < 0 {
		return errs.NewValueIsInvalidErrorWithCause("item", fmt.Errorf("%q references unknown category %q", i.Name, i.CategoryID))
	}
	item, err := m.AddItem(i.CategoryID, i.Name)
	if err != nil {
		return err
	}
	for _, ing := range i.Ingredients {
		if strings.TrimSpace(ing) == "" {
			continue
		}
		// repeated ingredients in a stored document collapse to one
		if err = m.AddIngredient(item.ID, ing); err != nil && !errors.Is(err, errs.ErrObjectAlreadyExists) {
			return err
		}
	}
	if id != "" {
		m.items[m.itemIndex(item.ID)].ID = id
	}
	return nil
}

func (m *Menu) restoreAddon(a AddonDocument) error {
	id := strings.TrimSpace(a.ID)
	if m.categoryIndex(a.CategoryID) < 0 {
		return errs.NewValueIsInvalidErrorWithCause("addon", fmt.Errorf("%q references unknown category %q", a.Name, a.CategoryID))
	}
	addon, err := m.AddAddon(a.CategoryID, a.Name)
	if err != nil {
		return err
	}
	if id != "" {
		for idx := range m.addons {
			if m.addons[idx].ID == addon.ID {
				m.addons[idx].ID = id
			}
		}
	}
	return nil
}
