package menu

import (
	"errors"
	"slices"
	"strings"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"

	"github.com/google/uuid"
)

// MaxTableCount bounds SetTableCount.
const MaxTableCount = 1000

var ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu or FromDocument")

type Category struct {
	ID   string
	Name string
}

type Item struct {
	ID          string
	CategoryID  string
	Name        string
	Ingredients []string
}

type Addon struct {
	ID         string
	CategoryID string
	Name       string
}

// Menu is the catalog aggregate. Categories, items and addons keep insertion order.
type Menu struct {
	categories []Category
	items      []Item
	addons     []Addon
	tableCount int

	isConstructed bool
}

// NewMenu returns an empty menu serving kernel.DefaultTableCount tables.
func NewMenu() *Menu {
	return &Menu{
		tableCount:    kernel.DefaultTableCount,
		isConstructed: true,
	}
}

func (m *Menu) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuIsNotConstructed
	}
	return nil
}

func (m *Menu) TableCount() int {
	return m.tableCount
}

func (m *Menu) Categories() []Category {
	return slices.Clone(m.categories)
}

// Items returns a copy of every item. Ingredient slices are copied too.
func (m *Menu) Items() []Item {
	out := make([]Item, len(m.items))
	for i, item := range m.items {
		out[i] = cloneItem(item)
	}
	return out
}

func (m *Menu) Addons() []Addon {
	return slices.Clone(m.addons)
}

// ItemsOf returns the items of one category in insertion order.
func (m *Menu) ItemsOf(categoryID string) []Item {
	var out []Item
	for _, item := range m.items {
		if item.CategoryID == categoryID {
			out = append(out, cloneItem(item))
		}
	}
	return out
}

func (m *Menu) AddonsOf(categoryID string) []Addon {
	var out []Addon
	for _, addon := range m.addons {
		if addon.CategoryID == categoryID {
			out = append(out, addon)
		}
	}
	return out
}

// CategoryByName looks a category up by its exact name.
func (m *Menu) CategoryByName(name string) (Category, bool) {
	i := slices.IndexFunc(m.categories, func(c Category) bool { return c.Name == name })
	if i < 0 {
		return Category{}, false
	}
	return m.categories[i], true
}

func (m *Menu) AddCategory(name string) (Category, error) {
	name, err := requireName("category", name)
	if err != nil {
		return Category{}, err
	}
	if _, ok := m.CategoryByName(name); ok {
		return Category{}, errs.NewObjectAlreadyExistsError("category", name)
	}

	category := Category{ID: newID("cat"), Name: name}
	m.categories = append(m.categories, category)
	return category, nil
}

// DeleteCategory removes a category together with its items and addons.
func (m *Menu) DeleteCategory(categoryID string) error {
	if m.categoryIndex(categoryID) < 0 {
		return errs.NewObjectNotFoundError("category", categoryID)
	}
	m.categories = slices.DeleteFunc(m.categories, func(c Category) bool { return c.ID == categoryID })
	m.items = slices.DeleteFunc(m.items, func(i Item) bool { return i.CategoryID == categoryID })
	m.addons = slices.DeleteFunc(m.addons, func(a Addon) bool { return a.CategoryID == categoryID })
	return nil
}

func (m *Menu) AddItem(categoryID, name string) (Item, error) {
	name, err := requireName("item", name)
	if err != nil {
		return Item{}, err
	}
	if m.categoryIndex(categoryID) < 0 {
		return Item{}, errs.NewObjectNotFoundError("category", categoryID)
	}
	if m.itemIndexByName(categoryID, name) >= 0 {
		return Item{}, errs.NewObjectAlreadyExistsError("item", name)
	}

	item := Item{ID: newID("item"), CategoryID: categoryID, Name: name, Ingredients: []string{}}
	m.items = append(m.items, item)
	return cloneItem(item), nil
}

func (m *Menu) DeleteItem(itemID string) error {
	if m.itemIndex(itemID) < 0 {
		return errs.NewObjectNotFoundError("item", itemID)
	}
	m.items = slices.DeleteFunc(m.items, func(i Item) bool { return i.ID == itemID })
	return nil
}

// AddIngredient appends a default ingredient to an item's recipe.
func (m *Menu) AddIngredient(itemID, name string) error {
	name, err := requireName("ingredient", name)
	if err != nil {
		return err
	}
	idx := m.itemIndex(itemID)
	if idx < 0 {
		return errs.NewObjectNotFoundError("item", itemID)
	}
	if slices.Contains(m.items[idx].Ingredients, name) {
		return errs.NewObjectAlreadyExistsError("ingredient", name)
	}
	m.items[idx].Ingredients = append(m.items[idx].Ingredients, name)
	return nil
}

// DeleteIngredient removes the ingredient at position index of an item's recipe.
func (m *Menu) DeleteIngredient(itemID string, index int) error {
	idx := m.itemIndex(itemID)
	if idx < 0 {
		return errs.NewObjectNotFoundError("item", itemID)
	}
	ingredients := m.items[idx].Ingredients
	if index < 0 || index >= len(ingredients) {
		return errs.NewObjectNotFoundError("ingredient index", index)
	}
	m.items[idx].Ingredients = slices.Delete(ingredients, index, index+1)
	return nil
}

func (m *Menu) AddAddon(categoryID, name string) (Addon, error) {
	name, err := requireName("addon", name)
	if err != nil {
		return Addon{}, err
	}
	if m.categoryIndex(categoryID) < 0 {
		return Addon{}, errs.NewObjectNotFoundError("category", categoryID)
	}
	if slices.ContainsFunc(m.addons, func(a Addon) bool { return a.CategoryID == categoryID && a.Name == name }) {
		return Addon{}, errs.NewObjectAlreadyExistsError("addon", name)
	}

	addon := Addon{ID: newID("addon"), CategoryID: categoryID, Name: name}
	m.addons = append(m.addons, addon)
	return addon, nil
}

func (m *Menu) DeleteAddon(addonID string) error {
	if !slices.ContainsFunc(m.addons, func(a Addon) bool { return a.ID == addonID }) {
		return errs.NewObjectNotFoundError("addon", addonID)
	}
	m.addons = slices.DeleteFunc(m.addons, func(a Addon) bool { return a.ID == addonID })
	return nil
}

func (m *Menu) SetTableCount(n int) error {
	if n < 1 || n > MaxTableCount {
		return errs.NewValueIsOutOfRangeError("tableCount", n, 1, MaxTableCount)
	}
	m.tableCount = n
	return nil
}

func (m *Menu) categoryIndex(id string) int {
	return slices.IndexFunc(m.categories, func(c Category) bool { return c.ID == id })
}

func (m *Menu) itemIndex(id string) int {
	return slices.IndexFunc(m.items, func(i Item) bool { return i.ID == id })
}

func (m *Menu) itemIndexByName(categoryID, name string) int {
	return slices.IndexFunc(m.items, func(i Item) bool { return i.CategoryID == categoryID && i.Name == name })
}

func requireName(param, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errs.NewValueIsRequiredError(param)
	}
	return name, nil
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

func cloneItem(item Item) Item {
	item.Ingredients = slices.Clone(item.Ingredients)
	if item.Ingredients == nil {
		item.Ingredients = []string{}
	}
	return item
}
