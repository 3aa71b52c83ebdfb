package grocery

import (
	"strings"

	"github.com/Veraticus/grocery-list/internal/model"
)

// DoesItemExist reports whether an item with exactly this name exists.
func (m *Manager) DoesItemExist(name string) bool {
	return m.indexOf(strings.TrimSpace(name)) >= 0
}

// ItemQuantity returns the item's quantity, or 0 when it does not exist.
func (m *Manager) ItemQuantity(name string) int {
	if i := m.indexOf(strings.TrimSpace(name)); i >= 0 {
		return m.items[i].Quantity
	}
	return 0
}

// ItemCategory returns the item's category, or the default category when it
// does not exist.
func (m *Manager) ItemCategory(name string) string {
	if i := m.indexOf(strings.TrimSpace(name)); i >= 0 {
		return m.items[i].Category
	}
	return model.DefaultCategory
}

// CategoryExists reports whether category is tracked. The default category
// always exists.
func (m *Manager) CategoryExists(category string) bool {
	return m.index.CategoryExists(category)
}

// ItemsInCategory returns the category's items formatted as "name: quantity".
func (m *Manager) ItemsInCategory(category string) []string {
	names := m.index.ItemsInCategory(category)
	out := make([]string, 0, len(names))
	for _, name := range names {
		if i := m.indexOf(name); i >= 0 {
			out = append(out, m.items[i].String())
		}
	}
	return out
}

// Categories returns the categories holding at least one item, default
// first, then in creation order.
func (m *Manager) Categories() []string {
	var out []string
	for _, category := range m.index.Categories() {
		if len(m.index.ItemsInCategory(category)) > 0 {
			out = append(out, category)
		}
	}
	return out
}

// GroceryListByCategory groups every item, formatted as "name: quantity",
// under its category.
func (m *Manager) GroceryListByCategory() map[string][]string {
	out := make(map[string][]string)
	for _, item := range m.items {
		out[item.Category] = append(out[item.Category], item.String())
	}
	return out
}

// Items returns a copy of every item in list order.
func (m *Manager) Items() []model.Item {
	out := make([]model.Item, len(m.items))
	copy(out, m.items)
	return out
}

// Len returns the number of items.
func (m *Manager) Len() int {
	return len(m.items)
}
