package model

import (
	"math"
	"strconv"
	"strings"
)

// DefaultCategory is the implicit category of items created without one.
const DefaultCategory = "default"

// Item represents a tracked grocery entry.
type Item struct {
	Name     string
	Category string
	Quantity int
}

// NewItem builds an item with a trimmed name and a normalized category.
func NewItem(name string, quantity int, category string) Item {
	return Item{
		Name:     strings.TrimSpace(name),
		Quantity: quantity,
		Category: NormalizeCategory(category),
	}
}

// NormalizeCategory maps blank categories to DefaultCategory.
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return DefaultCategory
	}
	return category
}

// IsDefaultCategory reports whether category normalizes to DefaultCategory.
func IsDefaultCategory(category string) bool {
	return NormalizeCategory(category) == DefaultCategory
}

// WithQuantity returns a copy of the item with a new quantity.
func (i Item) WithQuantity(quantity int) Item {
	i.Quantity = quantity
	return i
}

// WithCategory returns a copy of the item moved to category.
func (i Item) WithCategory(category string) Item {
	i.Category = NormalizeCategory(category)
	return i
}

// AddQuantities returns a+b and false when the sum does not fit in an int.
func AddQuantities(a, b int) (int, bool) {
	if (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b) {
		return 0, false
	}
	return a + b, true
}

// String renders the item as "name: quantity".
func (i Item) String() string {
	return i.Name + ": " + strconv.Itoa(i.Quantity)
}
