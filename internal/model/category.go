package model

import "slices"

// CategoryIndex maps category names to the names of their member items.
// The DefaultCategory entry always exists; any other category is pruned as
// soon as its last member leaves.
type CategoryIndex struct {
	members    map[string][]string
	categoryOf map[string]string
	order      []string
}

// NewCategoryIndex creates an index holding only the empty default category.
func NewCategoryIndex() *CategoryIndex {
	idx := &CategoryIndex{}
	idx.Reset()
	return idx
}

// Reset drops every item and category except the default one.
func (c *CategoryIndex) Reset() {
	c.members = map[string][]string{DefaultCategory: nil}
	c.categoryOf = make(map[string]string)
	c.order = []string{DefaultCategory}
}

// AddItemToCategory records name as a member of category, moving it out of
// its previous category if needed.
func (c *CategoryIndex) AddItemToCategory(name, category string) {
	category = NormalizeCategory(category)

	if old, ok := c.categoryOf[name]; ok {
		if old == category {
			return
		}
		c.detach(name, old)
	}

	if _, ok := c.members[category]; !ok {
		c.order = append(c.order, category)
	}
	c.members[category] = append(c.members[category], name)
	c.categoryOf[name] = category
}

// RemoveItem forgets name entirely.
func (c *CategoryIndex) RemoveItem(name string) {
	old, ok := c.categoryOf[name]
	if !ok {
		return
	}
	c.detach(name, old)
	delete(c.categoryOf, name)
}

func (c *CategoryIndex) detach(name, category string) {
	names := slices.DeleteFunc(c.members[category], func(n string) bool { return n == name })
	if len(names) == 0 && category != DefaultCategory {
		delete(c.members, category)
		c.order = slices.DeleteFunc(c.order, func(n string) bool { return n == category })
		return
	}
	c.members[category] = names
}

// CategoryExists reports whether category is currently tracked.
func (c *CategoryIndex) CategoryExists(category string) bool {
	_, ok := c.members[category]
	return ok
}

// ItemsInCategory returns member names in insertion order, or an empty slice.
func (c *CategoryIndex) ItemsInCategory(category string) []string {
	names := c.members[category]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// ItemCategory returns the recorded category of name, or DefaultCategory.
func (c *CategoryIndex) ItemCategory(name string) string {
	if category, ok := c.categoryOf[name]; ok {
		return category
	}
	return DefaultCategory
}

// Contains reports whether name is tracked in any category.
func (c *CategoryIndex) Contains(name string) bool {
	_, ok := c.categoryOf[name]
	return ok
}

// Categories returns every tracked category, default first, then creation order.
func (c *CategoryIndex) Categories() []string {
	return slices.Clone(c.order)
}
