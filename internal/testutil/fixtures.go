package testutil

import (
	"slices"

	"github.com/Veraticus/grocery-list/internal/model"
)

// Fixture is a named, reusable set of grocery items.
type Fixture struct {
	name  string
	items []model.Item
}

// Name returns the fixture's descriptive name.
func (f Fixture) Name() string { return f.name }

// Items returns a copy of the fixture's items.
func (f Fixture) Items() []model.Item { return slices.Clone(f.items) }

// Predefined fixtures for common test scenarios.
var (
	// FixtureBasic mixes the default category with two explicit ones.
	FixtureBasic = Fixture{
		name: "Basic",
		items: []model.Item{
			model.NewItem("Milk", 2, ""),
			model.NewItem("Apple", 5, "Fruits"),
			model.NewItem("Chips", 3, "Snacks"),
		},
	}

	// FixtureUncategorized keeps every item in the default category.
	FixtureUncategorized = Fixture{
		name: "Uncategorized",
		items: []model.Item{
			model.NewItem("Bread", 1, ""),
			model.NewItem("Eggs", 12, ""),
		},
	}

	// FixtureTricky holds names that need quoting or escaping on disk.
	FixtureTricky = Fixture{
		name: "Tricky",
		items: []model.Item{
			model.NewItem("Chips, salted", 2, "Snacks"),
			model.NewItem(`Quote "this"`, 1, ""),
			model.NewItem("M&M's", 4, "Snacks"),
			model.NewItem("Ratio: 2:1 mix", 3, ""),
		},
	}
)
