package cli

import "fmt"

// EmptyListMessage is shown when the list holds no items.
const EmptyListMessage = "The grocery list is empty."

// AddedMessage confirms an addition.
func AddedMessage(name string, quantity int, category string) string {
	return fmt.Sprintf("Added %d %s to category '%s'", quantity, name, category)
}

// RemovedQuantityMessage confirms a partial removal.
func RemovedQuantityMessage(name string, quantity int) string {
	return fmt.Sprintf("Removed %d %s", quantity, name)
}

// RemovedItemMessage confirms that an item was dropped entirely.
func RemovedItemMessage(name string) string {
	return "Removed " + name
}

// EmptyCategoryMessage is shown when a category holds no items.
func EmptyCategoryMessage(category string) string {
	return "No items in category: " + category
}

// CategoryMismatchMessage explains why a category-scoped removal was refused.
func CategoryMismatchMessage(name, want, got string) string {
	return fmt.Sprintf("%s is in category '%s', not '%s'", name, got, want)
}

// CategoryHeader renders the header line above a category's items.
func CategoryHeader(category string) string {
	return "# " + category + ":"
}

// ServingMessage announces the web server and the list it serves.
func ServingMessage(path, format string, items, port int) string {
	return fmt.Sprintf("Serving %s (%s, %d items) on http://localhost:%d", path, format, items, port)
}
