package storage

import (
	"strconv"
	"strings"

	"github.com/Veraticus/grocery-list/internal/common"
	"github.com/Veraticus/grocery-list/internal/model"
)

// LineSeparator splits a line entry into name and quantity.
const LineSeparator = ": "

// FormatLine renders an item as a "name: quantity" line entry.
func FormatLine(item model.Item) string {
	return item.Name + LineSeparator + strconv.Itoa(item.Quantity)
}

// ParseLine parses a "name: quantity" line entry. The split happens at the
// last separator so names may contain ": " themselves. Line entries carry no
// category.
func ParseLine(line string) (model.Item, error) {
	idx := strings.LastIndex(line, LineSeparator)
	if idx < 0 {
		return model.Item{}, common.FormatError("malformed entry %q: expected \"name: quantity\"", line)
	}

	name := strings.TrimSpace(line[:idx])
	if name == "" {
		return model.Item{}, common.FormatError("malformed entry %q: missing name", line)
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(line[idx+len(LineSeparator):]))
	if err != nil {
		return model.Item{}, common.FormatError("malformed entry %q: quantity is not an integer", line)
	}

	return model.NewItem(name, quantity, ""), nil
}
