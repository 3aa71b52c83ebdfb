package grocery

import (
	"context"

	"github.com/Veraticus/grocery-list/internal/common"
)

// Subtract removes amount units of the named item on behalf of a caller.
// Removing exactly the remaining quantity deletes the item.
func Subtract(ctx context.Context, m *Manager, name string, amount int) error {
	if amount <= 0 {
		return common.InvalidArgument("quantity to remove must be positive")
	}
	if !m.DoesItemExist(name) {
		return common.NotFound("item not found: %s", name)
	}

	available := m.ItemQuantity(name)
	if amount > available {
		return common.InvalidArgument("cannot remove more than available: %d requested, %d available", amount, available)
	}

	return m.AddItem(ctx, name, -amount, "")
}
