// Package grocery implements the grocery list manager: item bookkeeping,
// category tracking, quantity arithmetic and persistence through a codec.
package grocery

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"

	"github.com/Veraticus/grocery-list/internal/common"
	"github.com/Veraticus/grocery-list/internal/model"
	"github.com/Veraticus/grocery-list/internal/service"
)

// Manager owns the grocery list. It is not safe for concurrent use; callers
// that share one Manager must serialize access themselves.
type Manager struct {
	codec    service.Codec
	index    *model.CategoryIndex
	path     string
	items    []model.Item
	autoSave bool
}

// Config holds configuration options for the manager.
type Config struct {
	// AutoSave rewrites the bound file after every successful mutation.
	AutoSave bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		AutoSave: true,
	}
}

// New creates a manager persisting through codec.
func New(codec service.Codec) *Manager {
	return NewWithConfig(codec, DefaultConfig())
}

// NewWithConfig creates a manager with custom configuration.
func NewWithConfig(codec service.Codec, config Config) *Manager {
	return &Manager{
		codec:    codec,
		index:    model.NewCategoryIndex(),
		items:    []model.Item{},
		autoSave: config.AutoSave,
	}
}

// Codec returns the codec the manager persists through.
func (m *Manager) Codec() service.Codec {
	return m.codec
}

// Path returns the file currently bound to the manager, if any.
func (m *Manager) Path() string {
	return m.path
}

// Bind associates path with the manager without reading it.
func (m *Manager) Bind(path string) {
	m.path = path
}

// Load replaces the whole list with the contents of path and binds path.
// On error the current list is left untouched and path is not bound.
func (m *Manager) Load(ctx context.Context, path string) error {
	loaded, err := m.codec.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to load grocery list: %w", err)
	}

	items, err := normalize(loaded)
	if err != nil {
		return fmt.Errorf("failed to load grocery list: %w", err)
	}

	m.items = items
	m.rebuildIndex()
	m.path = path

	slog.Debug("grocery list loaded", "path", path, "format", m.codec.Name(), "items", len(m.items))
	return nil
}

// Save writes the list to path and binds path.
func (m *Manager) Save(ctx context.Context, path string) error {
	if err := m.codec.Save(ctx, m.items, path); err != nil {
		return fmt.Errorf("failed to save grocery list: %w", err)
	}
	m.path = path
	return nil
}

// AddItem adds quantity to the named item, creating it when it does not
// exist yet. A negative quantity subtracts; a total at or below zero removes
// the item. An existing item only changes category when it is still in the
// default category and an explicit category is given; use UpdateItem to
// move an item between explicit categories.
func (m *Manager) AddItem(ctx context.Context, name string, quantity int, category string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return common.InvalidArgument("item name cannot be empty")
	}
	if quantity == 0 {
		return common.InvalidArgument("quantity must be non-zero")
	}

	i := m.indexOf(name)
	if i < 0 {
		if quantity < 0 {
			slog.Debug("nothing to subtract from missing item", "item", name, "quantity", quantity)
			return nil
		}
		item := model.NewItem(name, quantity, category)
		next := append(slices.Clone(m.items), item)
		if err := m.persist(ctx, next); err != nil {
			return err
		}
		m.items = next
		m.index.AddItemToCategory(item.Name, item.Category)
		return nil
	}

	existing := m.items[i]
	total, ok := model.AddQuantities(existing.Quantity, quantity)
	if !ok {
		return common.InvalidArgument("quantity overflow: %s cannot exceed %d", name, math.MaxInt)
	}
	if total <= 0 {
		return m.deleteAt(ctx, i)
	}

	updated := existing.WithQuantity(total)
	if !model.IsDefaultCategory(category) {
		if existing.Category == model.DefaultCategory {
			updated = updated.WithCategory(category)
		} else if model.NormalizeCategory(category) != existing.Category {
			slog.Debug("keeping existing category",
				"item", name,
				"category", existing.Category,
				"requested", model.NormalizeCategory(category))
		}
	}

	return m.replaceAt(ctx, i, updated)
}

// UpdateItem explicitly reassigns an existing item. A positive quantity
// replaces the current one and zero keeps it; a non-blank category moves the
// item there.
func (m *Manager) UpdateItem(ctx context.Context, name string, quantity int, category string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return common.InvalidArgument("item name cannot be empty")
	}
	if quantity < 0 {
		return common.InvalidArgument("quantity cannot be negative")
	}

	i := m.indexOf(name)
	if i < 0 {
		return common.NotFound("item not found: %s", name)
	}

	existing := m.items[i]
	updated := existing
	if quantity > 0 {
		updated = updated.WithQuantity(quantity)
	}
	if strings.TrimSpace(category) != "" {
		updated = updated.WithCategory(category)
	}
	if updated == existing {
		return nil
	}

	return m.replaceAt(ctx, i, updated)
}

// RemoveItem deletes the named item entirely.
func (m *Manager) RemoveItem(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	i := m.indexOf(name)
	if i < 0 {
		return common.NotFound("item not found: %s", name)
	}
	return m.deleteAt(ctx, i)
}

func (m *Manager) replaceAt(ctx context.Context, i int, item model.Item) error {
	next := slices.Clone(m.items)
	next[i] = item
	if err := m.persist(ctx, next); err != nil {
		return err
	}
	m.items = next
	m.index.AddItemToCategory(item.Name, item.Category)
	return nil
}

func (m *Manager) deleteAt(ctx context.Context, i int) error {
	name := m.items[i].Name
	next := slices.Delete(slices.Clone(m.items), i, i+1)
	if err := m.persist(ctx, next); err != nil {
		return err
	}
	m.items = next
	m.index.RemoveItem(name)
	return nil
}

// persist writes next to the bound file before any in-memory change is
// committed, so a failed write leaves the manager unchanged.
func (m *Manager) persist(ctx context.Context, next []model.Item) error {
	if !m.autoSave || m.path == "" {
		return nil
	}
	if err := m.codec.Save(ctx, next, m.path); err != nil {
		return fmt.Errorf("failed to save grocery list: %w", err)
	}
	return nil
}

func (m *Manager) rebuildIndex() {
	m.index.Reset()
	for _, item := range m.items {
		m.index.AddItemToCategory(item.Name, item.Category)
	}
}

func (m *Manager) indexOf(name string) int {
	return slices.IndexFunc(m.items, func(item model.Item) bool { return item.Name == name })
}

// normalize merges exact-name duplicates and drops non-positive quantities.
func normalize(loaded []model.Item) ([]model.Item, error) {
	items := make([]model.Item, 0, len(loaded))
	seen := make(map[string]int, len(loaded))

	for _, raw := range loaded {
		item := model.NewItem(raw.Name, raw.Quantity, raw.Category)
		if i, ok := seen[item.Name]; ok {
			sum, fits := model.AddQuantities(items[i].Quantity, item.Quantity)
			if !fits {
				return nil, common.FormatError("quantity overflow for %q", item.Name)
			}
			items[i].Quantity = sum
			continue
		}
		seen[item.Name] = len(items)
		items = append(items, item)
	}

	return slices.DeleteFunc(items, func(item model.Item) bool {
		if item.Quantity <= 0 {
			slog.Debug("dropping item without positive quantity", "item", item.Name, "quantity", item.Quantity)
			return true
		}
		return false
	}), nil
}
