package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/grocery-list/internal/common"
	"github.com/Veraticus/grocery-list/internal/model"
)

// JSONCodec persists a grocery list as a JSON array.
//
// Lists whose items all sit in the default category are written as line
// entries ("name: quantity"). As soon as one item has a category the list is
// written as an array of objects so categories survive a round trip. On load
// both shapes, arrays mixing them, and the legacy {"name": quantity} object
// are accepted. Entries whose names differ only by case are consolidated,
// keeping the first seen spelling and category.
type JSONCodec struct {
	indent     string
	escapeHTML bool
}

// jsonEntry is the category-aware object form of an item. Field order is the
// key order on disk.
type jsonEntry struct {
	Name     string `json:"name"`
	Quantity *int   `json:"quantity"`
	Category string `json:"category"`
}

// NewJSONCodec creates a JSON codec with two-space indentation.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{indent: "  "}
}

// Name returns the format name.
func (c *JSONCodec) Name() string {
	return FormatJSON
}

// Load reads the list stored at path.
func (c *JSONCodec) Load(ctx context.Context, path string) ([]model.Item, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(path, "path"); err != nil {
		return nil, err
	}

	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []model.Item{}, nil
	}

	items, err := c.decodeArray(data)
	if err != nil {
		legacy, legacyErr := c.decodeLegacyMap(data)
		if legacyErr != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		slog.Debug("loaded legacy JSON object list", "path", path, "count", len(legacy))
		items = legacy
	}

	items, err = consolidate(items, strings.ToLower)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	slog.Debug("loaded grocery list", "path", path, "format", FormatJSON, "count", len(items))
	return items, nil
}

// decodeArray parses an array whose elements are line entries or objects.
func (c *JSONCodec) decodeArray(data []byte) ([]model.Item, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, common.WrapFormat(err, "expected a JSON array")
	}

	items := make([]model.Item, 0, len(raw))
	for i, element := range raw {
		item, err := c.decodeElement(element)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (c *JSONCodec) decodeElement(element json.RawMessage) (model.Item, error) {
	trimmed := bytes.TrimSpace(element)
	if len(trimmed) == 0 {
		return model.Item{}, common.FormatError("empty entry")
	}

	switch trimmed[0] {
	case '"':
		var line string
		if err := json.Unmarshal(trimmed, &line); err != nil {
			return model.Item{}, common.WrapFormat(err, "invalid string entry")
		}
		return ParseLine(line)
	case '{':
		var entry jsonEntry
		if err := json.Unmarshal(trimmed, &entry); err != nil {
			return model.Item{}, common.WrapFormat(err, "invalid object entry %s", string(trimmed))
		}
		if strings.TrimSpace(entry.Name) == "" {
			return model.Item{}, common.FormatError("object entry %s has no name", string(trimmed))
		}
		if entry.Quantity == nil {
			return model.Item{}, common.FormatError("object entry %s has no quantity", string(trimmed))
		}
		return model.NewItem(entry.Name, *entry.Quantity, entry.Category), nil
	default:
		return model.Item{}, common.FormatError("unsupported entry %s", string(trimmed))
	}
}

// decodeLegacyMap parses the legacy {"name": quantity} shape, keeping file order.
func (c *JSONCodec) decodeLegacyMap(data []byte) ([]model.Item, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, common.WrapFormat(err, "invalid JSON")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, common.FormatError("expected a JSON object")
	}

	var items []model.Item
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, common.WrapFormat(err, "invalid JSON object key")
		}
		name, _ := keyTok.(string)
		if strings.TrimSpace(name) == "" {
			return nil, common.FormatError("legacy entry has no name")
		}

		var quantity int
		if err := dec.Decode(&quantity); err != nil {
			return nil, common.WrapFormat(err, "invalid quantity for %q", name)
		}
		items = append(items, model.NewItem(name, quantity, ""))
	}

	if _, err := dec.Token(); err != nil {
		return nil, common.WrapFormat(err, "unterminated JSON object")
	}
	return items, nil
}

// Save writes items to path.
func (c *JSONCodec) Save(ctx context.Context, items []model.Item, path string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(path, "path"); err != nil {
		return err
	}
	if err := validateItems(items); err != nil {
		return err
	}

	var payload any
	if hasCategories(items) {
		entries := make([]jsonEntry, 0, len(items))
		for _, item := range items {
			quantity := item.Quantity
			entries = append(entries, jsonEntry{
				Name:     item.Name,
				Quantity: &quantity,
				Category: model.NormalizeCategory(item.Category),
			})
		}
		payload = entries
	} else {
		lines := make([]string, 0, len(items))
		for _, item := range items {
			lines = append(lines, FormatLine(item))
		}
		payload = lines
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(c.escapeHTML)
	enc.SetIndent("", c.indent)
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode grocery list: %w", err)
	}

	if err := writeFile(path, buf.Bytes()); err != nil {
		return err
	}

	slog.Debug("saved grocery list", "path", path, "format", FormatJSON, "count", len(items))
	return nil
}

// hasCategories reports whether any item sits outside the default category.
func hasCategories(items []model.Item) bool {
	for _, item := range items {
		if !model.IsDefaultCategory(item.Category) {
			return true
		}
	}
	return false
}

// consolidate merges items whose folded names are equal, summing quantities
// and keeping the first occurrence's name, category and position.
// Sums that do not fit in an int are a format error.
func consolidate(items []model.Item, fold func(string) string) ([]model.Item, error) {
	out := make([]model.Item, 0, len(items))
	seen := make(map[string]int, len(items))

	for _, item := range items {
		key := fold(item.Name)
		if i, ok := seen[key]; ok {
			sum, fits := model.AddQuantities(out[i].Quantity, item.Quantity)
			if !fits {
				return nil, common.FormatError("quantity overflow for %q", out[i].Name)
			}
			out[i].Quantity = sum
			continue
		}
		seen[key] = len(out)
		out = append(out, item)
	}
	return out, nil
}
