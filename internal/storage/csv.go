package storage

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Veraticus/grocery-list/internal/common"
	"github.com/Veraticus/grocery-list/internal/model"
)

// CSV column names.
const (
	csvColumnItem     = "item"
	csvColumnQuantity = "quantity"
	csvColumnCategory = "category"
	csvLegacyItem     = "name"
)

// CSVCodec persists a grocery list as comma-separated rows under an
// item,quantity,category header. Loading also accepts the two-column header,
// the older name,... headers and header-less files whose rows start with a
// name and an integer quantity. A row with a non-integer quantity fails the
// whole load.
type CSVCodec struct {
	comma rune
}

// NewCSVCodec creates a comma-separated codec.
func NewCSVCodec() *CSVCodec {
	return &CSVCodec{comma: ','}
}

// Name returns the format name.
func (c *CSVCodec) Name() string {
	return FormatCSV
}

// Load reads the list stored at path.
func (c *CSVCodec) Load(ctx context.Context, path string) ([]model.Item, error) {
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

	items, err := c.decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	slog.Debug("loaded grocery list", "path", path, "format", FormatCSV, "count", len(items))
	return items, nil
}

func (c *CSVCodec) decode(data []byte) ([]model.Item, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = c.comma
	r.FieldsPerRecord = -1

	items := []model.Item{}
	first := true
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, common.WrapFormat(err, "malformed CSV")
		}
		if isBlankRecord(record) {
			continue
		}

		line, _ := r.FieldPos(0)
		if first {
			first = false
			if isHeader(record) {
				continue
			}
			if !isLegacyRow(record) {
				return nil, common.FormatError("unrecognized header %q on line %d", strings.Join(record, string(c.comma)), line)
			}
			slog.Debug("reading header-less CSV list")
		}

		item, err := parseRecord(record, line)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func parseRecord(record []string, line int) (model.Item, error) {
	if len(record) < 2 {
		return model.Item{}, common.FormatError("line %d: expected at least 2 fields, got %d", line, len(record))
	}

	name := strings.TrimSpace(record[0])
	if name == "" {
		return model.Item{}, common.FormatError("line %d: missing item name", line)
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(record[1]))
	if err != nil {
		return model.Item{}, common.FormatError("line %d: invalid quantity %q for %q", line, record[1], name)
	}

	category := ""
	if len(record) > 2 {
		category = record[2]
	}

	return model.NewItem(name, quantity, category), nil
}

func isBlankRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

// isHeader accepts item,quantity[,category] and name,quantity[,category].
func isHeader(record []string) bool {
	if len(record) != 2 && len(record) != 3 {
		return false
	}

	fields := make([]string, len(record))
	for i, field := range record {
		fields[i] = strings.ToLower(strings.TrimSpace(field))
	}

	if fields[0] != csvColumnItem && fields[0] != csvLegacyItem {
		return false
	}
	if fields[1] != csvColumnQuantity {
		return false
	}
	return len(fields) == 2 || fields[2] == csvColumnCategory
}

// isLegacyRow reports whether record looks like data from a header-less file.
func isLegacyRow(record []string) bool {
	if len(record) < 2 || strings.TrimSpace(record[0]) == "" {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSpace(record[1]))
	return err == nil
}

// Save writes items to path.
func (c *CSVCodec) Save(ctx context.Context, items []model.Item, path string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(path, "path"); err != nil {
		return err
	}
	if err := validateItems(items); err != nil {
		return err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = c.comma

	if err := w.Write([]string{csvColumnItem, csvColumnQuantity, csvColumnCategory}); err != nil {
		return fmt.Errorf("failed to encode header: %w", err)
	}
	for _, item := range items {
		row := []string{item.Name, strconv.Itoa(item.Quantity), model.NormalizeCategory(item.Category)}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to encode %q: %w", item.Name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to encode grocery list: %w", err)
	}

	if err := writeFile(path, buf.Bytes()); err != nil {
		return err
	}

	slog.Debug("saved grocery list", "path", path, "format", FormatCSV, "count", len(items))
	return nil
}
