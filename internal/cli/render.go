package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/grocery-list/internal/common"
	"github.com/Veraticus/grocery-list/internal/grocery"
	"github.com/Veraticus/grocery-list/internal/model"
	"gopkg.in/yaml.v3"
)

// OutputFormat selects how list and info output is rendered.
type OutputFormat string

// Supported output formats.
const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// ParseOutputFormat validates an output format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return OutputText, nil
	case OutputText, OutputJSON, OutputYAML:
		return f, nil
	default:
		return "", common.InvalidArgument("unsupported output %q: use text, json or yaml", s)
	}
}

// ListSource is the read side of a grocery list.
type ListSource interface {
	Items() []model.Item
	Categories() []string
	ItemsInCategory(category string) []string
}

// ListEntry is the structured form of one item.
type ListEntry struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity"`
	Category string `json:"category" yaml:"category"`
}

// RenderList writes the list grouped by category. A non-empty category
// restricts output to that category.
func RenderList(w io.Writer, list ListSource, category string, format OutputFormat) error {
	if format == OutputJSON || format == OutputYAML {
		return encode(w, entries(list, category), format)
	}

	var b strings.Builder
	if category != "" {
		lines := list.ItemsInCategory(category)
		if len(lines) == 0 {
			return writeLine(w, FormatInfo(EmptyCategoryMessage(category)))
		}
		writeGroup(&b, category, lines)
	} else {
		categories := list.Categories()
		if len(categories) == 0 {
			return writeLine(w, FormatInfo(EmptyListMessage))
		}
		for i, c := range categories {
			if i > 0 {
				b.WriteString("\n")
			}
			writeGroup(&b, c, list.ItemsInCategory(c))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderInfo writes the environment report.
func RenderInfo(w io.Writer, info grocery.Info, format OutputFormat) error {
	if format == OutputJSON || format == OutputYAML {
		return encode(w, info, format)
	}

	rows := [][2]string{
		{"Today's Date:", info.Date},
		{"Operating System:", info.OperatingSystem},
		{"Go Version:", info.GoVersion},
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, LabelStyle.Render(row[0])+" "+row[1])
	}
	_, err := io.WriteString(w, RenderBox("Grocery list info", strings.Join(lines, "\n"))+"\n")
	return err
}

func entries(list ListSource, category string) []ListEntry {
	out := []ListEntry{}
	for _, item := range list.Items() {
		if category != "" && item.Category != model.NormalizeCategory(category) {
			continue
		}
		out = append(out, ListEntry{Name: item.Name, Quantity: item.Quantity, Category: item.Category})
	}
	return out
}

func writeGroup(b *strings.Builder, category string, lines []string) {
	b.WriteString(CategoryStyle.Render(CategoryHeader(category)))
	b.WriteString("\n")
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
}

func encode(w io.Writer, v any, format OutputFormat) error {
	if format == OutputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func writeLine(w io.Writer, line string) error {
	_, err := fmt.Fprintln(w, line)
	return err
}
