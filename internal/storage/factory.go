package storage

import (
	"strings"

	"github.com/Veraticus/grocery-list/internal/common"
	"github.com/Veraticus/grocery-list/internal/service"
)

// Supported storage formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// SupportedFormats lists the names NewCodec accepts.
func SupportedFormats() []string {
	return []string{FormatJSON, FormatCSV}
}

// NewCodec returns a fresh codec for the named format, ignoring case.
func NewCodec(format string) (service.Codec, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		return NewJSONCodec(), nil
	case FormatCSV:
		return NewCSVCodec(), nil
	default:
		return nil, common.InvalidArgument("unsupported format %q: use %s", format, strings.Join(SupportedFormats(), " or "))
	}
}
