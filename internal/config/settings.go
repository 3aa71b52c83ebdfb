package config

import (
	"strings"

	"github.com/Veraticus/grocery-list/internal/common"
	"github.com/Veraticus/grocery-list/internal/storage"
	"github.com/spf13/viper"
)

// Viper keys.
const (
	KeySource        = "list.source"
	KeyFormat        = "list.format"
	KeyCategory      = "list.category"
	KeyOutput        = "list.output"
	KeyLogLevel      = "logging.level"
	KeyLogFormat     = "logging.format"
	KeyWebReadHeader = "web.read_header_timeout"
)

// ListSettings is the resolved configuration of the list commands.
type ListSettings struct {
	Source   string
	Format   string
	Category string
}

// LoadListSettings reads list settings from viper (flags, GROCERY_ env vars
// and the config file, in that order of precedence).
func LoadListSettings() (*ListSettings, error) {
	format := strings.ToLower(strings.TrimSpace(viper.GetString(KeyFormat)))
	if format == "" {
		format = storage.FormatJSON
	}
	if _, err := storage.NewCodec(format); err != nil {
		return nil, err
	}

	return &ListSettings{
		Source:   ResolveSource(viper.GetString(KeySource), format),
		Format:   format,
		Category: strings.TrimSpace(viper.GetString(KeyCategory)),
	}, nil
}

// RequireSource fails when no list file has been configured.
func (s *ListSettings) RequireSource() error {
	if s.Source == "" {
		return common.InvalidArgument("missing source: pass --source or set %s", KeySource)
	}
	return nil
}
