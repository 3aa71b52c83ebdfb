package main

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/Veraticus/grocery-list/internal/common"
	"github.com/Veraticus/grocery-list/internal/config"
	"github.com/Veraticus/grocery-list/internal/grocery"
	"github.com/Veraticus/grocery-list/internal/storage"
)

// openList loads the configured grocery list. A list that cannot be read is
// reported and replaced by an empty one bound to the same file, so the next
// save overwrites it.
func openList(ctx context.Context) (*grocery.Manager, *config.ListSettings, error) {
	settings, err := config.LoadListSettings()
	if err != nil {
		return nil, nil, err
	}
	if err := settings.RequireSource(); err != nil {
		return nil, nil, err
	}

	codec, err := storage.NewCodec(settings.Format)
	if err != nil {
		return nil, nil, err
	}

	manager := grocery.New(codec)
	if err := manager.Load(ctx, settings.Source); err != nil {
		slog.Warn("could not load grocery list, starting empty",
			"path", settings.Source,
			"format", settings.Format,
			"error", err)
		manager.Bind(settings.Source)
	}

	return manager, settings, nil
}

// parseQuantity parses a non-zero integer quantity argument.
func parseQuantity(arg string) (int, error) {
	quantity, err := strconv.Atoi(arg)
	if err != nil {
		return 0, common.InvalidArgument("invalid quantity %q: must be an integer", arg)
	}
	if quantity == 0 {
		return 0, common.InvalidArgument("quantity must be non-zero")
	}
	return quantity, nil
}
