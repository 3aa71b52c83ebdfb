// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/grocery-list/internal/model"
)

// Codec defines the contract for our persistence layer. Every codec accepts
// and returns complete items, category included.
type Codec interface {
	// Name returns the format name the codec was selected by.
	Name() string

	// Load reads the items stored at path. A missing or empty file yields
	// an empty list and no error.
	Load(ctx context.Context, path string) ([]model.Item, error)

	// Save writes items to path, creating the file if needed.
	Save(ctx context.Context, items []model.Item, path string) error
}
