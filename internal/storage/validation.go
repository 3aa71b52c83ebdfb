// Package storage provides the file codecs that persist grocery lists.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/grocery-list/internal/common"
	"github.com/Veraticus/grocery-list/internal/model"
)

// Validation errors.
var (
	ErrNilContext  = errors.New("context cannot be nil")
	ErrEmptyString = errors.New("string parameter cannot be empty")
	ErrInvalidItem = errors.New("invalid item")
)

func invalid(err error, detail string) error {
	return &common.Error{Kind: common.KindInvalidArgument, Detail: detail, Err: err}
}

// validateContext ensures the context is usable.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return invalid(ErrNilContext, "context")
	}
	return ctx.Err()
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return invalid(ErrEmptyString, paramName)
	}
	return nil
}

// validateItems checks every item is persistable.
func validateItems(items []model.Item) error {
	for i, item := range items {
		if err := validateItem(item); err != nil {
			return fmt.Errorf("item at index %d: %w", i, err)
		}
	}
	return nil
}

// validateItem rejects blank names and non-positive quantities.
func validateItem(item model.Item) error {
	if strings.TrimSpace(item.Name) == "" {
		return invalid(ErrInvalidItem, "missing name")
	}
	if item.Quantity <= 0 {
		return invalid(ErrInvalidItem, fmt.Sprintf("%q has non-positive quantity %d", item.Name, item.Quantity))
	}
	return nil
}
