package grocery

import (
	"context"
	"errors"
	"slices"

	"github.com/Veraticus/grocery-list/internal/common"
	"github.com/Veraticus/grocery-list/internal/model"
)

var errDiskFull = errors.New("disk full")

// mockCodec keeps saved lists in memory and can be told to fail.
type mockCodec struct {
	files   map[string][]model.Item
	loadErr error
	saveErr error
	saves   int
}

func newMockCodec() *mockCodec {
	return &mockCodec{files: make(map[string][]model.Item)}
}

func (c *mockCodec) Name() string {
	return "mock"
}

func (c *mockCodec) Load(_ context.Context, path string) ([]model.Item, error) {
	if c.loadErr != nil {
		return nil, c.loadErr
	}
	return slices.Clone(c.files[path]), nil
}

func (c *mockCodec) Save(_ context.Context, items []model.Item, path string) error {
	if c.saveErr != nil {
		return common.WrapIO(c.saveErr, "failed to write %s", path)
	}
	c.saves++
	c.files[path] = slices.Clone(items)
	return nil
}
