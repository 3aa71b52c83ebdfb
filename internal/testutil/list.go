// Package testutil provides test helpers that set up grocery lists backed by
// real files in a per-test temporary directory.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/grocery-list/internal/grocery"
	"github.com/Veraticus/grocery-list/internal/model"
	"github.com/Veraticus/grocery-list/internal/storage"
)

// TestList is a grocery list persisted in a temporary file.
type TestList struct {
	Manager *grocery.Manager
	t       *testing.T
	Path    string
	Format  string
}

// SetupTestList writes items to a fresh file in the given format and returns
// a manager loaded from it. Cleanup is handled by t.TempDir.
//
// Example:
//
//	list := testutil.SetupTestList(t, "json", testutil.FixtureBasic.Items()...)
func SetupTestList(t *testing.T, format string, items ...model.Item) *TestList {
	t.Helper()
	return SetupTestListWithOptions(t, TestListOptions{Format: format, Items: items})
}

// TestListOptions provides configuration options for test list setup.
type TestListOptions struct {
	Format   string
	FileName string
	// Raw is written verbatim instead of encoding Items.
	Raw   []byte
	Items []model.Item
	// ManualSave disables auto-save on the returned manager.
	ManualSave bool
}

// SetupTestListWithOptions creates a test list with custom options.
func SetupTestListWithOptions(t *testing.T, opts TestListOptions) *TestList {
	t.Helper()

	format := opts.Format
	if format == "" {
		format = storage.FormatJSON
	}
	codec, err := storage.NewCodec(format)
	if err != nil {
		t.Fatalf("failed to create codec: %v", err)
	}

	name := opts.FileName
	if name == "" {
		name = "groceries." + format
	}
	path := filepath.Join(t.TempDir(), name)

	ctx := context.Background()
	switch {
	case opts.Raw != nil:
		if err := os.WriteFile(path, opts.Raw, 0600); err != nil {
			t.Fatalf("failed to write test list: %v", err)
		}
	case len(opts.Items) > 0:
		if err := codec.Save(ctx, opts.Items, path); err != nil {
			t.Fatalf("failed to seed test list: %v", err)
		}
	}

	config := grocery.DefaultConfig()
	config.AutoSave = !opts.ManualSave
	manager := grocery.NewWithConfig(codec, config)
	if err := manager.Load(ctx, path); err != nil {
		t.Fatalf("failed to load test list: %v", err)
	}

	return &TestList{
		Manager: manager,
		Path:    path,
		Format:  format,
		t:       t,
	}
}

// Reload returns a new manager read back from the list's file.
func (l *TestList) Reload() *grocery.Manager {
	l.t.Helper()

	codec, err := storage.NewCodec(l.Format)
	if err != nil {
		l.t.Fatalf("failed to create codec: %v", err)
	}
	manager := grocery.New(codec)
	if err := manager.Load(context.Background(), l.Path); err != nil {
		l.t.Fatalf("failed to reload test list: %v", err)
	}
	return manager
}

// Contents returns the raw file contents, or "" when nothing was written.
func (l *TestList) Contents() string {
	l.t.Helper()

	data, err := os.ReadFile(l.Path)
	if os.IsNotExist(err) {
		return ""
	}
	if err != nil {
		l.t.Fatalf("failed to read test list: %v", err)
	}
	return string(data)
}
