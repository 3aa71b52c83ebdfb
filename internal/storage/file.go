package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Veraticus/grocery-list/internal/common"
	"github.com/google/uuid"
)

// readFile returns the file contents, or nil when the file does not exist.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the user
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, common.WrapIO(err, "failed to read %s", path)
	}
	return data, nil
}

// writeFile replaces the file contents, creating the parent directory if
// needed. Data goes to a uniquely named sibling first and is renamed into
// place, so readers never observe a half-written list.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return common.WrapIO(err, "failed to create directory %s", dir)
		}
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.New().String()))
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return common.WrapIO(err, "failed to write %s", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return common.WrapIO(err, "failed to replace %s", path)
	}
	return nil
}
