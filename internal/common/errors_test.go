package common

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		err      error
		sentinel error
		name     string
		message  string
		kind     ErrorKind
	}{
		{
			name:     "invalid argument",
			err:      InvalidArgument("quantity must be non-zero"),
			sentinel: ErrInvalidArgument,
			kind:     KindInvalidArgument,
			message:  "quantity must be non-zero",
		},
		{
			name:     "not found",
			err:      NotFound("item not found: %s", "Ghost"),
			sentinel: ErrNotFound,
			kind:     KindNotFound,
			message:  "item not found: Ghost",
		},
		{
			name:     "format",
			err:      FormatError("invalid quantity in %q", "Milk: two"),
			sentinel: ErrFormat,
			kind:     KindFormat,
			message:  `invalid quantity in "Milk: two"`,
		},
		{
			name:     "io",
			err:      WrapIO(fs.ErrPermission, "failed to write list.json"),
			sentinel: ErrIO,
			kind:     KindIO,
			message:  "failed to write list.json: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.Equal(t, tt.kind, KindOf(tt.err))
			assert.Equal(t, tt.message, tt.err.Error())

			wrapped := fmt.Errorf("command failed: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
			assert.Equal(t, tt.kind, KindOf(wrapped))
		})
	}
}

func TestErrorIsDoesNotCrossKinds(t *testing.T) {
	err := NotFound("item not found: Ghost")
	assert.False(t, errors.Is(err, ErrInvalidArgument))
	assert.False(t, errors.Is(err, ErrFormat))
}

func TestWrapIOKeepsCause(t *testing.T) {
	err := WrapIO(fs.ErrNotExist, "failed to read")
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.ErrorIs(t, err, ErrIO)
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, KindUnknown, KindOf(nil))
	assert.Equal(t, "Unknown", KindUnknown.String())
	assert.Equal(t, "FormatError", KindFormat.String())
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = ParseLevel(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestSetupLoggerRejectsUnknownFormat(t *testing.T) {
	assert.Error(t, SetupLogger(slog.LevelInfo, "xml", nil))
}
