package storage

import (
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// assertGoldenFile compares the bytes written to path against
// testdata/golden/<name>.golden. Run with -update to regenerate.
func assertGoldenFile(t *testing.T, name, path string) {
	t.Helper()

	data, err := os.ReadFile(path) //nolint:gosec // test temp file
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}
