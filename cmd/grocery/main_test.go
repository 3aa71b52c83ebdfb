package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/grocery-list/internal/common"
	"github.com/Veraticus/grocery-list/internal/testutil"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the CLI with a fresh viper instance and returns stdout
// and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "grocery version dev\n", stdout)
}

func TestAddCommand(t *testing.T) {
	list := testutil.SetupTestList(t, "json")

	stdout, _, err := executeCommand(t, "add", "Apple", "5", "-s", list.Path, "-c", "Fruits")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Added 5 Apple to category 'Fruits'")

	_, _, err = executeCommand(t, "add", "Apple", "3", "-s", list.Path)
	require.NoError(t, err)

	reloaded := list.Reload()
	assert.Equal(t, 8, reloaded.ItemQuantity("Apple"))
	assert.Equal(t, "Fruits", reloaded.ItemCategory("Apple"))
}

func TestAddCommand_AppendsJSONSuffix(t *testing.T) {
	base := filepath.Join(t.TempDir(), "groceries")

	_, _, err := executeCommand(t, "add", "Milk", "2", "--source", base)
	require.NoError(t, err)

	data, err := os.ReadFile(base + ".json")
	require.NoError(t, err)
	assert.Equal(t, "[\n  \"Milk: 2\"\n]\n", string(data))
}

func TestAddCommand_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "groceries.csv")

	_, _, err := executeCommand(t, "add", "Milk", "2", "-s", path, "-f", "csv")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "item,quantity,category\nMilk,2,default\n", string(data))
}

func TestAddCommand_NegativeAfterDoubleDash(t *testing.T) {
	list := testutil.SetupTestList(t, "json", testutil.FixtureBasic.Items()...)

	_, _, err := executeCommand(t, "add", "-s", list.Path, "--", "Apple", "-2")
	require.NoError(t, err)
	assert.Equal(t, 3, list.Reload().ItemQuantity("Apple"))
}

func TestAddCommand_Errors(t *testing.T) {
	list := testutil.SetupTestList(t, "json")

	tests := []struct {
		wantErr error
		name    string
		args    []string
	}{
		{name: "zero quantity", args: []string{"add", "Apple", "0", "-s", list.Path}, wantErr: common.ErrInvalidArgument},
		{name: "not a number", args: []string{"add", "Apple", "many", "-s", list.Path}, wantErr: common.ErrInvalidArgument},
		{name: "missing source", args: []string{"add", "Apple", "1"}, wantErr: common.ErrInvalidArgument},
		{name: "bad format", args: []string{"add", "Apple", "1", "-s", list.Path, "-f", "xml"}, wantErr: common.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, _, err := executeCommand(t, "add", "Apple")
	assert.Error(t, err)
}

func TestAddCommand_RecoversFromUnreadableList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "groceries.csv")
	require.NoError(t, os.WriteFile(path, []byte("product,amount\nMilk,2\n"), 0600))

	stdout, stderr, err := executeCommand(t, "add", "Eggs", "12", "-s", path, "-f", "csv")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Added 12 Eggs")
	assert.Contains(t, stderr, "could not load grocery list")
	assert.Contains(t, stderr, "unrecognized header")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "item,quantity,category\nEggs,12,default\n", string(data))
}

func TestRemoveCommand(t *testing.T) {
	tests := []struct {
		wantErr      error
		name         string
		wantOut      string
		args         []string
		wantQuantity int
	}{
		{name: "whole item", args: []string{"remove", "Apple"}, wantOut: "Removed Apple", wantQuantity: 0},
		{name: "partial", args: []string{"remove", "Apple", "2"}, wantOut: "Removed 2 Apple", wantQuantity: 3},
		{name: "exact remainder", args: []string{"remove", "Apple", "5"}, wantOut: "Removed Apple", wantQuantity: 0},
		{name: "too many", args: []string{"remove", "Apple", "6"}, wantErr: common.ErrInvalidArgument, wantQuantity: 5},
		{name: "missing", args: []string{"remove", "Ghost"}, wantErr: common.ErrNotFound, wantQuantity: 5},
		{name: "matching category", args: []string{"remove", "Apple", "-c", "Fruits"}, wantOut: "Removed Apple", wantQuantity: 0},
		{name: "wrong category", args: []string{"remove", "Apple", "-c", "Snacks"}, wantErr: common.ErrInvalidArgument, wantQuantity: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := testutil.SetupTestList(t, "json", testutil.FixtureBasic.Items()...)

			stdout, _, err := executeCommand(t, append(tt.args, "-s", list.Path)...)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Contains(t, stdout, tt.wantOut)
			}
			assert.Equal(t, tt.wantQuantity, list.Reload().ItemQuantity("Apple"))
		})
	}
}

func TestListCommand(t *testing.T) {
	list := testutil.SetupTestList(t, "csv", testutil.FixtureBasic.Items()...)

	stdout, _, err := executeCommand(t, "list", "-s", list.Path, "-f", "csv")
	require.NoError(t, err)
	for _, want := range []string{"# default:", "Milk: 2", "# Fruits:", "Apple: 5", "# Snacks:", "Chips: 3"} {
		assert.Contains(t, stdout, want)
	}
	assert.Less(t, strings.Index(stdout, "# Fruits:"), strings.Index(stdout, "# Snacks:"))

	stdout, _, err = executeCommand(t, "list", "-s", list.Path, "-f", "csv", "-c", "Fruits")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Apple: 5")
	assert.NotContains(t, stdout, "Milk")

	stdout, _, err = executeCommand(t, "list", "-s", list.Path, "-f", "csv", "-c", "Frozen")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No items in category: Frozen")
}

func TestListCommand_Empty(t *testing.T) {
	list := testutil.SetupTestList(t, "json")

	stdout, _, err := executeCommand(t, "list", "-s", list.Path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "The grocery list is empty.")
}

func TestListCommand_StructuredOutput(t *testing.T) {
	list := testutil.SetupTestList(t, "json", testutil.FixtureBasic.Items()...)

	stdout, _, err := executeCommand(t, "list", "-s", list.Path, "-o", "json", "-c", "Snacks")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Chips","quantity":3,"category":"Snacks"}]`, stdout)

	stdout, _, err = executeCommand(t, "list", "-s", list.Path, "--output", "yaml", "-c", "Snacks")
	require.NoError(t, err)
	assert.YAMLEq(t, "- name: Chips\n  quantity: 3\n  category: Snacks\n", stdout)

	_, _, err = executeCommand(t, "list", "-s", list.Path, "-o", "xml")
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestCategoryCommand(t *testing.T) {
	list := testutil.SetupTestList(t, "json")

	stdout, _, err := executeCommand(t, "-s", list.Path, "category", "Fruits", "add", "Apple", "3")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Added 3 Apple to category 'Fruits'")
	assert.Equal(t, "Fruits", list.Reload().ItemCategory("Apple"))

	stdout, _, err = executeCommand(t, "-s", list.Path, "category", "Fruits", "list", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Apple","quantity":3,"category":"Fruits"}]`, stdout)

	_, _, err = executeCommand(t, "-s", list.Path, "category", "Fruits", "shop")
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	_, _, err = executeCommand(t, "-s", list.Path, "category", "Fruits", "add", "Apple")
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestInfoCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "info")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Today's Date:")
	assert.Contains(t, stdout, "Operating System:")
	assert.Contains(t, stdout, "Go Version:")
}

func TestWebCommand_InvalidPort(t *testing.T) {
	for _, port := range []string{"0", "65536", "http"} {
		t.Run(port, func(t *testing.T) {
			_, _, err := executeCommand(t, "web", port, "-s", filepath.Join(t.TempDir(), "list.json"))
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidArgument)
			assert.Contains(t, err.Error(), "between 1 and 65535")
		})
	}
}

func TestServingMessage(t *testing.T) {
	list := testutil.SetupTestList(t, "csv", testutil.FixtureBasic.Items()...)

	msg := servingMessage(list.Manager, 8080)
	assert.Equal(t, "Serving "+list.Path+" (csv, 3 items) on http://localhost:8080", msg)
}

func TestConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	listPath := filepath.Join(dir, "from-config.csv")
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "list:\n  source: " + listPath + "\n  format: csv\n  category: Pantry\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0600))

	_, _, err := executeCommand(t, "--config", cfgPath, "add", "Rice", "1")
	require.NoError(t, err)
	data, err := os.ReadFile(listPath)
	require.NoError(t, err)
	assert.Equal(t, "item,quantity,category\nRice,1,Pantry\n", string(data))

	envPath := filepath.Join(dir, "from-env.csv")
	t.Setenv("GROCERY_LIST_SOURCE", envPath)
	_, _, err = executeCommand(t, "--config", cfgPath, "add", "Beans", "2")
	require.NoError(t, err)
	data, err = os.ReadFile(envPath)
	require.NoError(t, err)
	assert.Equal(t, "item,quantity,category\nBeans,2,Pantry\n", string(data))
}

func TestLoggingFlags(t *testing.T) {
	_, _, err := executeCommand(t, "--log-level", "loud", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")

	_, _, err = executeCommand(t, "--log-format", "xml", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log format")
}
