package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordicdata/econsync/pkg/errors"
)

func TestProtected(t *testing.T) {
	assert.True(t, Protected("revenue"))
	assert.True(t, Protected("expenditure"))
	assert.True(t, Protected("top_exports"))
	assert.False(t, Protected("gdp"))
	assert.False(t, Protected(""))
}

func TestProtectedFieldsSorted(t *testing.T) {
	assert.Equal(t, []string{"expenditure", "revenue", "top_exports"}, ProtectedFields())
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "economics.json")

	ds := Dataset{
		"norway": {"gdp": 485.5, "revenue": 310.0},
		"sweden": {"gdp": 593.3, "top_exports": []any{"machinery", "vehicles"}},
	}
	require.NoError(t, ds.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ds, loaded)
}

func TestSaveFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "economics.json")

	ds := Dataset{"norway": {"gdp": 485.5}}
	require.NoError(t, ds.Save(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(raw)
	assert.True(t, strings.HasSuffix(content, "\n"), "file should end with a newline")
	assert.False(t, strings.HasSuffix(content, "\n\n"), "file should end with exactly one newline")
	assert.Contains(t, content, "  \"norway\"", "should use 2-space indentation")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	var ioErr *errors.IOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestLoadMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o644))

	_, err := Load(path)
	require.Error(t, err)

	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestCountriesSorted(t *testing.T) {
	ds := Dataset{"sweden": {}, "denmark": {}, "norway": {}}
	assert.Equal(t, []string{"denmark", "norway", "sweden"}, ds.Countries())
}

func TestCopyIsDeep(t *testing.T) {
	ds := Dataset{"norway": {"gdp": 100.0}}
	cp := ds.Copy()
	cp["norway"]["gdp"] = 200.0

	assert.Equal(t, 100.0, ds["norway"]["gdp"])
}

func TestValidate(t *testing.T) {
	ok := Dataset{
		"norway": {"gdp": 485.5, "currency": "NOK", "top_exports": []any{"oil"}},
	}
	assert.NoError(t, ok.Validate())

	bad := Dataset{
		"norway": {"gdp": map[string]any{"nested": true}},
	}
	err := bad.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
