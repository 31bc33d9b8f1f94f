package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordicdata/econsync/pkg/dataset"
	"github.com/nordicdata/econsync/pkg/logging"
	"github.com/nordicdata/econsync/pkg/source"
)

// fakeSource records the requested country IDs and returns a fixed result.
type fakeSource struct {
	result    source.Result
	requested []string
}

func (f *fakeSource) FetchAll(_ context.Context, countryIDs []string) (source.Result, error) {
	f.requested = countryIDs
	return f.result, nil
}

// newTestApp builds an App around a temp dataset file and a fake source.
func newTestApp(t *testing.T, ds dataset.Dataset, src source.Client) *App {
	t.Helper()

	path := filepath.Join(t.TempDir(), "economics.json")
	require.NoError(t, ds.Save(path))

	logger := logging.Nop
	return &App{
		version: "test",
		config:  &Config{DataFile: path},
		logger:  &logger,
		source:  src,
	}
}

func TestExecuteUpdateDryRunDoesNotWrite(t *testing.T) {
	ds := dataset.Dataset{"norway": {"gdp": 100.0}}
	src := &fakeSource{result: source.Result{
		"norway": {"gdp": {Value: 120.0, Year: 2023}},
	}}
	a := newTestApp(t, ds, src)

	before, err := os.ReadFile(a.config.DataFile)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, a.ExecuteUpdate(context.Background(), &out, &UpdateFlags{Apply: false}))

	after, err := os.ReadFile(a.config.DataFile)
	require.NoError(t, err)
	assert.Equal(t, before, after, "dry-run must not mutate the on-disk file")
	assert.Contains(t, out.String(), "Dry-run complete")
	assert.Contains(t, out.String(), "1 field(s) changed across 1 country/countries.")
}

func TestExecuteUpdateApplyWrites(t *testing.T) {
	ds := dataset.Dataset{"norway": {"gdp": 100.0, "revenue": 50.0}}
	src := &fakeSource{result: source.Result{
		"norway": {
			"gdp":     {Value: 120.0, Year: 2023},
			"revenue": {Value: 999.0, Year: 2023},
		},
	}}
	a := newTestApp(t, ds, src)

	var out bytes.Buffer
	require.NoError(t, a.ExecuteUpdate(context.Background(), &out, &UpdateFlags{Apply: true}))
	assert.Contains(t, out.String(), "✓ Written to")

	saved, err := dataset.Load(a.config.DataFile)
	require.NoError(t, err)
	assert.Equal(t, 120.0, saved["norway"]["gdp"])
	assert.Equal(t, 50.0, saved["norway"]["revenue"], "protected field must survive apply")
}

func TestExecuteUpdateNoChanges(t *testing.T) {
	ds := dataset.Dataset{"norway": {"gdp": 100.0}}
	src := &fakeSource{result: source.Result{
		"norway": {"gdp": {Value: 100.0, Year: 2023}},
	}}
	a := newTestApp(t, ds, src)

	before, err := os.ReadFile(a.config.DataFile)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, a.ExecuteUpdate(context.Background(), &out, &UpdateFlags{Apply: true}))

	after, err := os.ReadFile(a.config.DataFile)
	require.NoError(t, err)
	assert.Equal(t, before, after, "no-change apply must not rewrite the file")
	assert.Contains(t, out.String(), "No changes detected.")
}

func TestExecuteUpdateCountriesFlagLimitsScope(t *testing.T) {
	ds := dataset.Dataset{"norway": {}, "sweden": {}}
	src := &fakeSource{result: source.Result{}}
	a := newTestApp(t, ds, src)

	var out bytes.Buffer
	flags := &UpdateFlags{Countries: "norway, sweden"}
	require.NoError(t, a.ExecuteUpdate(context.Background(), &out, flags))

	assert.Equal(t, []string{"norway", "sweden"}, src.requested)
}

func TestExecuteUpdateAppliesNewCountry(t *testing.T) {
	ds := dataset.Dataset{}
	src := &fakeSource{result: source.Result{
		"iceland": {"gdp": {Value: 28.0, Year: 2023}},
	}}
	a := newTestApp(t, ds, src)

	var out bytes.Buffer
	require.NoError(t, a.ExecuteUpdate(context.Background(), &out, &UpdateFlags{Apply: true}))

	saved, err := dataset.Load(a.config.DataFile)
	require.NoError(t, err)
	require.Contains(t, saved, "iceland")
	assert.Equal(t, 28.0, saved["iceland"]["gdp"])
}

func TestSplitCountries(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "  ", nil},
		{"single", "norway", []string{"norway"}},
		{"trimmed", " norway , sweden ", []string{"norway", "sweden"}},
		{"drops empties", "norway,,sweden,", []string{"norway", "sweden"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitCountries(tt.in))
		})
	}
}
