package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/junkd0g/kuposhan/internal/dataset"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	root := newRootCmd()
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(append([]string{"--config", t.TempDir()}, args...))
	err := root.Execute()
	return buf.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var ece *exitCodeError
	require.True(t, errors.As(err, &ece), "expected exitCodeError, got %v", err)
	return ece.ExitCode()
}

func TestRootHelp(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "child malnutrition indicators")
	for _, sub := range []string{"serve", "render", "export", "summary", "mcp", "version"} {
		assert.Contains(t, out, sub)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "kuposhan dev\n", out)
}

func TestMetricFlag(t *testing.T) {
	var f metricFlag
	assert.Equal(t, "stunting", f.String())
	assert.Equal(t, dataset.MetricStunting, f.State().SelectedMetric)

	require.NoError(t, f.Set("Wasting"))
	assert.Equal(t, "wasting", f.String())
	assert.Equal(t, dataset.MetricWasting, f.State().SelectedMetric)

	assert.ErrorIs(t, f.Set("obesity"), dataset.ErrUnknownMetric)
	assert.Equal(t, "metric", f.Type())
}

func TestRender(t *testing.T) {
	out := filepath.Join(t.TempDir(), "site", "index.html")

	stdout, err := execute(t, "render", "-o", out, "--metric", "underweight", "--theme", "dark")
	require.NoError(t, err)
	assert.Contains(t, stdout, out)

	page, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(page), `<option value="underweight" selected>`)
	assert.Contains(t, string(page), "#1a1a2e")
}

func TestRender_InvalidArgs(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "render", "-o", filepath.Join(dir, "a.html"), "--widgets", "pie")
	assert.Equal(t, ExitInvalidArgs, exitCode(t, err))

	_, err = execute(t, "render", "-o", filepath.Join(dir, "b.html"), "--theme", "sepia")
	assert.Equal(t, ExitInvalidArgs, exitCode(t, err))

	_, err = execute(t, "render", "--metric", "obesity")
	assert.ErrorContains(t, err, "unknown metric")
}

func TestRender_UsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "kuposhan.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("title: District Review\nwidgets: [summary_cards]\n"), 0o600))
	out := filepath.Join(dir, "index.html")

	_, err := execute(t, "--config", cfgPath, "render", "-o", out)
	require.NoError(t, err)

	page, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(page), "<h1>District Review</h1>")
	assert.NotContains(t, string(page), `id="metric-select"`)
}

func TestExportXLSX(t *testing.T) {
	out := filepath.Join(t.TempDir(), "data.xlsx")

	_, err := execute(t, "export", "--format", "xlsx", "-o", out)
	require.NoError(t, err)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), "States")
}

func TestExportPNG(t *testing.T) {
	for _, chart := range []string{"donut", "states", "age-trend"} {
		t.Run(chart, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), chart+".png")

			_, err := execute(t, "export", "--format", "png", "--chart", chart, "--metric", "wasting", "-o", out)
			require.NoError(t, err)

			data, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
		})
	}
}

func TestExport_UnknownChart(t *testing.T) {
	_, err := execute(t, "export", "--format", "png", "--chart", "pie", "-o", filepath.Join(t.TempDir(), "x.png"))
	assert.Equal(t, ExitInvalidArgs, exitCode(t, err))
}

func TestExport_UnknownFormat(t *testing.T) {
	_, err := execute(t, "export", "--format", "csv", "-o", filepath.Join(t.TempDir(), "x.csv"))
	assert.Equal(t, ExitInvalidArgs, exitCode(t, err))
}

func TestSummary(t *testing.T) {
	out, err := execute(t, "--no-color", "summary", "--metric", "wasting")
	require.NoError(t, err)

	assert.Contains(t, out, "Wasting by Age Group")
	assert.Contains(t, out, "6-12 months")
}

func TestServe_InvalidAddr(t *testing.T) {
	_, err := execute(t, "serve", "--addr", " ")
	assert.Equal(t, ExitInvalidArgs, exitCode(t, err))
}

func TestNewMCPServer(t *testing.T) {
	assert.NotNil(t, newMCPServer())
}

func TestExitError(t *testing.T) {
	assert.Equal(t, "kuposhan: render failed", exitError(ExitRenderFailure, "").Error())
	assert.Equal(t, "boom", exitError(ExitInvalidArgs, "boom").Error())
	assert.Equal(t, ExitRenderFailure, exitError(ExitRenderFailure, "").ExitCode())
}
