package tools

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junkd0g/kuposhan/internal/dataset"
)

func call(args map[string]interface{}) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return tc.Text
}

func TestRegister(t *testing.T) {
	s := server.NewMCPServer("kuposhan", "test")
	assert.NotPanics(t, func() { Register(s) })
}

func TestRenderDashboard(t *testing.T) {
	out := filepath.Join(t.TempDir(), "dash.html")

	res, err := renderDashboardHandler(context.Background(), call(map[string]interface{}{
		"output_path": out,
		"metric":      "wasting",
		"theme":       "dark",
		"widgets":     "summary_cards, age_breakdown",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError, text(t, res))
	assert.Contains(t, text(t, res), "Indicator: Wasting")

	page, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(page), `<option value="wasting" selected>`)
	assert.NotContains(t, string(page), `id="factor-radar"`)
}

func TestRenderDashboard_Errors(t *testing.T) {
	ctx := context.Background()
	out := filepath.Join(t.TempDir(), "dash.html")

	for name, args := range map[string]map[string]interface{}{
		"missing output": {},
		"bad metric":     {"output_path": out, "metric": "obesity"},
		"bad theme":      {"output_path": out, "theme": "sepia"},
		"bad widget":     {"output_path": out, "widgets": "pie"},
	} {
		t.Run(name, func(t *testing.T) {
			res, err := renderDashboardHandler(ctx, call(args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
		})
	}
}

func TestAgeBreakdown(t *testing.T) {
	res, err := ageBreakdownHandler(context.Background(), call(map[string]interface{}{"metric": "Underweight"}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	body := text(t, res)
	assert.Contains(t, body, "Underweight by Age Group")
	assert.Contains(t, body, "  - 0-6 months: 18.3%")
	assert.Contains(t, body, "peaks at 24-36 months (38.2%)")

	res, err = ageBreakdownHandler(context.Background(), call(map[string]interface{}{"metric": "obesity"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestFactorMap(t *testing.T) {
	res, err := factorMapHandler(context.Background(), call(map[string]interface{}{}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Contains(t, text(t, res), "<svg")

	out := filepath.Join(t.TempDir(), "factors.png")
	res, err = factorMapHandler(context.Background(), call(map[string]interface{}{"output_path": out}))
	require.NoError(t, err)
	require.False(t, res.IsError, text(t, res))
	assert.FileExists(t, out)
}

func TestDatasetSummary(t *testing.T) {
	res, err := datasetSummaryHandler(context.Background(), call(nil))
	require.NoError(t, err)

	var snap dataset.Snapshot
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &snap))
	assert.Len(t, snap.Factors, 8)
	assert.Equal(t, 35.5, snap.National[0].Value)
}
