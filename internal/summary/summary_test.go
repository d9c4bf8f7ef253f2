package summary

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junkd0g/kuposhan/internal/dataset"
	"github.com/junkd0g/kuposhan/internal/view"
)

func TestBar(t *testing.T) {
	bar := Bar("Kerala", 20, 40, 10, "#10b981")

	assert.True(t, strings.HasPrefix(bar, "Kerala "))
	assert.Equal(t, 5, strings.Count(bar, "█"))
	assert.Equal(t, 5, strings.Count(bar, "░"))
	assert.True(t, strings.HasSuffix(bar, " 20%"))
}

func TestBar_Clamps(t *testing.T) {
	assert.Equal(t, 10, strings.Count(Bar("x", 80, 40, 10, "#000000"), "█"))
	assert.Equal(t, 10, strings.Count(Bar("x", -5, 40, 10, "#000000"), "░"))
	assert.Equal(t, 10, strings.Count(Bar("x", 0, 0, 10, "#000000"), "░"))
}

func TestWrite(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	var sb strings.Builder
	require.NoError(t, Write(&sb, view.State{SelectedMetric: dataset.MetricWasting}))
	out := sb.String()

	assert.Contains(t, out, "India Malnutrition Dashboard")
	assert.Contains(t, out, "NFHS-5")
	assert.Contains(t, out, "Wasting by Age Group")
	assert.Contains(t, out, "6-12 months")
	assert.Contains(t, out, "21.4%")
	assert.Contains(t, out, "Key Insight: Highest wasting rates are observed in the ")
	assert.Contains(t, out, "Infections & Diseases")
	assert.Equal(t, 6+3, strings.Count(out, "%\n"), "one bar line per card and age group")
}
