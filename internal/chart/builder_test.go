package chart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonut(t *testing.T) {
	opt := Donut("Stunting Rate", []Slice{
		{Name: "0-6 months", Value: 15.2, Color: "#3b82f6"},
		{Name: "6-12 months", Value: 28.6, Color: "#8b5cf6"},
	})

	require.Len(t, opt.Series, 1)
	s := opt.Series[0]
	assert.Equal(t, TypePie, s.Type)
	assert.Equal(t, "Stunting Rate", s.Name)
	assert.Equal(t, []string{"40%", "70%"}, s.Radius)
	assert.Equal(t, "{b}: {c}%", s.Label.Formatter)
	assert.Equal(t, []float64{15.2, 28.6}, s.Values())
	assert.Equal(t, "#8b5cf6", s.Data[1].ItemStyle.Color)
	assert.Equal(t, "6-12 months", s.Data[1].Name)
}

func TestGroupedBar(t *testing.T) {
	opt := GroupedBar([]string{"A", "B"}, []SeriesData{
		{Name: "Stunting", Color: "#ef4444", Values: []float64{1, 2}},
		{Name: "Wasting", Color: "#f59e0b", Values: []float64{3, 4}},
	})

	assert.Equal(t, []string{"A", "B"}, opt.XAxis.Data)
	assert.Equal(t, "Percentage (%)", opt.YAxis.Name)
	assert.Equal(t, []string{"Stunting", "Wasting"}, opt.Legend.Data)
	require.Len(t, opt.Series, 2)
	assert.Equal(t, TypeBar, opt.Series[1].Type)
	assert.Equal(t, []float64{3, 4}, opt.Series[1].Values())
	assert.Equal(t, "#f59e0b", opt.Series[1].ItemStyle.Color)
}

func TestLinesAreSmooth(t *testing.T) {
	opt := Lines([]string{"x"}, []SeriesData{{Name: "S", Color: "#111111", Values: []float64{5}}})
	require.Len(t, opt.Series, 1)
	assert.True(t, opt.Series[0].Smooth)
	assert.Equal(t, 3, opt.Series[0].LineStyle.Width)
}

func TestHorizontalBarColorsAndDomain(t *testing.T) {
	opt := HorizontalBar("Impact", []string{"a", "b", "c"}, []float64{10, 20, 30}, []string{"#1", "#2"}, 100)

	assert.Equal(t, "value", opt.XAxis.Type)
	assert.Equal(t, 0.0, *opt.XAxis.Min)
	assert.Equal(t, 100.0, *opt.XAxis.Max)
	assert.Equal(t, "category", opt.YAxis.Type)

	data := opt.Series[0].Data
	require.Len(t, data, 3)
	assert.Equal(t, "#1", data[0].ItemStyle.Color)
	assert.Equal(t, "#2", data[1].ItemStyle.Color)
	assert.Equal(t, "#1", data[2].ItemStyle.Color)
}

func TestRadarChart(t *testing.T) {
	values := []float64{85, 72}
	opt := RadarChart("Impact", []string{"Nutrition", "Sanitation"}, values, 100, "#ef4444", 0.6)
	values[0] = 0

	require.NotNil(t, opt.Radar)
	assert.Equal(t, []Indicator{{Name: "Nutrition", Max: 100}, {Name: "Sanitation", Max: 100}}, opt.Radar.Indicator)
	assert.Equal(t, []float64{85, 72}, opt.Series[0].Data[0].Value)
	assert.Equal(t, 0.6, opt.Series[0].AreaStyle.Opacity)
}

func TestOptionMarshalsForECharts(t *testing.T) {
	opt := Donut("Wasting Rate", []Slice{{Name: "0-6 months", Value: 20.5, Color: "#f59e0b"}})
	b, err := json.Marshal(opt)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	series := decoded["series"].([]any)[0].(map[string]any)
	assert.Equal(t, "pie", series["type"])
	assert.NotContains(t, decoded, "xAxis")
	assert.NotContains(t, decoded, "radar")
}
