package diagram

import (
	"fmt"
	"io"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/junkd0g/kuposhan/internal/dataset"
	"github.com/junkd0g/kuposhan/internal/view"
)

// Static renditions of the dashboard charts, for places ECharts can't run
// (reports, chat attachments, MCP clients).

func hexColor(c string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(c, "#"))
}

// RenderDonutPNG draws the age-group donut for m.
func RenderDonutPNG(w io.Writer, m dataset.Metric) error {
	b := view.AgeBreakdown(m)

	values := make([]chart.Value, 0, len(b.Slices))
	for _, s := range b.Slices {
		values = append(values, chart.Value{
			Value: s.Value,
			Label: s.Label,
			Style: chart.Style{
				FillColor:   hexColor(s.Color),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
				FontSize:    9,
			},
		})
	}

	donut := chart.DonutChart{
		Title:  m.Title() + " by Age Group",
		Width:  640,
		Height: 640,
		Values: values,
	}

	if err := donut.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render donut: %w", err)
	}
	return nil
}

// RenderStatesPNG draws one bar per state for m.
func RenderStatesPNG(w io.Writer, m dataset.Metric) error {
	states := dataset.States()

	bars := make([]chart.Value, 0, len(states))
	for _, s := range states {
		bars = append(bars, chart.Value{
			Value: s.Value(m),
			Label: s.State,
			Style: chart.Style{
				FillColor:   hexColor(dataset.SeriesColor(m)),
				StrokeColor: hexColor(dataset.SeriesColor(m)),
			},
		})
	}

	bar := chart.BarChart{
		Title:      "State-wise " + m.Title() + " (%)",
		Background: chart.Style{Padding: chart.Box{Top: 48}},
		Width:      960,
		Height:     480,
		BarWidth:   64,
		Bars:       bars,
	}

	if err := bar.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render state chart: %w", err)
	}
	return nil
}

// RenderAgeTrendPNG draws one line per metric across the age groups.
func RenderAgeTrendPNG(w io.Writer) error {
	groups := dataset.AgeGroups()

	xs := make([]float64, len(groups))
	ticks := make([]chart.Tick, len(groups))
	for i, g := range groups {
		xs[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: g.Age}
	}

	series := make([]chart.Series, 0, 3)
	for _, m := range dataset.Metrics() {
		ys := make([]float64, len(groups))
		for i, g := range groups {
			ys[i] = g.Value(m)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    m.Title(),
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: hexColor(dataset.SeriesColor(m)),
				StrokeWidth: 3,
			},
		})
	}

	ch := chart.Chart{
		Title:      "Age-wise Malnutrition Prevalence",
		Width:      960,
		Height:     480,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Ticks: ticks},
		YAxis:      chart.YAxis{Name: "Percentage (%)", Range: &chart.ContinuousRange{Min: 0, Max: 50}},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render age trend: %w", err)
	}
	return nil
}
