package view

import (
	"strconv"

	"github.com/junkd0g/kuposhan/internal/chart"
	"github.com/junkd0g/kuposhan/internal/dataset"
)

// Slice is one age group's value for the active metric. The same slices
// drive the donut and the ranked list beside it.
type Slice struct {
	Age   string  `json:"age"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
	Label string  `json:"label"`
}

// Breakdown is the per-age view of one metric.
type Breakdown struct {
	Metric       dataset.Metric `json:"metric"`
	TooltipLabel string         `json:"tooltipLabel"`
	Slices       []Slice        `json:"slices"`
}

// AgeBreakdown reads m off every age group in declaration order. The list
// is not sorted by value.
func AgeBreakdown(m dataset.Metric) Breakdown {
	groups := dataset.AgeGroups()
	b := Breakdown{
		Metric:       m,
		TooltipLabel: m.Title() + " Rate",
		Slices:       make([]Slice, 0, len(groups)),
	}
	for i, g := range groups {
		v := g.Value(m)
		b.Slices = append(b.Slices, Slice{
			Age:   g.Age,
			Value: v,
			Color: dataset.SliceColor(m, i),
			Label: g.Age + ": " + FormatPercent(v),
		})
	}
	return b
}

// Values returns the slice values in order.
func (b Breakdown) Values() []float64 {
	out := make([]float64, 0, len(b.Slices))
	for _, s := range b.Slices {
		out = append(out, s.Value)
	}
	return out
}

// Donut converts the breakdown into a donut chart option.
func (b Breakdown) Donut() chart.Option {
	slices := make([]chart.Slice, 0, len(b.Slices))
	for _, s := range b.Slices {
		slices = append(slices, chart.Slice{Name: s.Age, Value: s.Value, Color: s.Color})
	}
	return chart.Donut(b.TooltipLabel, slices)
}

// FormatPercent renders v the way the figures are written in the source
// tables: shortest decimal form with a percent sign, e.g. 41 -> "41%".
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
