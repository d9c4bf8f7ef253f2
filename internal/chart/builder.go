package chart

const percentAxis = "Percentage (%)"

// SeriesData is a named, coloured sequence of values aligned with a set of
// category labels.
type SeriesData struct {
	Name   string
	Color  string
	Values []float64
}

// Slice is one segment of a donut.
type Slice struct {
	Name  string
	Value float64
	Color string
}

// Donut builds a pie series with a hollow centre. Slice labels read
// "{name}: {value}%" and the tooltip shows seriesName with the value.
func Donut(seriesName string, slices []Slice) Option {
	data := make([]Point, 0, len(slices))
	for _, s := range slices {
		data = append(data, Point{
			Name:      s.Name,
			Value:     s.Value,
			ItemStyle: &ItemStyle{Color: s.Color},
		})
	}

	return Option{
		Tooltip: &Tooltip{Trigger: "item", Formatter: "{b}<br/>{a}: {c}%"},
		Series: []Series{{
			Name:      seriesName,
			Type:      TypePie,
			Radius:    []string{"40%", "70%"},
			Center:    []string{"50%", "50%"},
			PadAngle:  3,
			Data:      data,
			Label:     &Label{Show: true, Formatter: "{b}: {c}%"},
			LabelLine: &LabelLine{Show: true},
			ItemStyle: &ItemStyle{BorderColor: "#ffffff", BorderWidth: 2},
		}},
	}
}

// GroupedBar builds a vertical bar chart with one bar per series for each
// category, e.g. stunting/wasting/underweight side by side per state.
func GroupedBar(categories []string, series []SeriesData) Option {
	opt := Option{
		Tooltip: &Tooltip{Trigger: "axis"},
		Legend:  &Legend{Show: true, Data: seriesNames(series), Bottom: "0"},
		Grid:    &Grid{Left: "3%", Right: "4%", Top: "8%", Bottom: "12%", ContainLabel: true},
		XAxis: &Axis{
			Type:      "category",
			Data:      categories,
			AxisLabel: &AxisLabel{Rotate: 45, FontSize: 12, Interval: intPtr(0)},
		},
		YAxis: percentYAxis(),
	}
	for _, s := range series {
		opt.Series = append(opt.Series, Series{
			Name:      s.Name,
			Type:      TypeBar,
			Data:      points(s.Values),
			ItemStyle: &ItemStyle{Color: s.Color},
		})
	}
	return opt
}

// Lines builds a line chart with one smooth line per series.
func Lines(categories []string, series []SeriesData) Option {
	opt := Option{
		Tooltip: &Tooltip{Trigger: "axis"},
		Legend:  &Legend{Show: true, Data: seriesNames(series), Bottom: "0"},
		Grid:    &Grid{Left: "3%", Right: "4%", Top: "8%", Bottom: "12%", ContainLabel: true},
		XAxis: &Axis{
			Type:      "category",
			Data:      categories,
			AxisLabel: &AxisLabel{FontSize: 12, Interval: intPtr(0)},
		},
		YAxis: percentYAxis(),
	}
	for _, s := range series {
		opt.Series = append(opt.Series, Series{
			Name:      s.Name,
			Type:      TypeLine,
			Smooth:    true,
			Data:      points(s.Values),
			ItemStyle: &ItemStyle{Color: s.Color},
			LineStyle: &LineStyle{Width: 3, Color: s.Color},
		})
	}
	return opt
}

// HorizontalBar builds a single-series bar chart laid out horizontally, each
// bar carrying its own colour, with the value axis fixed to [0, max].
func HorizontalBar(seriesName string, categories []string, values []float64, colors []string, max float64) Option {
	data := make([]Point, 0, len(values))
	for i, v := range values {
		p := Point{Value: v}
		if len(colors) > 0 {
			p.ItemStyle = &ItemStyle{Color: colors[i%len(colors)]}
		}
		data = append(data, p)
	}

	return Option{
		Tooltip: &Tooltip{Trigger: "axis"},
		Grid:    &Grid{Left: "3%", Right: "6%", Top: "3%", Bottom: "3%", ContainLabel: true},
		XAxis: &Axis{
			Type:      "value",
			Min:       float(0),
			Max:       float(max),
			SplitLine: &SplitLine{LineStyle: &LineStyle{Type: "dashed", Color: "#e5e7eb"}},
		},
		YAxis: &Axis{
			Type:      "category",
			Data:      categories,
			Inverse:   true,
			AxisLabel: &AxisLabel{FontSize: 11, Width: 150, Overflow: "truncate"},
		},
		Series: []Series{{
			Name:      seriesName,
			Type:      TypeBar,
			BarWidth:  "60%",
			Data:      data,
			ItemStyle: &ItemStyle{BorderRadius: []int{0, 8, 8, 0}},
		}},
	}
}

// RadarChart builds a single-area radar chart over the given axes.
func RadarChart(seriesName string, axes []string, values []float64, max float64, color string, fillOpacity float64) Option {
	indicators := make([]Indicator, 0, len(axes))
	for _, a := range axes {
		indicators = append(indicators, Indicator{Name: a, Max: max})
	}

	return Option{
		Tooltip: &Tooltip{Trigger: "item"},
		Radar:   &Radar{Indicator: indicators, Radius: "65%"},
		Series: []Series{{
			Name: seriesName,
			Type: TypeRadar,
			Data: []Point{{
				Name:  seriesName,
				Value: append([]float64(nil), values...),
			}},
			ItemStyle: &ItemStyle{Color: color},
			LineStyle: &LineStyle{Width: 2, Color: color},
			AreaStyle: &AreaStyle{Opacity: fillOpacity, Color: color},
		}},
	}
}

func percentYAxis() *Axis {
	return &Axis{
		Type:         "value",
		Name:         percentAxis,
		NameLocation: "middle",
		NameGap:      40,
	}
}

func points(values []float64) []Point {
	out := make([]Point, 0, len(values))
	for _, v := range values {
		out = append(out, Point{Value: v})
	}
	return out
}

func seriesNames(series []SeriesData) []string {
	names := make([]string, 0, len(series))
	for _, s := range series {
		names = append(names, s.Name)
	}
	return names
}

func intPtr(v int) *int { return &v }
