// Package chart models the subset of ECharts option objects the dashboard
// uses. Options are plain data: they marshal straight to the JSON the
// browser passes to chart.setOption.
package chart

// Type names an ECharts series type.
type Type string

const (
	TypeBar   Type = "bar"
	TypeLine  Type = "line"
	TypePie   Type = "pie"
	TypeRadar Type = "radar"
)

// Option is a complete chart configuration.
type Option struct {
	Color   []string `json:"color,omitempty"`
	Tooltip *Tooltip `json:"tooltip,omitempty"`
	Legend  *Legend  `json:"legend,omitempty"`
	Grid    *Grid    `json:"grid,omitempty"`
	XAxis   *Axis    `json:"xAxis,omitempty"`
	YAxis   *Axis    `json:"yAxis,omitempty"`
	Radar   *Radar   `json:"radar,omitempty"`
	Series  []Series `json:"series"`
}

type Tooltip struct {
	Trigger   string `json:"trigger,omitempty"`
	Formatter string `json:"formatter,omitempty"`
}

type Legend struct {
	Show   bool     `json:"show"`
	Data   []string `json:"data,omitempty"`
	Bottom string   `json:"bottom,omitempty"`
	Top    string   `json:"top,omitempty"`
}

type Grid struct {
	Left         string `json:"left,omitempty"`
	Right        string `json:"right,omitempty"`
	Top          string `json:"top,omitempty"`
	Bottom       string `json:"bottom,omitempty"`
	ContainLabel bool   `json:"containLabel"`
}

type Axis struct {
	Type         string     `json:"type"`
	Name         string     `json:"name,omitempty"`
	NameLocation string     `json:"nameLocation,omitempty"`
	NameGap      int        `json:"nameGap,omitempty"`
	Data         []string   `json:"data,omitempty"`
	Inverse      bool       `json:"inverse,omitempty"`
	Min          *float64   `json:"min,omitempty"`
	Max          *float64   `json:"max,omitempty"`
	AxisLabel    *AxisLabel `json:"axisLabel,omitempty"`
	SplitLine    *SplitLine `json:"splitLine,omitempty"`
}

type AxisLabel struct {
	Rotate   int    `json:"rotate,omitempty"`
	FontSize int    `json:"fontSize,omitempty"`
	Interval *int   `json:"interval,omitempty"`
	Width    int    `json:"width,omitempty"`
	Overflow string `json:"overflow,omitempty"`
}

type SplitLine struct {
	LineStyle *LineStyle `json:"lineStyle,omitempty"`
}

type Radar struct {
	Indicator []Indicator `json:"indicator"`
	Radius    string      `json:"radius,omitempty"`
	Shape     string      `json:"shape,omitempty"`
}

type Indicator struct {
	Name string  `json:"name"`
	Max  float64 `json:"max"`
}

// Series is one data series. Which fields matter depends on Type.
type Series struct {
	Name      string     `json:"name,omitempty"`
	Type      Type       `json:"type"`
	Data      []Point    `json:"data"`
	Radius    []string   `json:"radius,omitempty"`
	Center    []string   `json:"center,omitempty"`
	PadAngle  float64    `json:"padAngle,omitempty"`
	Smooth    bool       `json:"smooth,omitempty"`
	BarWidth  string     `json:"barWidth,omitempty"`
	Label     *Label     `json:"label,omitempty"`
	LabelLine *LabelLine `json:"labelLine,omitempty"`
	ItemStyle *ItemStyle `json:"itemStyle,omitempty"`
	LineStyle *LineStyle `json:"lineStyle,omitempty"`
	AreaStyle *AreaStyle `json:"areaStyle,omitempty"`
}

// Point is a single datum. Value is a number for bar, line and pie series
// and a []float64 for radar series.
type Point struct {
	Name      string     `json:"name,omitempty"`
	Value     any        `json:"value"`
	ItemStyle *ItemStyle `json:"itemStyle,omitempty"`
}

type Label struct {
	Show      bool   `json:"show"`
	Formatter string `json:"formatter,omitempty"`
	Position  string `json:"position,omitempty"`
	FontSize  int    `json:"fontSize,omitempty"`
}

type LabelLine struct {
	Show bool `json:"show"`
}

type ItemStyle struct {
	Color        string `json:"color,omitempty"`
	BorderColor  string `json:"borderColor,omitempty"`
	BorderWidth  int    `json:"borderWidth,omitempty"`
	BorderRadius []int  `json:"borderRadius,omitempty"`
}

type LineStyle struct {
	Width int    `json:"width,omitempty"`
	Color string `json:"color,omitempty"`
	Type  string `json:"type,omitempty"`
}

type AreaStyle struct {
	Opacity float64 `json:"opacity"`
	Color   string  `json:"color,omitempty"`
}

// Values returns the numeric values of the series data, skipping points
// whose value is not a float64.
func (s Series) Values() []float64 {
	out := make([]float64, 0, len(s.Data))
	for _, p := range s.Data {
		if v, ok := p.Value.(float64); ok {
			out = append(out, v)
		}
	}
	return out
}

func float(v float64) *float64 { return &v }
