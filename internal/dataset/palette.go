package dataset

// metricPalettes colour the donut slices and ranked list, indexed by age group.
var metricPalettes = map[Metric][]string{
	MetricStunting:    {"#3b82f6", "#8b5cf6", "#ef4444", "#f59e0b", "#10b981", "#06b6d4"},
	MetricWasting:     {"#f59e0b", "#fb923c", "#fdba74", "#fcd34d", "#fde047", "#fef08a"},
	MetricUnderweight: {"#8b5cf6", "#a78bfa", "#c4b5fd", "#818cf8", "#6366f1", "#4f46e5"},
}

// generalColors is the general-purpose six colour palette.
var generalColors = []string{"#ef4444", "#f59e0b", "#8b5cf6", "#06b6d4", "#10b981", "#ec4899"}

// impactColors colour the factor impact bars, one per factor.
var impactColors = []string{
	"#2563eb", // blue
	"#7c3aed", // purple
	"#0891b2", // teal
	"#059669", // green
	"#dc2626", // red
	"#ea580c", // orange
	"#4f46e5", // indigo
	"#a855f7", // violet
}

var categoryColors = map[Category]string{
	CategoryDietary:       "#2563eb",
	CategoryEnvironmental: "#059669",
	CategoryHealth:        "#dc2626",
	CategorySocioeconomic: "#7c3aed",
}

var seriesColors = map[Metric]string{
	MetricStunting:    "#ef4444",
	MetricWasting:     "#f59e0b",
	MetricUnderweight: "#8b5cf6",
}

// RadarColor is the stroke and fill of the impact radar.
const RadarColor = "#ef4444"

// Palette returns a copy of the six colour palette for m.
func Palette(m Metric) []string {
	return append([]string(nil), metricPalettes[m]...)
}

// SliceColor returns the palette colour of the i-th age group for m.
func SliceColor(m Metric, i int) string {
	p := metricPalettes[m]
	if len(p) == 0 {
		return generalColors[i%len(generalColors)]
	}
	return p[i%len(p)]
}

// GeneralColors returns a copy of the general-purpose palette.
func GeneralColors() []string {
	return append([]string(nil), generalColors...)
}

// ImpactColors returns a copy of the factor impact palette.
func ImpactColors() []string {
	return append([]string(nil), impactColors...)
}

// ImpactColor returns the bar colour of the i-th factor.
func ImpactColor(i int) string {
	return impactColors[i%len(impactColors)]
}

// CategoryColor returns the accent colour of a factor category.
func CategoryColor(c Category) string {
	return categoryColors[c]
}

// SeriesColor returns the series colour used by the comparison charts.
func SeriesColor(m Metric) string {
	return seriesColors[m]
}
