package view

import (
	"github.com/junkd0g/kuposhan/internal/chart"
	"github.com/junkd0g/kuposhan/internal/dataset"
)

// Tree is everything the dashboard shows for one State.
type Tree struct {
	Header          Header              `json:"header"`
	Cards           []Card              `json:"cards"`
	AgePanel        AgePanel            `json:"agePanel"`
	StateComparison Section             `json:"stateComparison"`
	AgeTrend        Section             `json:"ageTrend"`
	Factors         FactorsSection      `json:"factors"`
	Highlights      []dataset.Highlight `json:"highlights"`
	Footer          Footer              `json:"footer"`
}

// Header is the title banner with the survey badges and year box.
type Header struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Badges   []string `json:"badges"`
	Year     int      `json:"year"`
	Edition  string   `json:"edition"`
}

// Card is a national-average summary tile.
type Card struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
	Caption string  `json:"caption"`
	Color   string  `json:"color"`
}

// Section is a titled chart.
type Section struct {
	Title string       `json:"title"`
	Chart chart.Option `json:"chart"`
}

// SelectOption is one entry of the indicator selector.
type SelectOption struct {
	Value    dataset.Metric `json:"value"`
	Label    string         `json:"label"`
	Selected bool           `json:"selected"`
}

// Accent holds the per-metric colours of the age panel. Panel* is the
// ranked list background, Insight* the key insight box background.
type Accent struct {
	PanelFrom   string `json:"panelFrom"`
	PanelTo     string `json:"panelTo"`
	InsightFrom string `json:"insightFrom"`
	InsightTo   string `json:"insightTo"`
	Border      string `json:"border"`
	Label       string `json:"label"`
	Emphasis    string `json:"emphasis"`
}

// AgePanel is the only part of the tree that depends on State.
type AgePanel struct {
	Title       string         `json:"title"`
	SelectLabel string         `json:"selectLabel"`
	Options     []SelectOption `json:"options"`
	ListTitle   string         `json:"listTitle"`
	Breakdown   Breakdown      `json:"breakdown"`
	Donut       chart.Option   `json:"donut"`
	Insight     Insight        `json:"insight"`
	Accent      Accent         `json:"accent"`
}

// FactorsSection groups the impact bars, the radar and the category lists.
type FactorsSection struct {
	Title  string        `json:"title"`
	Impact Section       `json:"impact"`
	Radar  Section       `json:"radar"`
	Groups []FactorGroup `json:"groups"`
}

// Footer is the source attribution under the dashboard.
type Footer struct {
	Source string `json:"source"`
	Note   string `json:"note"`
}

var accents = map[dataset.Metric]Accent{
	dataset.MetricStunting: {
		PanelFrom: "#fef2f2", PanelTo: "#fff7ed",
		InsightFrom: "#fffbeb", InsightTo: "#fefce8",
		Border: "#f59e0b", Label: "#b45309", Emphasis: "#dc2626",
	},
	dataset.MetricWasting: {
		PanelFrom: "#fff7ed", PanelTo: "#fffbeb",
		InsightFrom: "#fff7ed", InsightTo: "#fef2f2",
		Border: "#f97316", Label: "#c2410c", Emphasis: "#ea580c",
	},
	dataset.MetricUnderweight: {
		PanelFrom: "#faf5ff", PanelTo: "#eef2ff",
		InsightFrom: "#faf5ff", InsightTo: "#fdf2f8",
		Border: "#a855f7", Label: "#7e22ce", Emphasis: "#9333ea",
	},
}

// Render builds the tree for s.
func Render(s State) Tree {
	survey := dataset.SurveyInfo()
	return Tree{
		Header: Header{
			Title:    "India Malnutrition Dashboard",
			Subtitle: "Comprehensive Analysis of Child Malnutrition Indicators",
			Badges:   []string{survey.Population, survey.Name, "2024 Report"},
			Year:     survey.Year,
			Edition:  survey.Edition,
		},
		Cards:           summaryCards(),
		AgePanel:        RenderAgePanel(s),
		StateComparison: stateComparison(),
		AgeTrend:        ageTrend(),
		Factors:         factorsSection(),
		Highlights:      dataset.Highlights(),
		Footer: Footer{
			Source: "Data based on National Family Health Survey (NFHS) reports",
			Note:   "Dashboard created for awareness and policy planning",
		},
	}
}

// RenderAgePanel builds the metric-dependent part of the tree. It is what
// a selector change re-renders.
func RenderAgePanel(s State) AgePanel {
	m := s.Metric()
	b := AgeBreakdown(m)

	options := make([]SelectOption, 0, 3)
	for _, opt := range dataset.Metrics() {
		options = append(options, SelectOption{Value: opt, Label: opt.Title(), Selected: opt == m})
	}

	return AgePanel{
		Title:       "Age Group-wise Malnutrition Prevalence",
		SelectLabel: "Select Indicator:",
		Options:     options,
		ListTitle:   m.Title() + " by Age Group",
		Breakdown:   b,
		Donut:       b.Donut(),
		Insight:     InsightFor(m),
		Accent:      accents[m],
	}
}

func summaryCards() []Card {
	national := dataset.National()
	cards := make([]Card, 0, len(national))
	for _, n := range national {
		cards = append(cards, Card{
			Label:   n.Category,
			Value:   n.Value,
			Display: FormatPercent(n.Value),
			Caption: "National Average",
			Color:   n.Color,
		})
	}
	return cards
}

func metricSeries(values func(dataset.Metric) []float64) []chart.SeriesData {
	series := make([]chart.SeriesData, 0, 3)
	for _, m := range dataset.Metrics() {
		series = append(series, chart.SeriesData{
			Name:   m.Title(),
			Color:  dataset.SeriesColor(m),
			Values: values(m),
		})
	}
	return series
}

func stateComparison() Section {
	states := dataset.States()
	names := make([]string, 0, len(states))
	for _, r := range states {
		names = append(names, r.State)
	}
	return Section{
		Title: "State-wise Malnutrition Comparison",
		Chart: chart.GroupedBar(names, metricSeries(func(m dataset.Metric) []float64 {
			out := make([]float64, 0, len(states))
			for _, r := range states {
				out = append(out, r.Value(m))
			}
			return out
		})),
	}
}

func ageTrend() Section {
	groups := dataset.AgeGroups()
	ages := make([]string, 0, len(groups))
	for _, g := range groups {
		ages = append(ages, g.Age)
	}
	return Section{
		Title: "Age-wise Malnutrition Prevalence",
		Chart: chart.Lines(ages, metricSeries(func(m dataset.Metric) []float64 {
			out := make([]float64, 0, len(groups))
			for _, g := range groups {
				out = append(out, g.Value(m))
			}
			return out
		})),
	}
}

func factorsSection() FactorsSection {
	factors := dataset.Factors()
	names := make([]string, 0, len(factors))
	impacts := make([]float64, 0, len(factors))
	for _, f := range factors {
		names = append(names, f.Factor)
		impacts = append(impacts, f.Impact)
	}

	radar := dataset.Radar()
	subjects := make([]string, 0, len(radar))
	scores := make([]float64, 0, len(radar))
	for _, r := range radar {
		subjects = append(subjects, r.Subject)
		scores = append(scores, r.Value)
	}

	return FactorsSection{
		Title: "Factors Contributing to Stunting",
		Impact: Section{
			Title: "Impact Assessment by Factor",
			Chart: chart.HorizontalBar("Impact", names, impacts, dataset.ImpactColors(), 100),
		},
		Radar: Section{
			Title: "Multi-dimensional Impact Analysis",
			Chart: chart.RadarChart("Impact", subjects, scores, 100, dataset.RadarColor, 0.6),
		},
		Groups: FactorGroups(),
	}
}
