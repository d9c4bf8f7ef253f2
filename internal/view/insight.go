package view

import (
	"fmt"
	"strings"

	"github.com/junkd0g/kuposhan/internal/dataset"
)

// Insight is the hand-written "Key Insight" sentence for a metric. The
// sentence is split around the emphasised age group so it can be rendered
// in bold. AgeGroup and Value restate what the sentence claims; they are
// literals, not derived from the dataset.
type Insight struct {
	Metric   dataset.Metric `json:"metric"`
	AgeGroup string         `json:"ageGroup"`
	Value    float64        `json:"value"`
	Prefix   string         `json:"prefix"`
	Suffix   string         `json:"suffix"`
}

// Text returns the full sentence.
func (i Insight) Text() string {
	return i.Prefix + i.AgeGroup + i.Suffix
}

var insights = map[dataset.Metric]Insight{
	dataset.MetricStunting: {
		Metric:   dataset.MetricStunting,
		AgeGroup: "24-36 months",
		Value:    45.7,
		Prefix:   "Peak stunting occurs in the ",
		Suffix:   " age group (45.7%), highlighting the critical window for nutritional interventions during the first 1000 days of life.",
	},
	dataset.MetricWasting: {
		Metric:   dataset.MetricWasting,
		AgeGroup: "6-12 months",
		Value:    21.4,
		Prefix:   "Highest wasting rates are observed in the ",
		Suffix:   " age group (21.4%), indicating acute malnutrition during the critical complementary feeding period.",
	},
	dataset.MetricUnderweight: {
		Metric:   dataset.MetricUnderweight,
		AgeGroup: "24-36 months",
		Value:    38.2,
		Prefix:   "Underweight prevalence peaks at ",
		Suffix:   " (38.2%), reflecting both chronic and acute malnutrition affecting overall growth and development.",
	},
}

// InsightFor returns the sentence for m. Unknown metrics get the stunting
// sentence, matching State.Metric's fallback.
func InsightFor(m dataset.Metric) Insight {
	if in, ok := insights[m]; ok {
		return in
	}
	return insights[dataset.MetricStunting]
}

// Peak returns the age group with the highest value of m. Ties keep the
// earlier group.
func Peak(m dataset.Metric) dataset.AgeGroupRecord {
	groups := dataset.AgeGroups()
	best := groups[0]
	for _, g := range groups[1:] {
		if g.Value(m) > best.Value(m) {
			best = g
		}
	}
	return best
}

// CheckInsights compares each literal insight with the peak computed from
// the age table and reports every sentence that no longer matches the data.
// It never rewrites the sentences.
func CheckInsights() error {
	var drift []string
	for _, m := range dataset.Metrics() {
		in := InsightFor(m)
		peak := Peak(m)
		if in.AgeGroup != peak.Age || in.Value != peak.Value(m) {
			drift = append(drift, fmt.Sprintf("%s: insight names %s (%s), data peaks at %s (%s)",
				m, in.AgeGroup, FormatPercent(in.Value), peak.Age, FormatPercent(peak.Value(m))))
			continue
		}
		if !strings.Contains(in.Text(), "("+FormatPercent(in.Value)+")") {
			drift = append(drift, fmt.Sprintf("%s: insight text does not quote %s", m, FormatPercent(in.Value)))
		}
	}
	if len(drift) > 0 {
		return fmt.Errorf("insight text out of date:\n  %s", strings.Join(drift, "\n  "))
	}
	return nil
}
