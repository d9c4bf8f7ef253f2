// Package dataset holds the compiled-in NFHS child malnutrition figures the
// dashboard renders. Nothing here is loaded at runtime; accessors hand out
// copies so callers can never mutate the literal tables.
package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// Metric identifies one of the three malnutrition indicators.
type Metric string

const (
	MetricStunting    Metric = "stunting"
	MetricWasting     Metric = "wasting"
	MetricUnderweight Metric = "underweight"
)

// ErrUnknownMetric is returned when a metric name is not one of the three indicators.
var ErrUnknownMetric = errors.New("unknown metric")

// Metrics lists the indicators in selector order.
func Metrics() []Metric {
	return []Metric{MetricStunting, MetricWasting, MetricUnderweight}
}

// ParseMetric converts a selector value into a Metric.
func ParseMetric(s string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case MetricStunting, MetricWasting, MetricUnderweight:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q (must be stunting, wasting, or underweight)", ErrUnknownMetric, s)
}

// Title returns the capitalized indicator name, e.g. "Stunting".
func (m Metric) Title() string {
	if m == "" {
		return ""
	}
	return strings.ToUpper(string(m[:1])) + string(m[1:])
}

// Category groups contributing factors.
type Category string

const (
	CategoryDietary       Category = "Dietary"
	CategoryEnvironmental Category = "Environmental"
	CategoryHealth        Category = "Health"
	CategorySocioeconomic Category = "Socioeconomic"
)

// Categories lists the factor categories in display order.
func Categories() []Category {
	return []Category{CategoryDietary, CategoryEnvironmental, CategoryHealth, CategorySocioeconomic}
}

// StateRecord holds the three indicators for one Indian state.
type StateRecord struct {
	State       string  `json:"state"`
	Stunting    float64 `json:"stunting"`
	Wasting     float64 `json:"wasting"`
	Underweight float64 `json:"underweight"`
}

// Value returns the field selected by m.
func (r StateRecord) Value(m Metric) float64 {
	return pick(m, r.Stunting, r.Wasting, r.Underweight)
}

// NationalRecord is one national-average summary figure.
type NationalRecord struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
	Color    string  `json:"color"`
}

// StuntingFactor is a contributing factor with its impact score.
type StuntingFactor struct {
	Factor   string   `json:"factor"`
	Impact   float64  `json:"impact"`
	Category Category `json:"category"`
}

// AgeGroupRecord holds the three indicators for one age band.
type AgeGroupRecord struct {
	Age         string  `json:"age"`
	Stunting    float64 `json:"stunting"`
	Wasting     float64 `json:"wasting"`
	Underweight float64 `json:"underweight"`
}

// Value returns the field selected by m.
func (r AgeGroupRecord) Value(m Metric) float64 {
	return pick(m, r.Stunting, r.Wasting, r.Underweight)
}

// RadarFactor is one axis of the multi-dimensional impact radar.
type RadarFactor struct {
	Subject string  `json:"subject"`
	Value   float64 `json:"value"`
}

// Highlight is one entry of the static key-insights panel.
type Highlight struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Survey describes where the figures come from.
type Survey struct {
	Name       string `json:"name"`
	Edition    string `json:"edition"`
	Year       int    `json:"year"`
	Population string `json:"population"`
}

func pick(m Metric, stunting, wasting, underweight float64) float64 {
	switch m {
	case MetricWasting:
		return wasting
	case MetricUnderweight:
		return underweight
	default:
		return stunting
	}
}
