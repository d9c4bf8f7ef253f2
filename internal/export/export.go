// Package export writes the dashboard data in formats other than the
// interactive page: a spreadsheet, JSON, and static images.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/junkd0g/kuposhan/internal/dataset"
	"github.com/junkd0g/kuposhan/internal/diagram"
	"github.com/junkd0g/kuposhan/internal/view"
)

// Format is an export output format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
)

// ErrUnknownFormat is returned for formats Write does not support.
var ErrUnknownFormat = errors.New("unknown export format")

// ErrUnknownChart is returned for PNG charts Write cannot draw.
var ErrUnknownChart = errors.New("unknown chart")

// Chart selects which static chart a PNG export draws.
type Chart string

const (
	ChartDonut    Chart = "donut"
	ChartStates   Chart = "states"
	ChartAgeTrend Chart = "age-trend"
)

// Charts lists the PNG charts.
func Charts() []Chart {
	return []Chart{ChartDonut, ChartStates, ChartAgeTrend}
}

// ParseChart accepts a chart name, case-insensitively. Empty means donut.
func ParseChart(s string) (Chart, error) {
	c := Chart(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return ChartDonut, nil
	}
	for _, known := range Charts() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q (must be donut, states or age-trend)", ErrUnknownChart, s)
}

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatXLSX, FormatJSON, FormatPNG, FormatSVG}
}

// ParseFormat accepts a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q (must be xlsx, json, png or svg)", ErrUnknownFormat, s)
}

// DefaultFileName is the output file used when none is given. c only
// matters for PNG.
func (f Format) DefaultFileName(c Chart) string {
	switch f {
	case FormatPNG:
		switch c {
		case ChartStates:
			return "state-comparison.png"
		case ChartAgeTrend:
			return "age-trend.png"
		default:
			return "age-breakdown.png"
		}
	case FormatSVG:
		return "factor-map.svg"
	default:
		return "malnutrition." + string(f)
	}
}

// Document is the JSON export: the full dataset plus the view rendered for
// one state.
type Document struct {
	State   view.State       `json:"state"`
	Dataset dataset.Snapshot `json:"dataset"`
	View    view.Tree        `json:"view"`
}

// Write exports in format f to w. state picks the metric for json and for
// the donut and states PNG charts; c picks the PNG chart.
func Write(ctx context.Context, w io.Writer, f Format, state view.State, c Chart) error {
	switch f {
	case FormatXLSX:
		return WriteXLSX(w)
	case FormatJSON:
		return WriteJSON(w, state)
	case FormatPNG:
		return writePNG(w, state, c)
	case FormatSVG:
		svg, err := diagram.RenderFactorMap(ctx, diagram.FormatSVG)
		if err != nil {
			return err
		}
		_, err = w.Write(svg)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

func writePNG(w io.Writer, state view.State, c Chart) error {
	switch c {
	case ChartDonut, "":
		return diagram.RenderDonutPNG(w, state.Metric())
	case ChartStates:
		return diagram.RenderStatesPNG(w, state.Metric())
	case ChartAgeTrend:
		return diagram.RenderAgeTrendPNG(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownChart, c)
	}
}

// WriteJSON writes an indented Document for state.
func WriteJSON(w io.Writer, state view.State) error {
	doc := Document{
		State:   state,
		Dataset: dataset.Load(),
		View:    view.Render(state),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
