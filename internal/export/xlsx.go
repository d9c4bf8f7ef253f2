package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/junkd0g/kuposhan/internal/dataset"
	"github.com/junkd0g/kuposhan/internal/view"
)

// Sheet names, in workbook order.
const (
	SheetStates    = "States"
	SheetNational  = "National"
	SheetAgeGroups = "Age Groups"
	SheetFactors   = "Factors"
	SheetRadar     = "Radar"
	SheetInsights  = "Insights"
)

type sheet struct {
	name    string
	headers []string
	rows    [][]any
}

// WriteXLSX writes one sheet per dataset table plus the insight sentences.
func WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck // in-memory workbook

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4F46E5"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, s := range sheets() {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", s.name, err)
		}
		if err := writeSheet(f, s, headerStyle); err != nil {
			return fmt.Errorf("failed to write sheet %s: %w", s.name, err)
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, s sheet, headerStyle int) error {
	for i, header := range s.headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(s.name, cell, header); err != nil {
			return err
		}
		col, _, _ := excelize.SplitCellName(cell)
		if err := f.SetColWidth(s.name, col, col, 22); err != nil {
			return err
		}
	}

	last, err := excelize.CoordinatesToCellName(len(s.headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(s.name, "A1", last, headerStyle); err != nil {
		return err
	}

	for r, row := range s.rows {
		if err := f.SetSheetRow(s.name, fmt.Sprintf("A%d", r+2), &row); err != nil {
			return err
		}
	}
	return nil
}

func sheets() []sheet {
	states := sheet{name: SheetStates, headers: []string{"State", "Stunting (%)", "Wasting (%)", "Underweight (%)"}}
	for _, r := range dataset.States() {
		states.rows = append(states.rows, []any{r.State, r.Stunting, r.Wasting, r.Underweight})
	}

	national := sheet{name: SheetNational, headers: []string{"Indicator", "National Average (%)", "Color"}}
	for _, r := range dataset.National() {
		national.rows = append(national.rows, []any{r.Category, r.Value, r.Color})
	}

	ages := sheet{name: SheetAgeGroups, headers: []string{"Age Group", "Stunting (%)", "Wasting (%)", "Underweight (%)"}}
	for _, r := range dataset.AgeGroups() {
		ages.rows = append(ages.rows, []any{r.Age, r.Stunting, r.Wasting, r.Underweight})
	}

	factors := sheet{name: SheetFactors, headers: []string{"Factor", "Impact", "Category"}}
	for _, r := range dataset.Factors() {
		factors.rows = append(factors.rows, []any{r.Factor, r.Impact, string(r.Category)})
	}

	radar := sheet{name: SheetRadar, headers: []string{"Subject", "Score"}}
	for _, r := range dataset.Radar() {
		radar.rows = append(radar.rows, []any{r.Subject, r.Value})
	}

	insights := sheet{name: SheetInsights, headers: []string{"Indicator", "Peak Age Group", "Value (%)", "Insight"}}
	for _, m := range dataset.Metrics() {
		in := view.InsightFor(m)
		insights.rows = append(insights.rows, []any{m.Title(), in.AgeGroup, in.Value, in.Text()})
	}

	return []sheet{states, national, ages, factors, radar, insights}
}
