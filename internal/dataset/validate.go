package dataset

import (
	"fmt"
	"math"
	"strings"
)

// Validate checks the compiled-in tables and returns all problems at once.
// Every percentage and score must be finite and within [0, 100], every
// factor must carry a known category, and each metric palette must have one
// colour per age group.
func Validate() error {
	var errs []string

	check := func(where string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 100 {
			errs = append(errs, fmt.Sprintf("%s: %v out of range [0,100]", where, v))
		}
	}

	for _, r := range stateRecords {
		check("states."+r.State+".stunting", r.Stunting)
		check("states."+r.State+".wasting", r.Wasting)
		check("states."+r.State+".underweight", r.Underweight)
	}
	for _, r := range nationalRecords {
		check("national."+r.Category, r.Value)
	}
	known := make(map[Category]bool)
	for _, c := range Categories() {
		known[c] = true
	}
	for _, f := range stuntingFactors {
		check("factors."+f.Factor, f.Impact)
		if !known[f.Category] {
			errs = append(errs, fmt.Sprintf("factors.%s: unknown category %q", f.Factor, f.Category))
		}
	}
	for _, r := range ageGroupRecords {
		check("ageGroups."+r.Age+".stunting", r.Stunting)
		check("ageGroups."+r.Age+".wasting", r.Wasting)
		check("ageGroups."+r.Age+".underweight", r.Underweight)
	}
	for _, r := range radarFactors {
		check("radar."+r.Subject, r.Value)
	}
	for _, m := range Metrics() {
		if n := len(metricPalettes[m]); n != len(ageGroupRecords) {
			errs = append(errs, fmt.Sprintf("palette.%s: %d colours for %d age groups", m, n, len(ageGroupRecords)))
		}
	}
	if len(impactColors) < len(stuntingFactors) {
		errs = append(errs, fmt.Sprintf("impact palette: %d colours for %d factors", len(impactColors), len(stuntingFactors)))
	}

	if len(errs) > 0 {
		return fmt.Errorf("dataset validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
