package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Validate())
}

func TestParseMetric(t *testing.T) {
	tests := []struct {
		in   string
		want Metric
	}{
		{"stunting", MetricStunting},
		{"Wasting", MetricWasting},
		{" underweight ", MetricUnderweight},
	}
	for _, tt := range tests {
		got, err := ParseMetric(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseMetric("obesity")
	assert.ErrorIs(t, err, ErrUnknownMetric)

	_, err = ParseMetric("")
	assert.ErrorIs(t, err, ErrUnknownMetric)
}

func TestMetricTitle(t *testing.T) {
	assert.Equal(t, "Stunting", MetricStunting.Title())
	assert.Equal(t, "Wasting", MetricWasting.Title())
	assert.Equal(t, "Underweight", MetricUnderweight.Title())
	assert.Equal(t, "", Metric("").Title())
}

func TestTableSizes(t *testing.T) {
	assert.Len(t, States(), 8)
	assert.Len(t, National(), 3)
	assert.Len(t, Factors(), 8)
	assert.Len(t, AgeGroups(), 6)
	assert.Len(t, Radar(), 6)
	assert.Len(t, Highlights(), 4)
}

func TestBiharRow(t *testing.T) {
	bihar := States()[0]
	assert.Equal(t, "Bihar", bihar.State)
	assert.Equal(t, 42.9, bihar.Value(MetricStunting))
	assert.Equal(t, 22.9, bihar.Value(MetricWasting))
	assert.Equal(t, 41.0, bihar.Value(MetricUnderweight))
}

func TestAgeGroupsOrdered(t *testing.T) {
	ages := make([]string, 0, 6)
	for _, r := range AgeGroups() {
		ages = append(ages, r.Age)
	}
	assert.Equal(t, []string{
		"0-6 months", "6-12 months", "12-24 months",
		"24-36 months", "36-48 months", "48-60 months",
	}, ages)
}

func TestAccessorsReturnCopies(t *testing.T) {
	states := States()
	states[0].Stunting = 99
	assert.Equal(t, 42.9, States()[0].Stunting)

	p := Palette(MetricStunting)
	p[0] = "#000000"
	assert.Equal(t, "#3b82f6", Palette(MetricStunting)[0])

	impact := ImpactColors()
	impact[0] = "#000000"
	assert.Equal(t, "#2563eb", ImpactColors()[0])
	assert.Equal(t, "#2563eb", ImpactColor(0))

	general := GeneralColors()
	general[0] = "#000000"
	assert.Equal(t, "#ef4444", GeneralColors()[0])
}

func TestSliceColorWraps(t *testing.T) {
	assert.Equal(t, "#3b82f6", SliceColor(MetricStunting, 0))
	assert.Equal(t, "#3b82f6", SliceColor(MetricStunting, 6))
	assert.Equal(t, "#fb923c", SliceColor(MetricWasting, 7))
	assert.Equal(t, "#4f46e5", SliceColor(MetricUnderweight, 5))
}

func TestLoadSnapshot(t *testing.T) {
	snap := Load()
	assert.Equal(t, "NFHS-5", snap.Survey.Edition)
	assert.Equal(t, 2024, snap.Survey.Year)
	assert.Len(t, snap.States, 8)
	assert.Len(t, snap.AgeGroups, 6)
}
