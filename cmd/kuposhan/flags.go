package main

import (
	"github.com/spf13/pflag"

	"github.com/junkd0g/kuposhan/internal/dataset"
	"github.com/junkd0g/kuposhan/internal/view"
)

// metricFlag is a --metric value restricted to the three indicators.
type metricFlag struct {
	metric dataset.Metric
}

var _ pflag.Value = (*metricFlag)(nil)

func (f *metricFlag) String() string {
	if f.metric == "" {
		return string(dataset.MetricStunting)
	}
	return string(f.metric)
}

func (f *metricFlag) Set(s string) error {
	m, err := dataset.ParseMetric(s)
	if err != nil {
		return err
	}
	f.metric = m
	return nil
}

func (f *metricFlag) Type() string { return "metric" }

// State returns the view state with the flag's metric selected.
func (f *metricFlag) State() view.State {
	s := view.Initial()
	if f.metric == "" {
		return s
	}
	next, err := view.Reduce(s, view.MetricSelected{Metric: f.metric})
	if err != nil {
		return s
	}
	return next
}

func addMetricFlag(fs *pflag.FlagSet, f *metricFlag) {
	fs.Var(f, "metric", "indicator shown in the age panel: stunting, wasting or underweight")
}
