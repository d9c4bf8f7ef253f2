// Package view turns the static dataset into the dashboard's visual tree.
//
// The only mutable input is State, which is owned by the caller. Reduce
// applies a user event to a State and Render maps a State to a Tree; both
// are pure.
package view

import (
	"errors"
	"fmt"

	"github.com/junkd0g/kuposhan/internal/dataset"
)

// DefaultSelectedState is the initial value of State.SelectedState.
const DefaultSelectedState = "National Average"

// ErrUnknownEvent is returned for event kinds Reduce does not handle.
var ErrUnknownEvent = errors.New("unknown event")

// State is the dashboard's view state.
//
// SelectedState is carried for parity with the selector it came from; no
// part of Render reads it.
type State struct {
	SelectedMetric dataset.Metric `json:"selectedMetric"`
	SelectedState  string         `json:"selectedState"`
}

// Initial returns the state the dashboard starts in.
func Initial() State {
	return State{
		SelectedMetric: dataset.MetricStunting,
		SelectedState:  DefaultSelectedState,
	}
}

// Metric returns the selected metric, falling back to stunting for a zero
// or invalid State.
func (s State) Metric() dataset.Metric {
	if m, err := dataset.ParseMetric(string(s.SelectedMetric)); err == nil {
		return m
	}
	return dataset.MetricStunting
}

// Event is a user interaction.
type Event interface {
	event()
}

// MetricSelected is emitted when the indicator selector changes.
type MetricSelected struct {
	Metric dataset.Metric
}

// StateSelected is emitted when a state is chosen.
type StateSelected struct {
	State string
}

func (MetricSelected) event() {}
func (StateSelected) event()  {}

// Event kinds accepted by ParseEvent.
const (
	EventSelectMetric = "select_metric"
	EventSelectState  = "select_state"
)

// ParseEvent builds an Event from its wire form.
func ParseEvent(kind, value string) (Event, error) {
	switch kind {
	case EventSelectMetric:
		m, err := dataset.ParseMetric(value)
		if err != nil {
			return nil, err
		}
		return MetricSelected{Metric: m}, nil
	case EventSelectState:
		return StateSelected{State: value}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, kind)
	}
}

// Reduce applies e to s. On error s is returned unchanged.
func Reduce(s State, e Event) (State, error) {
	switch ev := e.(type) {
	case MetricSelected:
		m, err := dataset.ParseMetric(string(ev.Metric))
		if err != nil {
			return s, err
		}
		s.SelectedMetric = m
		return s, nil
	case StateSelected:
		s.SelectedState = ev.State
		return s, nil
	default:
		return s, fmt.Errorf("%w: %T", ErrUnknownEvent, e)
	}
}
