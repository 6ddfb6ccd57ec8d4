package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/treeboard/pkg/domain/types"
)

// View selects how a chart presents tree counts
type View string

const (
	ViewCount      View = "count"
	ViewProportion View = "proportion"
)

// Views returns the chart views in the order the dashboard shows them
func Views() []View {
	return []View{ViewCount, ViewProportion}
}

// String returns the string representation
func (v View) String() string {
	return string(v)
}

// Validate checks that the view is known
func (v View) Validate() error {
	switch v {
	case ViewCount, ViewProportion:
		return nil
	default:
		return goerr.Wrap(ErrInvalidView, "unknown chart view", goerr.V("view", v))
	}
}

// BarModeStack stacks the traces of a figure on top of each other
const BarModeStack = "stack"

// Layout describes how a figure is drawn
type Layout struct {
	Title      string `json:"title"`
	BarMode    string `json:"barmode"`
	XAxisTitle string `json:"xaxis_title"`
	YAxisTitle string `json:"yaxis_title"`
}

// LayoutFor returns the layout of the given view
func LayoutFor(view View) Layout {
	layout := Layout{
		BarMode:    BarModeStack,
		XAxisTitle: "Steward Activity",
	}
	switch view {
	case ViewProportion:
		layout.Title = "Proportion of Trees by Health and Stewardship"
		layout.YAxisTitle = "Proportion of Trees in Good, Fair and Poor Health"
	default:
		layout.Title = "Number of Trees by Health and Stewardship"
		layout.YAxisTitle = "Number of Trees in Good, Fair and Poor Health"
	}
	return layout
}

// Figure is a chart ready to be rendered: the traces of one view plus its layout
type Figure struct {
	View    View          `json:"view"`
	Borough types.Borough `json:"borough,omitempty"`
	Species types.Species `json:"species,omitempty"`
	Traces  []Trace       `json:"traces"`
	Layout  Layout        `json:"layout"`
}

// NewFigure builds the figure of a view from grouped census rows
func NewFigure(records []TreeRecord, view View) *Figure {
	traces := BuildTraces(records, view)
	if traces == nil {
		traces = []Trace{}
	}
	return &Figure{
		View:   view,
		Traces: traces,
		Layout: LayoutFor(view),
	}
}

// IsEmpty returns true if the figure has nothing to draw
func (f *Figure) IsEmpty() bool {
	return f == nil || len(f.Traces) == 0
}

// Stewards returns every steward category appearing in the figure, sorted
func (f *Figure) Stewards() []Steward {
	if f == nil {
		return nil
	}
	seen := make(map[Steward]bool)
	var result []Steward
	for _, trace := range f.Traces {
		for _, steward := range trace.X {
			if seen[steward] {
				continue
			}
			seen[steward] = true
			result = append(result, steward)
		}
	}
	sortStewards(result)
	return result
}

// Value returns the value drawn for a (steward, health) pair
func (f *Figure) Value(steward Steward, health Health) (float64, bool) {
	if f == nil {
		return 0, false
	}
	for _, trace := range f.Traces {
		if trace.Name != health {
			continue
		}
		for i, x := range trace.X {
			if x == steward {
				return trace.Y[i], true
			}
		}
	}
	return 0, false
}
