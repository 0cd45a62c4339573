package dashboard

import "strconv"

// Component IDs shared by the page and the event names.
const (
	StatusID = "output_container"
	GraphID  = "uninsured_map"
	SliderID = "slct_year"

	// YearChanged fires when the slider value changes.
	YearChanged = SliderID + ".value"
)

// Slider bounds for the shipped data.
const (
	FirstYear   = 2008
	LastYear    = 2018
	DefaultYear = 2010
)

// Mark is a labeled slider tick.
type Mark struct {
	Value      int    `json:"value"`
	Label      string `json:"label"`
	Annotation string `json:"annotation,omitempty"`
}

// Slider describes the year selector.
type Slider struct {
	ID    string `json:"id"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Step  int    `json:"step"`
	Value int    `json:"value"`
	// UpdateMode is "drag" (fire while moving) or "mouseup".
	UpdateMode string `json:"update_mode"`
	Marks      []Mark `json:"marks"`
}

// Layout is the static widget tree of the page.
type Layout struct {
	Title         string `json:"title"`
	StatusID      string `json:"status_id"`
	GraphID       string `json:"graph_id"`
	HideModeBar   bool   `json:"hide_mode_bar"`
	Slider        Slider `json:"slider"`
	ChangeEvent   string `json:"change_event"`
	InitialYear   int    `json:"initial_year"`
	InitialStatus string `json:"initial_status"`
}

// yearAnnotations marks policy-change years on the slider.
var yearAnnotations = map[int]string{
	2014: "ACA coverage expansion",
}

// DefaultLayout returns the page layout with one mark per year.
func DefaultLayout(title string) Layout {
	marks := make([]Mark, 0, LastYear-FirstYear+1)
	for y := FirstYear; y <= LastYear; y++ {
		marks = append(marks, Mark{
			Value:      y,
			Label:      strconv.Itoa(y),
			Annotation: yearAnnotations[y],
		})
	}

	return Layout{
		Title:       title,
		StatusID:    StatusID,
		GraphID:     GraphID,
		HideModeBar: true,
		Slider: Slider{
			ID:         SliderID,
			Min:        FirstYear,
			Max:        LastYear,
			Step:       1,
			Value:      DefaultYear,
			UpdateMode: "drag",
			Marks:      marks,
		},
		ChangeEvent: YearChanged,
		InitialYear: DefaultYear,
	}
}
