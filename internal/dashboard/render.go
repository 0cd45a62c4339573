package dashboard

import (
	"fmt"

	"github.com/couchcryptid/uninsured-dashboard/internal/domain"
)

// Renderer filters the table to one year and describes the resulting map.
type Renderer struct {
	records       *domain.RecordSet
	variant       Variant
	echoSelection bool
}

// NewRenderer creates a Renderer over an already loaded table.
func NewRenderer(records *domain.RecordSet, variant Variant) *Renderer {
	if records == nil {
		records = domain.NewRecordSet(nil)
	}
	return &Renderer{records: records, variant: variant}
}

// WithSelectionEcho returns a copy of r whose status text names the selected
// year. The dashboard ships with the echo off.
func (r *Renderer) WithSelectionEcho(on bool) *Renderer {
	cp := *r
	cp.echoSelection = on
	return &cp
}

// Variant returns the display variant.
func (r *Renderer) Variant() Variant {
	return r.variant
}

// Render returns the status text and figure for year. It never fails: a year
// with no rows yields a figure without points.
func (r *Renderer) Render(year int) (string, ChoroplethSpec) {
	rows := r.records.FilterYear(year)

	points := make([]Point, len(rows))
	for i, row := range rows {
		points[i] = Point{
			StateCode: row.StateCode,
			State:     row.DisplayName(),
			Value:     r.variant.value(row.UninsuredRate),
			Hover:     r.variant.hover(row.DisplayName(), row.UninsuredRate),
		}
	}

	palette := make([]string, len(r.variant.Palette))
	copy(palette, r.variant.Palette)

	fig := ChoroplethSpec{
		LocationMode:  "USA-states",
		Scope:         "usa",
		Points:        points,
		ColorRange:    [2]float64{r.variant.ColorMin, r.variant.ColorMax},
		ColorScale:    palette,
		Title:         r.variant.Title,
		ColorbarTitle: r.variant.ColorbarTitle,
		UnitsSuffix:   r.variant.UnitsSuffix,
		TickFormat:    r.variant.TickFormat,
		Attribution:   r.variant.Attribution,
		Template:      "plotly_white",
	}

	return r.status(year), fig
}

func (r *Renderer) status(year int) string {
	if !r.echoSelection {
		return ""
	}
	return fmt.Sprintf("The year chosen by user was: %d", year)
}
