package dashboard

import "math"

// Point is one shaded state on the map.
type Point struct {
	StateCode string  `json:"state_code"`
	State     string  `json:"state"`
	Value     float64 `json:"value"`
	Hover     string  `json:"hover"`
}

// ChoroplethSpec is a declarative description of the map. It carries no
// rendering logic; the page hands it to the charting library.
type ChoroplethSpec struct {
	LocationMode  string     `json:"location_mode"`
	Scope         string     `json:"scope"`
	Points        []Point    `json:"points"`
	ColorRange    [2]float64 `json:"color_range"`
	ColorScale    []string   `json:"color_scale"`
	Title         string     `json:"title"`
	ColorbarTitle string     `json:"colorbar_title"`
	UnitsSuffix   string     `json:"units_suffix,omitempty"`
	TickFormat    string     `json:"tick_format,omitempty"`
	Attribution   string     `json:"attribution,omitempty"`
	Template      string     `json:"template"`
}

// Locations returns the location keys in point order.
func (s ChoroplethSpec) Locations() []string {
	out := make([]string, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.StateCode
	}
	return out
}

// Values returns the color values in point order.
func (s ChoroplethSpec) Values() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Value
	}
	return out
}

// Empty reports whether the figure has no data points.
func (s ChoroplethSpec) Empty() bool {
	return len(s.Points) == 0
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
