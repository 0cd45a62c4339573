package dashboard

// PlotlyFigure is the {data, layout} pair accepted by Plotly.react.
type PlotlyFigure struct {
	Data   []PlotlyTrace `json:"data"`
	Layout PlotlyLayout  `json:"layout"`
}

// PlotlyTrace is a single choropleth trace.
type PlotlyTrace struct {
	Type          string         `json:"type"`
	LocationMode  string         `json:"locationmode"`
	Locations     []string       `json:"locations"`
	Z             []float64      `json:"z"`
	Text          []string       `json:"text"`
	HoverTemplate string         `json:"hovertemplate"`
	ColorScale    [][2]any       `json:"colorscale,omitempty"`
	ZMin          float64        `json:"zmin"`
	ZMax          float64        `json:"zmax"`
	ZAuto         bool           `json:"zauto"`
	ColorBar      PlotlyColorBar `json:"colorbar"`
}

// PlotlyColorBar configures the color legend.
type PlotlyColorBar struct {
	Title      PlotlyText `json:"title"`
	TickSuffix string     `json:"ticksuffix,omitempty"`
	TickFormat string     `json:"tickformat,omitempty"`
}

// PlotlyText wraps a text attribute.
type PlotlyText struct {
	Text string `json:"text"`
}

// PlotlyLayout is the figure layout.
type PlotlyLayout struct {
	Title        PlotlyText         `json:"title"`
	Geo          PlotlyGeo          `json:"geo"`
	Margin       PlotlyMargin       `json:"margin"`
	Annotations  []PlotlyAnnotation `json:"annotations,omitempty"`
	PaperBGColor string             `json:"paper_bgcolor"`
	PlotBGColor  string             `json:"plot_bgcolor"`
}

// PlotlyGeo limits the map to a scope.
type PlotlyGeo struct {
	Scope   string `json:"scope"`
	BGColor string `json:"bgcolor"`
}

// PlotlyMargin is the figure margin in pixels.
type PlotlyMargin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// PlotlyAnnotation is free text placed in paper coordinates.
type PlotlyAnnotation struct {
	Text      string  `json:"text"`
	ShowArrow bool    `json:"showarrow"`
	XRef      string  `json:"xref"`
	YRef      string  `json:"yref"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	XAnchor   string  `json:"xanchor"`
}

// Plotly converts the spec into a Plotly.js figure. Empty specs produce a
// trace with empty (not null) arrays so the map renders blank.
func (s ChoroplethSpec) Plotly() PlotlyFigure {
	text := make([]string, len(s.Points))
	for i, p := range s.Points {
		text[i] = p.Hover
	}

	trace := PlotlyTrace{
		Type:          "choropleth",
		LocationMode:  s.LocationMode,
		Locations:     s.Locations(),
		Z:             s.Values(),
		Text:          text,
		HoverTemplate: "%{text}<extra></extra>",
		ColorScale:    colorScale(s.ColorScale),
		ZMin:          s.ColorRange[0],
		ZMax:          s.ColorRange[1],
		ColorBar: PlotlyColorBar{
			Title:      PlotlyText{Text: s.ColorbarTitle},
			TickSuffix: s.UnitsSuffix,
			TickFormat: s.TickFormat,
		},
	}

	layout := PlotlyLayout{
		Title:        PlotlyText{Text: s.Title},
		Geo:          PlotlyGeo{Scope: s.Scope, BGColor: templateBackground(s.Template)},
		Margin:       PlotlyMargin{L: 0, R: 0, T: 40, B: 40},
		PaperBGColor: templateBackground(s.Template),
		PlotBGColor:  templateBackground(s.Template),
	}
	if s.Attribution != "" {
		layout.Annotations = []PlotlyAnnotation{{
			Text:    s.Attribution,
			XRef:    "paper",
			YRef:    "paper",
			X:       0,
			Y:       -0.05,
			XAnchor: "left",
		}}
	}

	return PlotlyFigure{Data: []PlotlyTrace{trace}, Layout: layout}
}

// colorScale spreads palette evenly over [0, 1].
func colorScale(palette []string) [][2]any {
	switch len(palette) {
	case 0:
		return nil
	case 1:
		return [][2]any{{0.0, palette[0]}, {1.0, palette[0]}}
	}
	out := make([][2]any, len(palette))
	last := float64(len(palette) - 1)
	for i, c := range palette {
		out[i] = [2]any{float64(i) / last, c}
	}
	return out
}

func templateBackground(template string) string {
	if template == "plotly_white" {
		return "#ffffff"
	}
	return "#e5ecf6"
}
