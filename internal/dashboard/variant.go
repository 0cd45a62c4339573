package dashboard

import (
	"fmt"
	"strings"
)

// Sequential palettes, light to dark.
var (
	PaletteYlOrRd = []string{
		"#ffffcc", "#ffeda0", "#fed976", "#feb24c", "#fd8d3c",
		"#fc4e2a", "#e31a1c", "#bd0026", "#800026",
	}
	PaletteReds = []string{
		"#fff5f0", "#fee0d2", "#fcbba1", "#fc9272", "#fb6a4a",
		"#ef3b2c", "#cb181d", "#a50f15", "#67000d",
	}
)

const defaultAttribution = "Source: U.S. Census Bureau, American Community Survey 1-year estimates"

// Variant fixes how rates are scaled and colored. The color domain is
// constant across years so maps for different years stay comparable.
type Variant struct {
	Name string

	ColorMin float64
	ColorMax float64
	Palette  []string

	// PercentScale multiplies rates by 100 and rounds to two decimals.
	PercentScale bool

	Title         string
	ColorbarTitle string
	UnitsSuffix   string
	Attribution   string

	// TickFormat is a d3 format for colorbar ticks, e.g. ".0%".
	TickFormat string

	// HoverLabel is the constant label shown before the value on hover.
	HoverLabel string
}

// FractionVariant shows raw fractions on a 0–25% domain.
func FractionVariant() Variant {
	return Variant{
		Name:          "fraction",
		ColorMin:      0,
		ColorMax:      0.25,
		Palette:       PaletteYlOrRd,
		Title:         "Uninsured Rate By State",
		ColorbarTitle: "Percent Uninsured",
		TickFormat:    ".0%",
		HoverLabel:    "Percent Uninsured",
		Attribution:   defaultAttribution,
	}
}

// PercentVariant shows percentages on a 0–40 domain.
func PercentVariant() Variant {
	return Variant{
		Name:          "percent",
		ColorMin:      0,
		ColorMax:      40,
		Palette:       PaletteReds,
		PercentScale:  true,
		Title:         "Uninsured Rate By State",
		ColorbarTitle: "Uninsured",
		UnitsSuffix:   "%",
		HoverLabel:    "Percent Uninsured",
		Attribution:   defaultAttribution,
	}
}

// LookupVariant returns the preset with the given name.
func LookupVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fraction", "":
		return FractionVariant(), nil
	case "percent":
		return PercentVariant(), nil
	}
	return Variant{}, fmt.Errorf("unknown variant %q", name)
}

// value converts a stored fraction into the plotted value.
func (v Variant) value(rate float64) float64 {
	if v.PercentScale {
		return roundTo2(rate * 100)
	}
	return rate
}

// hover formats the hover label for a stored fraction.
func (v Variant) hover(name string, rate float64) string {
	var formatted string
	if v.PercentScale {
		formatted = fmt.Sprintf("%.2f%s", roundTo2(rate*100), v.UnitsSuffix)
	} else {
		formatted = fmt.Sprintf("%.0f%%", rate*100)
	}
	return fmt.Sprintf("%s<br>%s: %s", name, v.HoverLabel, formatted)
}
