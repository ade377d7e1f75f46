package render

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/psisite/internal/content"
)

var gradientDirections = map[string]string{
	"to-t":  "to top",
	"to-tr": "to top right",
	"to-r":  "to right",
	"to-br": "to bottom right",
	"to-b":  "to bottom",
	"to-bl": "to bottom left",
	"to-l":  "to left",
	"to-tl": "to top left",
}

const defaultGradientDirection = "to bottom right"

// colours are written into style attributes, so only plain colour syntax passes
var safeColorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|(rgb|rgba|hsl|hsla)\([0-9.,%\s]+\))$`)

// Declaration is one CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// Overlay is a translucent layer between a section's background and its content.
type Overlay struct {
	Color   string
	Opacity float64
}

// StyleDescriptor is the computed override for one section.
type StyleDescriptor struct {
	Section      content.SectionID
	Declarations []Declaration
	Overlay      *Overlay
}

// Empty reports whether the descriptor changes nothing.
func (d StyleDescriptor) Empty() bool {
	return len(d.Declarations) == 0 && d.Overlay == nil
}

// GradientDirection maps a direction token such as "to-tl" to its CSS keyword,
// defaulting to bottom right.
func GradientDirection(token string) string {
	if direction, ok := gradientDirections[strings.TrimSpace(token)]; ok {
		return direction
	}
	return defaultGradientDirection
}

// SafeColor reports whether value is a hex/rgb/hsl colour.
func SafeColor(value string) bool {
	return safeColorPattern.MatchString(strings.TrimSpace(value))
}

// Describe computes the style override for one section spec.
func Describe(id content.SectionID, spec content.SectionColorSpec) StyleDescriptor {
	desc := StyleDescriptor{Section: id}

	switch spec.BackgroundType {
	case content.BackgroundGradient:
		if len(spec.GradientColors) >= 2 && SafeColor(spec.GradientColors[0]) && SafeColor(spec.GradientColors[1]) {
			desc.Declarations = append(desc.Declarations, Declaration{
				Property: "background-image",
				Value: "linear-gradient(" + GradientDirection(spec.GradientDirection) + ", " +
					strings.TrimSpace(spec.GradientColors[0]) + ", " + strings.TrimSpace(spec.GradientColors[1]) + ")",
			})
		}
	case content.BackgroundSolid, content.BackgroundPattern:
		if SafeColor(spec.BackgroundColor) {
			desc.Declarations = append(desc.Declarations, Declaration{
				Property: "background-color",
				Value:    strings.TrimSpace(spec.BackgroundColor),
			})
		}
	}

	if spec.Opacity != nil && *spec.Opacity != 1 && *spec.Opacity >= 0 && *spec.Opacity <= 1 {
		desc.Declarations = append(desc.Declarations, Declaration{Property: "opacity", Value: formatRatio(*spec.Opacity)})
	}

	if SafeColor(spec.OverlayColor) && spec.OverlayOpacity != nil && *spec.OverlayOpacity > 0 {
		opacity := *spec.OverlayOpacity
		if opacity > 1 {
			opacity = 1
		}
		desc.Overlay = &Overlay{Color: strings.TrimSpace(spec.OverlayColor), Opacity: opacity}
	}

	return desc
}

// Descriptors computes descriptors for every configured colour section in page order.
func Descriptors(colors content.SectionColors) []StyleDescriptor {
	out := make([]StyleDescriptor, 0, len(colors))
	for _, id := range content.ColorSections {
		spec, ok := colors[id]
		if !ok {
			continue
		}
		out = append(out, Describe(id, spec))
	}
	return out
}

// declarations is the inline style for the overlay node.
func (o Overlay) declarations() []Declaration {
	return []Declaration{
		{Property: "position", Value: "absolute"},
		{Property: "inset", Value: "0"},
		{Property: "background-color", Value: o.Color},
		{Property: "opacity", Value: formatRatio(o.Opacity)},
		{Property: "pointer-events", Value: "none"},
		{Property: "z-index", Value: "0"},
	}
}

func formatRatio(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
