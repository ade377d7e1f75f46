package content

import (
	"fmt"
	"strings"
)

// Background strategies accepted by SectionColorSpec.BackgroundType.
const (
	BackgroundSolid    = "solid"
	BackgroundGradient = "gradient"
	BackgroundPattern  = "pattern"
)

// GradientDirections is the compass of direction tokens the admin can pick.
var GradientDirections = []string{"to-t", "to-tr", "to-r", "to-br", "to-b", "to-bl", "to-l", "to-tl"}

// SectionColorSpec describes a background override for one section. Unset
// fields mean "leave the static theme alone".
type SectionColorSpec struct {
	BackgroundType    string   `json:"backgroundType"`
	BackgroundColor   string   `json:"backgroundColor,omitempty"`
	GradientColors    []string `json:"gradientColors,omitempty"`
	GradientDirection string   `json:"gradientDirection,omitempty"`
	Opacity           *float64 `json:"opacity,omitempty"`
	OverlayColor      string   `json:"overlayColor,omitempty"`
	OverlayOpacity    *float64 `json:"overlayOpacity,omitempty"`
}

func (s *SectionColorSpec) normalize() {
	s.BackgroundType = strings.ToLower(strings.TrimSpace(s.BackgroundType))
	s.BackgroundColor = strings.TrimSpace(s.BackgroundColor)
	s.GradientDirection = strings.TrimSpace(s.GradientDirection)
	s.OverlayColor = strings.TrimSpace(s.OverlayColor)

	colors := s.GradientColors[:0]
	for _, color := range s.GradientColors {
		if trimmed := strings.TrimSpace(color); trimmed != "" {
			colors = append(colors, trimmed)
		}
	}
	s.GradientColors = colors
	if len(s.GradientColors) == 0 {
		s.GradientColors = nil
	}
}

func (s SectionColorSpec) validate(prefix string, fields FieldErrors) {
	switch s.BackgroundType {
	case BackgroundSolid, BackgroundGradient, BackgroundPattern:
	default:
		fields[prefix+".backgroundType"] = "Tipo de fundo inválido"
	}

	checkColor := func(name, value string) {
		if value == "" {
			return
		}
		if err := validate.Var(value, "iscolor"); err != nil {
			fields[prefix+"."+name] = "Cor inválida"
		}
	}
	checkColor("backgroundColor", s.BackgroundColor)
	checkColor("overlayColor", s.OverlayColor)

	if len(s.GradientColors) > 2 {
		fields[prefix+".gradientColors"] = "Use no máximo duas cores"
	}
	for i, color := range s.GradientColors {
		checkColor(fmt.Sprintf("gradientColors.%d", i), color)
	}

	checkRatio := func(name string, value *float64) {
		if value != nil && (*value < 0 || *value > 1) {
			fields[prefix+"."+name] = "Use um valor entre 0 e 1"
		}
	}
	checkRatio("opacity", s.Opacity)
	checkRatio("overlayOpacity", s.OverlayOpacity)
}

// SectionColors is the section_colors value.
type SectionColors map[SectionID]SectionColorSpec

func (c *SectionColors) Normalize() {
	if *c == nil {
		*c = SectionColors{}
	}
	for id, spec := range *c {
		spec.normalize()
		(*c)[id] = spec
	}
}

func (c *SectionColors) Validate() error {
	fields := FieldErrors{}
	for id, spec := range *c {
		if !IsColorSection(id) {
			fields[string(id)] = "Seção desconhecida"
			continue
		}
		spec.validate(string(id), fields)
	}
	if len(fields) > 0 {
		return fields
	}
	return nil
}

// SectionVisibility is the section_visibility value as written by the admin.
type SectionVisibility map[SectionID]bool

func (v *SectionVisibility) Normalize() {
	if *v == nil {
		*v = SectionVisibility{}
	}
}

func (v *SectionVisibility) Validate() error {
	fields := FieldErrors{}
	for id := range *v {
		if !IsVisibilitySection(id) {
			fields[string(id)] = "Seção desconhecida"
		}
	}
	if len(fields) > 0 {
		return fields
	}
	return nil
}
