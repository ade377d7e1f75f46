package render

import (
	"html/template"
	"regexp"
	"sort"
	"strings"
)

// DefaultGradient 默认使用的渐变色名称。
const DefaultGradient = "pink-purple"

// Gradient is a named two-colour gradient used for highlighted text and badges.
type Gradient struct {
	Key   string
	Label string
	From  string
	To    string
}

var gradients = map[string]Gradient{
	"pink-purple":   {Key: "pink-purple", Label: "Rosa e roxo", From: "#ec4899", To: "#8b5cf6"},
	"blue-teal":     {Key: "blue-teal", Label: "Azul e verde-água", From: "#3b82f6", To: "#14b8a6"},
	"orange-pink":   {Key: "orange-pink", Label: "Laranja e rosa", From: "#f97316", To: "#ec4899"},
	"green-blue":    {Key: "green-blue", Label: "Verde e azul", From: "#22c55e", To: "#3b82f6"},
	"purple-indigo": {Key: "purple-indigo", Label: "Roxo e índigo", From: "#a855f7", To: "#6366f1"},
	"rose-amber":    {Key: "rose-amber", Label: "Rosa e âmbar", From: "#f43f5e", To: "#f59e0b"},
}

var highlightPattern = regexp.MustCompile(`\(([^)]+)\)`)

// Segment is one run of text; Highlight marks text that was wrapped in parentheses.
type Segment struct {
	Text      string
	Highlight bool
}

// LookupGradient returns the named gradient, falling back to DefaultGradient.
func LookupGradient(key string) Gradient {
	if gradient, ok := gradients[strings.TrimSpace(key)]; ok {
		return gradient
	}
	return gradients[DefaultGradient]
}

// Gradients lists the palette sorted by key, for admin selects.
func Gradients() []Gradient {
	out := make([]Gradient, 0, len(gradients))
	for _, gradient := range gradients {
		out = append(out, gradient)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// CSS returns the background-image value for the gradient.
func (g Gradient) CSS() string {
	return "linear-gradient(to right, " + g.From + ", " + g.To + ")"
}

// ParseGradientText splits text on "(highlight)" markers. There is no escape
// for literal parentheses; an unclosed "(" stays plain and the first ")"
// closes a highlight.
func ParseGradientText(text string) []Segment {
	if text == "" {
		return nil
	}

	var segments []Segment
	last := 0
	for _, loc := range highlightPattern.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] > last {
			segments = append(segments, Segment{Text: text[last:loc[0]]})
		}
		segments = append(segments, Segment{Text: text[loc[2]:loc[3]], Highlight: true})
		last = loc[1]
	}
	if last < len(text) {
		segments = append(segments, Segment{Text: text[last:]})
	}
	return segments
}

// GradientText renders text with highlighted segments painted in the gradient.
func GradientText(text, gradientKey string) template.HTML {
	segments := ParseGradientText(text)
	if len(segments) == 0 {
		return ""
	}

	gradient := LookupGradient(gradientKey)
	var b strings.Builder
	for _, segment := range segments {
		escaped := template.HTMLEscapeString(segment.Text)
		if !segment.Highlight {
			b.WriteString(`<span class="font-semibold">`)
			b.WriteString(escaped)
			b.WriteString(`</span>`)
			continue
		}
		b.WriteString(`<span class="gradient-text font-bold" style="`)
		b.WriteString(gradientFillStyle(gradient))
		b.WriteString(`">`)
		b.WriteString(escaped)
		b.WriteString(`</span>`)
	}
	return template.HTML(b.String())
}

// GradientBadge renders a small uppercase label with a gradient text fill.
func GradientBadge(text, gradientKey string) template.HTML {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	gradient := LookupGradient(gradientKey)
	return template.HTML(`<span class="gradient-badge" style="` + gradientFillStyle(gradient) + `">` +
		template.HTMLEscapeString(strings.ToUpper(trimmed)) + `</span>`)
}

func gradientFillStyle(g Gradient) string {
	return "background-image: " + g.CSS() + "; -webkit-background-clip: text; background-clip: text; color: transparent;"
}
