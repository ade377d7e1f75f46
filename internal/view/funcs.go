package view

import (
	"html/template"

	"github.com/psisite/internal/content"
	"github.com/psisite/internal/render"
)

// HeadingData feeds the shared section heading partial.
type HeadingData struct {
	Heading  content.SectionHeading
	Gradient string
}

// FuncMap 模板使用的全部自定义函数
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"gradientText":  render.GradientText,
		"gradientBadge": render.GradientBadge,
		"markdown":      render.Markdown,
		"serviceIcon":   ServiceIconSVG,
		"stars":         Stars,
		"headingData": func(heading content.SectionHeading, gradient string) HeadingData {
			return HeadingData{Heading: heading, Gradient: gradient}
		},
		"add": func(a, b int) int { return a + b },
	}
}

// Stars returns one element per star; ratings outside 1..5 show five.
func Stars(rating int) []int {
	if rating < 1 || rating > 5 {
		rating = 5
	}
	return make([]int, rating)
}
