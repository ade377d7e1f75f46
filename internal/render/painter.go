package render

import (
	"bytes"
	"log"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/psisite/internal/content"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	// OverlayClass marks overlay nodes inserted by the painter.
	OverlayClass = "section-color-overlay"
	// SchedulingButtonClass opts an element into the scheduling colour override.
	SchedulingButtonClass = "scheduling-button"
)

// properties removed from a section before a descriptor is applied
var paintedProperties = []string{"background", "background-color", "background-image", "opacity"}

var schedulingKeywords = []string{"agendar", "consulta"}

// PaintInput is everything the painter needs from config.
type PaintInput struct {
	Colors          content.SectionColors
	SchedulingColor string
}

// PaintReport summarises one painting pass.
type PaintReport struct {
	Painted           []content.SectionID
	Missing           []content.SectionID
	SchedulingButtons int
}

// Painter applies section colour descriptors to a rendered HTML tree. Painting
// the same input repeatedly converges to the same tree.
type Painter struct {
	selectors map[content.SectionID][]cascadia.Selector
	logf      func(format string, args ...interface{})
}

// NewPainter compiles the selector fallbacks of every colourable section.
func NewPainter() *Painter {
	p := &Painter{
		selectors: make(map[content.SectionID][]cascadia.Selector, len(content.ColorSections)),
		logf:      log.Printf,
	}
	for _, id := range content.ColorSections {
		for _, raw := range id.Selectors() {
			sel, err := cascadia.Compile(raw)
			if err != nil {
				p.logf("[painter] skipping invalid selector %q for %s: %v", raw, id, err)
				continue
			}
			p.selectors[id] = append(p.selectors[id], sel)
		}
	}
	return p
}

// SetLogger replaces the diagnostic logger, mainly for tests.
func (p *Painter) SetLogger(logf func(format string, args ...interface{})) {
	if logf == nil {
		logf = func(string, ...interface{}) {}
	}
	p.logf = logf
}

// PaintHTML parses src, paints it and renders the result. With nothing to
// apply it returns src untouched.
func (p *Painter) PaintHTML(src []byte, in PaintInput) ([]byte, PaintReport, error) {
	if len(in.Colors) == 0 && !SafeColor(in.SchedulingColor) {
		return src, PaintReport{}, nil
	}

	doc, err := html.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, PaintReport{}, err
	}

	report := p.Paint(doc, in)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, report, err
	}
	return buf.Bytes(), report, nil
}

// Paint applies the input to doc in place.
func (p *Painter) Paint(doc *html.Node, in PaintInput) PaintReport {
	var report PaintReport

	for _, desc := range Descriptors(in.Colors) {
		node := p.resolve(doc, desc.Section)
		if node == nil {
			p.logf("[painter] no element matched section %s (tried %s)", desc.Section, strings.Join(desc.Section.Selectors(), ", "))
			report.Missing = append(report.Missing, desc.Section)
			continue
		}
		paintSection(node, desc)
		report.Painted = append(report.Painted, desc.Section)
	}

	if SafeColor(in.SchedulingColor) {
		report.SchedulingButtons = paintSchedulingButtons(doc, strings.TrimSpace(in.SchedulingColor))
	}

	return report
}

func (p *Painter) resolve(doc *html.Node, id content.SectionID) *html.Node {
	for _, sel := range p.selectors[id] {
		if node := sel.MatchFirst(doc); node != nil {
			return node
		}
	}
	return nil
}

func paintSection(node *html.Node, desc StyleDescriptor) {
	style := parseStyle(attr(node, "style"))
	for _, property := range paintedProperties {
		style = style.without(property)
	}

	if desc.Overlay != nil {
		if position := style.get("position"); position == "" || position == "static" {
			style = style.set("position", "relative")
		}
	}

	for _, decl := range desc.Declarations {
		style = style.set(decl.Property, decl.Value)
	}
	setAttr(node, "style", style.String())

	removeOverlays(node)
	if desc.Overlay == nil {
		return
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}
		childStyle := parseStyle(attr(child, "style"))
		if position := childStyle.get("position"); position == "" || position == "static" {
			childStyle = childStyle.set("position", "relative")
		}
		if childStyle.get("z-index") == "" {
			childStyle = childStyle.set("z-index", "1")
		}
		setAttr(child, "style", childStyle.String())
	}

	overlay := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
		Attr: []html.Attribute{
			{Key: "class", Val: OverlayClass},
			{Key: "aria-hidden", Val: "true"},
			{Key: "style", Val: styleDecls(desc.Overlay.declarations()).String()},
		},
	}
	node.AppendChild(overlay)
}

func removeOverlays(node *html.Node) {
	for child := node.FirstChild; child != nil; {
		next := child.NextSibling
		if child.Type == html.ElementNode && hasClass(child, OverlayClass) {
			node.RemoveChild(child)
		}
		child = next
	}
}

func paintSchedulingButtons(doc *html.Node, color string) int {
	count := 0
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && isSchedulingElement(n) {
			style := parseStyle(attr(n, "style")).set("background-color", color)
			setAttr(n, "style", style.String())
			count++
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return count
}

func isSchedulingElement(n *html.Node) bool {
	if hasClass(n, SchedulingButtonClass) {
		return true
	}
	if n.DataAtom != atom.Button && n.DataAtom != atom.A {
		return false
	}
	return IsSchedulingLabel(textContent(n))
}

// IsSchedulingLabel reports whether a button label reads like a booking action.
func IsSchedulingLabel(label string) bool {
	lower := strings.ToLower(label)
	for _, keyword := range schedulingKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, value string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			if value == "" {
				n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
				return
			}
			n.Attr[i].Val = value
			return
		}
	}
	if value != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
	}
}

func hasClass(n *html.Node, class string) bool {
	for _, candidate := range strings.Fields(attr(n, "class")) {
		if candidate == class {
			return true
		}
	}
	return false
}

// styleDecls is an ordered inline style attribute.
type styleDecls []Declaration

func parseStyle(raw string) styleDecls {
	var decls styleDecls
	for _, part := range strings.Split(raw, ";") {
		pieces := strings.SplitN(part, ":", 2)
		if len(pieces) != 2 {
			continue
		}
		property := strings.ToLower(strings.TrimSpace(pieces[0]))
		value := strings.TrimSpace(pieces[1])
		if property == "" || value == "" {
			continue
		}
		decls = decls.set(property, value)
	}
	return decls
}

func (s styleDecls) get(property string) string {
	for _, decl := range s {
		if decl.Property == property {
			return decl.Value
		}
	}
	return ""
}

func (s styleDecls) set(property, value string) styleDecls {
	for i, decl := range s {
		if decl.Property == property {
			s[i].Value = value
			return s
		}
	}
	return append(s, Declaration{Property: property, Value: value})
}

func (s styleDecls) without(property string) styleDecls {
	out := s[:0]
	for _, decl := range s {
		if decl.Property != property {
			out = append(out, decl)
		}
	}
	return out
}

func (s styleDecls) String() string {
	parts := make([]string, 0, len(s))
	for _, decl := range s {
		parts = append(parts, decl.Property+": "+decl.Value)
	}
	return strings.Join(parts, "; ")
}
