package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/psisite/internal/content"
)

const samplePage = `<!DOCTYPE html><html><head><title>t</title></head><body>
<section id="hero" style="color: #111"><h1>Olá</h1><p>Texto</p><a href="#contact">Agendar consulta</a><a href="#about">Saiba mais</a></section>
<section data-section="about"><h2>Sobre</h2></section>
<section class="faq-section"><h2>FAQ</h2><button class="scheduling-button">Fale comigo</button></section>
</body></html>`

func quietPainter(logs *[]string) *Painter {
	p := NewPainter()
	p.SetLogger(func(format string, args ...interface{}) {
		if logs != nil {
			*logs = append(*logs, format)
		}
	})
	return p
}

func overlayInput() PaintInput {
	return PaintInput{
		Colors: content.SectionColors{
			content.SectionHero: {
				BackgroundType:    content.BackgroundGradient,
				GradientColors:    []string{"#ec4899", "#8b5cf6"},
				GradientDirection: "to-r",
				Opacity:           ratio(0.9),
				OverlayColor:      "#000000",
				OverlayOpacity:    ratio(0.4),
			},
			content.SectionAbout: {BackgroundType: content.BackgroundSolid, BackgroundColor: "#fdf2f8"},
		},
		SchedulingColor: "#16a34a",
	}
}

func TestPaintHTMLIsIdempotent(t *testing.T) {
	p := quietPainter(nil)

	once, report, err := p.PaintHTML([]byte(samplePage), overlayInput())
	if err != nil {
		t.Fatalf("first paint failed: %v", err)
	}
	if len(report.Painted) != 2 {
		t.Fatalf("expected two painted sections, got %#v", report)
	}

	twice, _, err := p.PaintHTML(once, overlayInput())
	if err != nil {
		t.Fatalf("second paint failed: %v", err)
	}
	if !bytes.Equal(once, twice) {
		t.Fatalf("expected painting to converge\nonce:  %s\ntwice: %s", once, twice)
	}
	if got := strings.Count(string(twice), OverlayClass); got != 1 {
		t.Fatalf("expected exactly one overlay, got %d", got)
	}
}

func TestPaintAppliesSectionStyles(t *testing.T) {
	out, _, err := quietPainter(nil).PaintHTML([]byte(samplePage), overlayInput())
	if err != nil {
		t.Fatalf("paint failed: %v", err)
	}
	html := string(out)

	if !strings.Contains(html, `<section id="hero" style="color: #111; position: relative; background-image: linear-gradient(to right, #ec4899, #8b5cf6); opacity: 0.9">`) {
		t.Fatalf("hero style not applied as expected: %s", html)
	}
	if !strings.Contains(html, `<h1 style="position: relative; z-index: 1">`) {
		t.Fatalf("expected hero children to be promoted above overlay: %s", html)
	}
	if !strings.Contains(html, `<section data-section="about" style="background-color: #fdf2f8">`) {
		t.Fatalf("expected about resolved via fallback selector: %s", html)
	}
	overlayAt := strings.Index(html, OverlayClass)
	heroEnd := strings.Index(html, "</section>")
	if overlayAt < 0 || overlayAt > heroEnd {
		t.Fatalf("expected overlay inside hero section: %s", html)
	}
	if !strings.Contains(html, `background-color: #000000; opacity: 0.4; pointer-events: none; z-index: 0`) {
		t.Fatalf("unexpected overlay style: %s", html)
	}
}

func TestPaintReplacesPreviousOverrides(t *testing.T) {
	p := quietPainter(nil)
	first, _, err := p.PaintHTML([]byte(samplePage), overlayInput())
	if err != nil {
		t.Fatalf("paint failed: %v", err)
	}

	next := PaintInput{Colors: content.SectionColors{
		content.SectionHero: {BackgroundType: content.BackgroundSolid, BackgroundColor: "#ffffff"},
	}}
	out, _, err := p.PaintHTML(first, next)
	if err != nil {
		t.Fatalf("repaint failed: %v", err)
	}
	html := string(out)
	if strings.Contains(html, "linear-gradient(to right, #ec4899") {
		t.Fatalf("expected old gradient stripped: %s", html)
	}
	if strings.Contains(html, OverlayClass) {
		t.Fatalf("expected overlay removed when no longer configured: %s", html)
	}
	if !strings.Contains(html, "background-color: #ffffff") {
		t.Fatalf("expected new colour: %s", html)
	}
}

func TestPaintSkipsUnresolvedSections(t *testing.T) {
	var logs []string
	p := quietPainter(&logs)

	in := PaintInput{Colors: content.SectionColors{
		content.SectionGallery: {BackgroundType: content.BackgroundSolid, BackgroundColor: "#eeeeee"},
		content.SectionAbout:   {BackgroundType: content.BackgroundSolid, BackgroundColor: "#fdf2f8"},
	}}
	out, report, err := p.PaintHTML([]byte(samplePage), in)
	if err != nil {
		t.Fatalf("paint failed: %v", err)
	}
	if len(report.Missing) != 1 || report.Missing[0] != content.SectionGallery {
		t.Fatalf("expected gallery to be reported missing, got %#v", report)
	}
	if len(logs) != 1 {
		t.Fatalf("expected one diagnostic log, got %d", len(logs))
	}
	if !strings.Contains(string(out), "background-color: #fdf2f8") {
		t.Fatal("expected other sections to still be painted")
	}
}

func TestPaintSchedulingButtons(t *testing.T) {
	out, report, err := quietPainter(nil).PaintHTML([]byte(samplePage), PaintInput{SchedulingColor: "#16a34a"})
	if err != nil {
		t.Fatalf("paint failed: %v", err)
	}
	html := string(out)

	if report.SchedulingButtons != 2 {
		t.Fatalf("expected two scheduling elements, got %d", report.SchedulingButtons)
	}
	if !strings.Contains(html, `<a href="#contact" style="background-color: #16a34a">Agendar consulta</a>`) {
		t.Fatalf("expected booking link to be coloured: %s", html)
	}
	if !strings.Contains(html, `<a href="#about">Saiba mais</a>`) {
		t.Fatalf("expected unrelated link untouched: %s", html)
	}
	if !strings.Contains(html, `<button class="scheduling-button" style="background-color: #16a34a">Fale comigo</button>`) {
		t.Fatalf("expected marker class to opt in: %s", html)
	}
}

func TestPaintHTMLNoopWithoutInput(t *testing.T) {
	src := []byte(samplePage)
	out, _, err := quietPainter(nil).PaintHTML(src, PaintInput{SchedulingColor: "javascript:alert(1)"})
	if err != nil {
		t.Fatalf("paint failed: %v", err)
	}
	if !bytes.Equal(out, src) {
		t.Fatal("expected source to be returned untouched")
	}
}

func TestIsSchedulingLabel(t *testing.T) {
	for label, want := range map[string]bool{
		"Agendar consulta": true,
		"AGENDAR":          true,
		"Primeira consulta": true,
		"Saiba mais":       false,
		"Consultório":      false,
	} {
		if got := IsSchedulingLabel(label); got != want {
			t.Fatalf("IsSchedulingLabel(%q) = %v, want %v", label, got, want)
		}
	}
}
