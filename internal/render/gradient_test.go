package render

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseGradientText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Segment
	}{
		{name: "empty", input: "", want: nil},
		{name: "plain only", input: "Sem destaque", want: []Segment{{Text: "Sem destaque"}}},
		{
			name:  "middle highlight",
			input: "A (B) C",
			want:  []Segment{{Text: "A "}, {Text: "B", Highlight: true}, {Text: " C"}},
		},
		{
			name:  "trailing highlight",
			input: "Cuidando da sua (saúde mental)",
			want:  []Segment{{Text: "Cuidando da sua "}, {Text: "saúde mental", Highlight: true}},
		},
		{
			name:  "several highlights",
			input: "(um) e (dois)",
			want:  []Segment{{Text: "um", Highlight: true}, {Text: " e "}, {Text: "dois", Highlight: true}},
		},
		{name: "unclosed paren stays plain", input: "Olá (mundo", want: []Segment{{Text: "Olá (mundo"}}},
		{name: "empty parens stay plain", input: "nada () aqui", want: []Segment{{Text: "nada () aqui"}}},
		{
			name:  "first close paren wins",
			input: "(a (b) c)",
			want:  []Segment{{Text: "a (b", Highlight: true}, {Text: " c)"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseGradientText(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ParseGradientText(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGradientTextRendersSpans(t *testing.T) {
	out := string(GradientText("Cuidando da sua (saúde mental)", ""))

	if !strings.HasPrefix(out, `<span class="font-semibold">Cuidando da sua </span>`) {
		t.Fatalf("expected plain segment first, got %s", out)
	}
	if !strings.Contains(out, `class="gradient-text font-bold"`) || !strings.Contains(out, ">saúde mental</span>") {
		t.Fatalf("expected highlighted segment, got %s", out)
	}
	if !strings.Contains(out, LookupGradient(DefaultGradient).CSS()) {
		t.Fatalf("expected default gradient, got %s", out)
	}
}

func TestGradientTextEscapesHTML(t *testing.T) {
	out := string(GradientText("<b>oi</b> (<i>x</i>)", "blue-teal"))
	if strings.Contains(out, "<b>") || strings.Contains(out, "<i>") {
		t.Fatalf("expected markup to be escaped, got %s", out)
	}
	if !strings.Contains(out, "#14b8a6") {
		t.Fatalf("expected blue-teal gradient, got %s", out)
	}
}

func TestGradientTextEmpty(t *testing.T) {
	if out := GradientText("", ""); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestLookupGradientFallsBack(t *testing.T) {
	if got := LookupGradient("rainbow"); got.Key != DefaultGradient {
		t.Fatalf("expected fallback to %s, got %s", DefaultGradient, got.Key)
	}
}

func TestGradientBadgeUppercases(t *testing.T) {
	out := string(GradientBadge(" sobre mim ", "green-blue"))
	if !strings.Contains(out, ">SOBRE MIM</span>") {
		t.Fatalf("unexpected badge %s", out)
	}
	if GradientBadge("  ", "") != "" {
		t.Fatal("expected empty badge for blank text")
	}
}
