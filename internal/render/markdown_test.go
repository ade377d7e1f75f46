package render

import (
	"strings"
	"testing"
)

func TestMarkdownRendersEmphasis(t *testing.T) {
	out := string(Markdown("Atendimento **online** e presencial."))
	if !strings.Contains(out, "<strong>online</strong>") {
		t.Fatalf("expected strong tag, got %q", out)
	}
}

func TestMarkdownStripsScripts(t *testing.T) {
	out := string(Markdown("Olá <script>alert(1)</script>"))
	if strings.Contains(out, "<script") {
		t.Fatalf("expected script to be sanitised, got %q", out)
	}
}

func TestMarkdownEmpty(t *testing.T) {
	if out := Markdown("   "); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestMarkdownLinksAreNoFollow(t *testing.T) {
	out := string(Markdown("[site](https://example.com)"))
	if !strings.Contains(out, "nofollow") {
		t.Fatalf("expected nofollow on links, got %q", out)
	}
}
