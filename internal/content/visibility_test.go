package content

import (
	"encoding/json"
	"testing"
)

func TestResolveVisibilityAbsentConfigShowsEverything(t *testing.T) {
	flags := ResolveVisibility(nil)
	if len(flags) != len(VisibilitySections) {
		t.Fatalf("expected %d flags, got %d", len(VisibilitySections), len(flags))
	}
	for _, id := range VisibilitySections {
		if !flags[id] {
			t.Fatalf("expected %s to be visible", id)
		}
	}
}

func TestResolveVisibility(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		hidden []SectionID
	}{
		{name: "hero hidden", raw: `{"hero": false}`, hidden: []SectionID{SectionHero}},
		{name: "explicit true", raw: `{"hero": true}`},
		{name: "several hidden", raw: `{"faq": false, "gallery": false, "about": true}`, hidden: []SectionID{SectionFAQ, SectionGallery}},
		{name: "string false is not false", raw: `{"hero": "false"}`},
		{name: "zero is not false", raw: `{"hero": 0}`},
		{name: "null stays visible", raw: `{"hero": null}`},
		{name: "malformed", raw: `{"hero": fal`},
		{name: "not an object", raw: `[false]`},
		{name: "unknown key ignored", raw: `{"pricing": false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := ResolveVisibility(json.RawMessage(tt.raw))
			hidden := map[SectionID]bool{}
			for _, id := range tt.hidden {
				hidden[id] = true
			}
			for _, id := range VisibilitySections {
				if flags[id] == hidden[id] {
					t.Fatalf("section %s: expected visible=%v, got %v", id, !hidden[id], flags[id])
				}
			}
		})
	}
}

func TestVisibilityVisibleDefaultsToTrueForUnknownSection(t *testing.T) {
	flags := Visibility{SectionHero: false}
	if flags.Visible(SectionHero) {
		t.Fatal("expected hero hidden")
	}
	if !flags.Visible(SectionID("pricing")) {
		t.Fatal("expected unknown section to be visible")
	}
}
