package content

import (
	"bytes"
	"encoding/json"
)

// Visibility holds one flag per section. Sections missing from the map are visible.
type Visibility map[SectionID]bool

// Visible reports whether the section should be rendered.
func (v Visibility) Visible(id SectionID) bool {
	visible, ok := v[id]
	return !ok || visible
}

// ResolveVisibility maps the raw section_visibility value to a flag for every
// known section. Only an explicit JSON false hides a section; a missing or
// malformed value, a missing key or a non-boolean value all leave it visible.
func ResolveVisibility(raw json.RawMessage) Visibility {
	flags := make(Visibility, len(VisibilitySections))
	for _, id := range VisibilitySections {
		flags[id] = true
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return flags
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return flags
	}

	for _, id := range VisibilitySections {
		value, ok := entries[string(id)]
		if !ok {
			continue
		}
		if string(bytes.TrimSpace(value)) == "false" {
			flags[id] = false
		}
	}
	return flags
}
