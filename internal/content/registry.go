package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ErrMalformedValue 表示配置值不是合法的 JSON 或与该键的结构不符。
var ErrMalformedValue = errors.New("malformed config value")

var registry = map[string]func() Value{
	KeyGeneralInfo:         func() Value { v := DefaultGeneralInfo(); return &v },
	KeyHeroSection:         func() Value { v := DefaultHero(); return &v },
	KeyAboutSection:        func() Value { v := DefaultAbout(); return &v },
	KeyServicesSection:     func() Value { v := DefaultServicesHeading(); return &v },
	KeyTestimonialsSection: func() Value { v := DefaultTestimonialsHeading(); return &v },
	KeyFAQSection:          func() Value { v := DefaultFAQHeading(); return &v },
	KeyGallerySection:      func() Value { v := DefaultGalleryHeading(); return &v },
	KeyInspirational:       func() Value { v := DefaultInspirational(); return &v },
	KeyContactSection:      func() Value { v := DefaultContact(); return &v },
	KeySectionColors:       func() Value { return &SectionColors{} },
	KeySectionVisibility:   func() Value { return &SectionVisibility{} },
}

// Known reports whether key has a typed value.
func Known(key string) bool {
	_, ok := registry[key]
	return ok
}

// New returns the default value for key, ready to be decoded or bound onto.
func New(key string) (Value, bool) {
	factory, ok := registry[key]
	if !ok {
		return nil, false
	}
	return factory(), true
}

// Zero returns an empty value for key, used when a submitted object must not
// inherit built-in copy (each form overwrites its whole key).
func Zero(key string) (Value, bool) {
	switch key {
	case KeyGeneralInfo:
		return &GeneralInfo{}, true
	case KeyHeroSection:
		return &HeroSection{}, true
	case KeyAboutSection:
		return &AboutSection{}, true
	case KeyServicesSection, KeyTestimonialsSection, KeyFAQSection, KeyGallerySection:
		return &SectionHeading{}, true
	case KeyInspirational:
		return &InspirationalSection{}, true
	case KeyContactSection:
		return &ContactSection{}, true
	}
	return New(key)
}

// Decode parses a value submitted for a known key, normalises and validates it.
func Decode(key string, raw []byte) (Value, error) {
	value, ok := Zero(key)
	if !ok {
		return nil, fmt.Errorf("%w: unknown key %q", ErrMalformedValue, key)
	}
	if err := strictUnmarshal(raw, value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedValue, err)
	}
	value.Normalize()
	if err := value.Validate(); err != nil {
		return nil, err
	}
	return value, nil
}

// Encode serialises a value for storage.
func Encode(value Value) ([]byte, error) {
	return json.Marshal(value)
}

func strictUnmarshal(raw []byte, dst interface{}) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return errors.New("value must be a JSON object")
	}
	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	return decoder.Decode(dst)
}

// Keys lists every typed config key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for key := range registry {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
