package content

import (
	"encoding/json"
	"log"
)

// SiteContent is every config-backed value the public page needs, with
// built-in defaults filled in.
type SiteContent struct {
	General          GeneralInfo
	Hero             HeroSection
	About            AboutSection
	ServicesHeading  SectionHeading
	TestimonialsHead SectionHeading
	FAQHeading       SectionHeading
	GalleryHeading   SectionHeading
	Inspirational    InspirationalSection
	Contact          ContactSection
	Colors           SectionColors
	Visibility       Visibility
}

// FromEntries builds SiteContent from raw values keyed by config key. A
// missing or undecodable value never fails the page: it degrades to the
// built-in default and is logged.
func FromEntries(values map[string]json.RawMessage) SiteContent {
	site := SiteContent{
		General:          DefaultGeneralInfo(),
		Hero:             DefaultHero(),
		About:            DefaultAbout(),
		ServicesHeading:  DefaultServicesHeading(),
		TestimonialsHead: DefaultTestimonialsHeading(),
		FAQHeading:       DefaultFAQHeading(),
		GalleryHeading:   DefaultGalleryHeading(),
		Inspirational:    DefaultInspirational(),
		Contact:          DefaultContact(),
		Colors:           SectionColors{},
	}

	overlay(values, KeyGeneralInfo, &site.General, DefaultGeneralInfo())
	overlay(values, KeyHeroSection, &site.Hero, DefaultHero())
	overlay(values, KeyAboutSection, &site.About, DefaultAbout())
	overlay(values, KeyServicesSection, &site.ServicesHeading, DefaultServicesHeading())
	overlay(values, KeyTestimonialsSection, &site.TestimonialsHead, DefaultTestimonialsHeading())
	overlay(values, KeyFAQSection, &site.FAQHeading, DefaultFAQHeading())
	overlay(values, KeyGallerySection, &site.GalleryHeading, DefaultGalleryHeading())
	overlay(values, KeyInspirational, &site.Inspirational, DefaultInspirational())
	overlay(values, KeyContactSection, &site.Contact, DefaultContact())

	if raw, ok := values[KeySectionColors]; ok {
		var colors SectionColors
		if err := json.Unmarshal(raw, &colors); err != nil {
			log.Printf("[content] ignoring malformed %s: %v", KeySectionColors, err)
		} else {
			colors.Normalize()
			site.Colors = colors
		}
	}

	site.Visibility = ResolveVisibility(values[KeySectionVisibility])
	return site
}

// overlay decodes raw onto dst so absent fields keep their defaults; on a
// decode failure dst is reset to fallback.
func overlay[T any, PT interface {
	*T
	Normalize()
}](values map[string]json.RawMessage, key string, dst PT, fallback T) {
	raw, ok := values[key]
	if !ok || len(raw) == 0 {
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Printf("[content] ignoring malformed %s: %v", key, err)
		*dst = fallback
		return
	}
	dst.Normalize()
}
