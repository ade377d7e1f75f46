package content

// SectionID names one independently stylable region of the public page.
type SectionID string

const (
	SectionHero          SectionID = "hero"
	SectionAbout         SectionID = "about"
	SectionServices      SectionID = "services"
	SectionTestimonials  SectionID = "testimonials"
	SectionGallery       SectionID = "gallery"
	SectionFAQ           SectionID = "faq"
	SectionContact       SectionID = "contact"
	SectionInspirational SectionID = "inspirational"
	SectionSpecialties   SectionID = "specialties"
)

// ColorSections 可配置背景色的区块，顺序即页面顺序。
var ColorSections = []SectionID{
	SectionHero,
	SectionAbout,
	SectionServices,
	SectionTestimonials,
	SectionGallery,
	SectionFAQ,
	SectionContact,
	SectionInspirational,
}

// VisibilitySections are the sections that can be hidden from the public page.
var VisibilitySections = []SectionID{
	SectionHero,
	SectionAbout,
	SectionSpecialties,
	SectionServices,
	SectionTestimonials,
	SectionGallery,
	SectionFAQ,
	SectionContact,
	SectionInspirational,
}

var sectionLabels = map[SectionID]string{
	SectionHero:          "Início",
	SectionAbout:         "Sobre",
	SectionSpecialties:   "Especialidades",
	SectionServices:      "Serviços",
	SectionTestimonials:  "Depoimentos",
	SectionGallery:       "Galeria",
	SectionFAQ:           "Perguntas frequentes",
	SectionContact:       "Contato",
	SectionInspirational: "Frase inspiradora",
}

// sectionSelectors lists CSS selectors tried in order until one matches a node.
var sectionSelectors = map[SectionID][]string{
	SectionHero:          {"#hero", `section[data-section="hero"]`, ".hero-section", "#home"},
	SectionAbout:         {"#about", `section[data-section="about"]`, ".about-section", "#sobre"},
	SectionServices:      {"#services", `section[data-section="services"]`, ".services-section", "#servicos"},
	SectionTestimonials:  {"#testimonials", `section[data-section="testimonials"]`, ".testimonials-section", "#depoimentos"},
	SectionGallery:       {"#gallery", `section[data-section="gallery"]`, ".gallery-section", "#galeria"},
	SectionFAQ:           {"#faq", `section[data-section="faq"]`, ".faq-section"},
	SectionContact:       {"#contact", `section[data-section="contact"]`, ".contact-section", "#contato"},
	SectionInspirational: {"#inspirational", `section[data-section="inspirational"]`, ".inspirational-section"},
}

// Label returns the admin-facing name of a section.
func (id SectionID) Label() string {
	if label, ok := sectionLabels[id]; ok {
		return label
	}
	return string(id)
}

// Selectors returns a copy of the selector fallbacks for a colourable section.
func (id SectionID) Selectors() []string {
	selectors := sectionSelectors[id]
	out := make([]string, len(selectors))
	copy(out, selectors)
	return out
}

// IsColorSection reports whether id accepts colour overrides.
func IsColorSection(id SectionID) bool {
	_, ok := sectionSelectors[id]
	return ok
}

// IsVisibilitySection reports whether id can be toggled on the public page.
func IsVisibilitySection(id SectionID) bool {
	for _, candidate := range VisibilitySections {
		if candidate == id {
			return true
		}
	}
	return false
}
