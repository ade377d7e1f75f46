package content

import "strings"

// Config keys owned by the admin forms.
const (
	KeyGeneralInfo         = "general_info"
	KeyHeroSection         = "hero_section"
	KeyAboutSection        = "about_section"
	KeyServicesSection     = "services_section"
	KeyTestimonialsSection = "testimonials_section"
	KeyFAQSection          = "faq_section"
	KeyGallerySection      = "gallery_section"
	KeyInspirational       = "inspirational_section"
	KeyContactSection      = "contact_section"
	KeySectionColors       = "section_colors"
	KeySectionVisibility   = "section_visibility"
)

// Value is a typed config value that can clean itself up and check its own rules.
type Value interface {
	Normalize()
	Validate() error
}

// GeneralInfo 站点级信息，包括预约按钮的覆盖颜色。
type GeneralInfo struct {
	SiteName              string `json:"siteName" form:"siteName" binding:"required,max=120"`
	Tagline               string `json:"tagline" form:"tagline" binding:"max=200"`
	CRP                   string `json:"crp" form:"crp" binding:"max=40"`
	SchedulingURL         string `json:"schedulingUrl" form:"schedulingUrl" binding:"omitempty,url"`
	SchedulingButtonColor string `json:"schedulingButtonColor" form:"schedulingButtonColor" binding:"omitempty,iscolor"`
	Gradient              string `json:"gradient" form:"gradient" binding:"max=40"`
}

func (g *GeneralInfo) Normalize() {
	trimFields(&g.SiteName, &g.Tagline, &g.CRP, &g.SchedulingURL, &g.SchedulingButtonColor, &g.Gradient)
}

func (g *GeneralInfo) Validate() error { return validateStruct(g) }

// HeroSection is the first screen of the page. Title and subtitle may use (word) highlights.
type HeroSection struct {
	Badge       string `json:"badge" form:"badge" binding:"max=80"`
	Title       string `json:"title" form:"title" binding:"required,max=200"`
	Subtitle    string `json:"subtitle" form:"subtitle" binding:"required,max=600"`
	ButtonText1 string `json:"buttonText1" form:"buttonText1" binding:"max=60"`
	ButtonText2 string `json:"buttonText2" form:"buttonText2" binding:"max=60"`
	Gradient    string `json:"gradient" form:"gradient" binding:"max=40"`
}

func (h *HeroSection) Normalize() {
	trimFields(&h.Badge, &h.Title, &h.Subtitle, &h.ButtonText1, &h.ButtonText2, &h.Gradient)
}

func (h *HeroSection) Validate() error { return validateStruct(h) }

// AboutSection 关于区块，Description 为 Markdown。
type AboutSection struct {
	Badge       string `json:"badge" form:"badge" binding:"max=80"`
	Title       string `json:"title" form:"title" binding:"required,max=200"`
	Subtitle    string `json:"subtitle" form:"subtitle" binding:"max=300"`
	Description string `json:"description" form:"description" binding:"required"`
	ImageURL    string `json:"imageUrl" form:"imageUrl" binding:"max=500"`
	// Credentials 每行一条资质，例如 "CRP 06/123456"
	Credentials string `json:"credentials" form:"credentials" binding:"max=1000"`
}

func (a *AboutSection) Normalize() {
	trimFields(&a.Badge, &a.Title, &a.Subtitle, &a.Description, &a.ImageURL, &a.Credentials)
}

// CredentialList splits Credentials into non-empty lines.
func (a AboutSection) CredentialList() []string {
	var out []string
	for _, line := range strings.Split(a.Credentials, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (a *AboutSection) Validate() error { return validateStruct(a) }

// SectionHeading is the badge/title/description block above a list section.
type SectionHeading struct {
	Badge       string `json:"badge" form:"badge" binding:"max=80"`
	Title       string `json:"title" form:"title" binding:"required,max=200"`
	Description string `json:"description" form:"description" binding:"max=600"`
}

func (s *SectionHeading) Normalize() {
	trimFields(&s.Badge, &s.Title, &s.Description)
}

func (s *SectionHeading) Validate() error { return validateStruct(s) }

// InspirationalSection is the quote banner.
type InspirationalSection struct {
	Quote  string `json:"quote" form:"quote" binding:"required,max=500"`
	Author string `json:"author" form:"author" binding:"max=120"`
}

func (i *InspirationalSection) Normalize() {
	trimFields(&i.Quote, &i.Author)
}

func (i *InspirationalSection) Validate() error { return validateStruct(i) }

// ContactSection 联系方式区块
type ContactSection struct {
	Badge       string `json:"badge" form:"badge" binding:"max=80"`
	Title       string `json:"title" form:"title" binding:"required,max=200"`
	Description string `json:"description" form:"description" binding:"max=600"`
	Phone       string `json:"phone" form:"phone" binding:"max=40"`
	Email       string `json:"email" form:"email" binding:"omitempty,email"`
	Address     string `json:"address" form:"address" binding:"max=255"`
	WhatsApp    string `json:"whatsapp" form:"whatsapp" binding:"max=40"`
	Hours       string `json:"hours" form:"hours" binding:"max=200"`
}

func (c *ContactSection) Normalize() {
	trimFields(&c.Badge, &c.Title, &c.Description, &c.Phone, &c.Email, &c.Address, &c.WhatsApp, &c.Hours)
}

func (c *ContactSection) Validate() error { return validateStruct(c) }

// WhatsAppLink builds a wa.me link from the digits of the configured number.
func (c ContactSection) WhatsAppLink() string {
	var digits strings.Builder
	for _, r := range c.WhatsApp {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return ""
	}
	return "https://wa.me/" + digits.String()
}

func trimFields(fields ...*string) {
	for _, field := range fields {
		*field = strings.TrimSpace(*field)
	}
}
