package handler

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/psisite/internal/content"
	"github.com/psisite/internal/db"
	"github.com/psisite/internal/render"
)

// homePage 是公共首页模板的数据
type homePage struct {
	Site          content.SiteContent
	Visibility    content.Visibility
	Gradient      string
	HeroGradient  string
	SchedulingURL string
	WhatsAppLink  string
	FaviconURL    string
	Specialties   []string
	Services      []db.ServiceOffering
	Testimonials  []db.Testimonial
	FAQ           []db.FAQItem
	Gallery       []db.GalleryImage
	Footer        db.FooterSettings
	Year          int
}

// ShowHome renders the landing page, then paints section colours and
// scheduling buttons onto the finished HTML in a single pass.
func (a *API) ShowHome(c *gin.Context) {
	if a.templates == nil {
		respondError(c, http.StatusInternalServerError, "templates not configured")
		return
	}

	page := a.buildHomePage()

	var buf bytes.Buffer
	if err := a.templates.ExecuteTemplate(&buf, "home.html", page); err != nil {
		logHandlerError("public", err)
		c.String(http.StatusInternalServerError, "Erro ao carregar a página")
		return
	}

	out := buf.Bytes()
	painted, _, err := a.painter.PaintHTML(out, render.PaintInput{
		Colors:          page.Site.Colors,
		SchedulingColor: page.Site.General.SchedulingButtonColor,
	})
	if err != nil {
		logHandlerError("painter", err)
	} else {
		out = painted
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", out)
}

func (a *API) buildHomePage() homePage {
	site := a.cache.SiteContent()

	gradient := site.General.Gradient
	if gradient == "" {
		gradient = render.DefaultGradient
	}
	heroGradient := site.Hero.Gradient
	if heroGradient == "" {
		heroGradient = gradient
	}

	page := homePage{
		Site:          site,
		Visibility:    site.Visibility,
		Gradient:      gradient,
		HeroGradient:  heroGradient,
		SchedulingURL: site.General.SchedulingURL,
		WhatsAppLink:  site.Contact.WhatsAppLink(),
		FaviconURL:    a.favicon.URL(),
		Specialties:   site.About.CredentialList(),
		Year:          time.Now().Year(),
	}
	if page.SchedulingURL == "" {
		page.SchedulingURL = page.WhatsAppLink
	}

	var err error
	if site.Visibility.Visible(content.SectionServices) {
		page.Services, err = a.offerings.List(false)
		logHandlerError("public", err)
	}
	if site.Visibility.Visible(content.SectionTestimonials) {
		page.Testimonials, err = a.testimonials.List(false)
		logHandlerError("public", err)
	}
	if site.Visibility.Visible(content.SectionFAQ) {
		page.FAQ, err = a.faqs.List(false)
		logHandlerError("public", err)
	}
	if site.Visibility.Visible(content.SectionGallery) {
		page.Gallery, err = a.gallery.List(false)
		logHandlerError("public", err)
	}
	if page.Footer, err = a.footer.Get(); err != nil {
		logHandlerError("public", err)
	}
	return page
}

// GetPublicConfig 返回前端需要的站点级信息
func (a *API) GetPublicConfig(c *gin.Context) {
	site := a.cache.SiteContent()
	c.JSON(http.StatusOK, gin.H{
		"faviconUrl": a.favicon.URL(),
		"siteName":   site.General.SiteName,
	})
}

// FaviconRedirect 将 /favicon.ico 重定向到已上传的图标
func (a *API) FaviconRedirect(c *gin.Context) {
	url := a.favicon.URL()
	if url == "" {
		c.Status(http.StatusNotFound)
		return
	}
	c.Redirect(http.StatusFound, url)
}

// HealthCheck reports whether the database answers.
func (a *API) HealthCheck(c *gin.Context) {
	sqlDB, err := a.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		logHandlerError("health", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
