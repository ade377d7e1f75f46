package handler

import (
	"html/template"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/psisite/internal/content"
	"github.com/psisite/internal/render"
	"github.com/psisite/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db           *gorm.DB
	configs      *service.ConfigService
	cache        *service.ConfigCache
	offerings    *service.OfferingService
	testimonials *service.TestimonialService
	faqs         *service.FAQService
	gallery      *service.GalleryService
	footer       *service.FooterService
	favicon      *service.FaviconService
	painter      *render.Painter
	templates    *template.Template
	uploadDir    string
	uploadURL    string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(db *gorm.DB, uploadDir, uploadURL string) *API {
	configService := service.NewConfigService(db)

	return &API{
		db:           db,
		configs:      configService,
		cache:        service.NewConfigCache(configService),
		offerings:    service.NewOfferingService(db),
		testimonials: service.NewTestimonialService(db),
		faqs:         service.NewFAQService(db),
		gallery:      service.NewGalleryService(db),
		footer:       service.NewFooterService(db),
		favicon:      service.NewFaviconService(db, uploadDir, uploadURL),
		painter:      render.NewPainter(),
		uploadDir:    uploadDir,
		uploadURL:    uploadURL,
	}
}

// SetTemplates 设置用于服务端渲染公共页面的模板集合
func (a *API) SetTemplates(t *template.Template) {
	a.templates = t
}

// Cache exposes the config cache so callers can warm or invalidate it.
func (a *API) Cache() *service.ConfigCache {
	return a.cache
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}

// renderAdmin 渲染后台页面时附加导航、站点名称与一次性提示
func (a *API) renderAdmin(c *gin.Context, status int, name string, data gin.H) {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["siteName"]; !exists {
		payload["siteName"] = a.cache.SiteContent().General.SiteName
	}
	if _, exists := payload["navForms"]; !exists {
		payload["navForms"] = content.Forms()
	}
	if _, exists := payload["username"]; !exists {
		payload["username"] = currentUsername(c)
	}
	if _, exists := payload["flash"]; !exists {
		if flash, ok := popFlash(c); ok {
			payload["flash"] = flash
		}
	}

	c.HTML(status, name, payload)
}

func logHandlerError(scope string, err error) {
	if err != nil {
		log.Printf("[%s] %v", scope, err)
	}
}
