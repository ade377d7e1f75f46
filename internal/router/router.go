package router

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/psisite/internal/db"
	"github.com/psisite/internal/handler"
	"github.com/psisite/internal/middleware"
	"github.com/psisite/internal/view"
	"github.com/psisite/web"
	"gorm.io/gorm"
)

const sessionName = "psisite_session"

// Options 配置路由所需的依赖
type Options struct {
	DB            *gorm.DB
	SessionSecret string
	UploadDir     string
	UploadURLPath string
	SecureCookies bool
}

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(opts Options) *gin.Engine {
	gdb := opts.DB
	if gdb == nil {
		gdb = db.DB
	}

	uploadURL := normalizeUploadURL(opts.UploadURLPath)
	uploadDir := strings.TrimSpace(opts.UploadDir)
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	r := gin.Default()
	r.Use(middleware.SecurityHeaders(opts.SecureCookies))

	// 配置会话中间件
	secret := opts.SessionSecret
	if secret == "" {
		log.Printf("[router] SESSION_SECRET not set, using an insecure development secret")
		secret = "psisite-dev-secret"
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   60 * 60 * 12,
		HttpOnly: true,
		Secure:   opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))

	templates, err := web.Templates(view.FuncMap())
	if err != nil {
		log.Fatalf("failed to parse templates: %v", err)
	}
	r.SetHTMLTemplate(templates)

	r.StaticFS("/static", http.FS(web.Static()))
	r.Static(uploadURL, uploadDir)

	api := handler.NewAPI(gdb, uploadDir, uploadURL)
	api.SetTemplates(templates)

	r.GET("/", api.ShowHome)
	r.GET("/healthz", api.HealthCheck)
	r.GET("/favicon.ico", api.FaviconRedirect)

	public := r.Group("/api")
	{
		public.GET("/config", api.GetPublicConfig)
		public.GET("/footer-settings", api.GetFooterSettings)
	}

	adminAPI := r.Group("/api/admin")
	adminAPI.Use(handler.AuthRequired(), middleware.NoStore())
	{
		adminAPI.GET("/config", api.ListConfig)
		adminAPI.POST("/config", api.SaveConfig)

		adminAPI.PUT("/footer-settings", api.UpdateFooterSettings)

		adminAPI.POST("/upload/favicon", api.UploadFavicon)
		adminAPI.DELETE("/upload/favicon", api.DeleteFavicon)

		adminAPI.GET("/services", api.ListOfferings)
		adminAPI.POST("/services", api.CreateOffering)
		adminAPI.POST("/services/reorder", api.ReorderOfferings)
		adminAPI.PUT("/services/:id", api.UpdateOffering)
		adminAPI.DELETE("/services/:id", api.DeleteOffering)

		adminAPI.GET("/testimonials", api.ListTestimonials)
		adminAPI.POST("/testimonials", api.CreateTestimonial)
		adminAPI.POST("/testimonials/reorder", api.ReorderTestimonials)
		adminAPI.PUT("/testimonials/:id", api.UpdateTestimonial)
		adminAPI.DELETE("/testimonials/:id", api.DeleteTestimonial)

		adminAPI.GET("/faq", api.ListFAQ)
		adminAPI.POST("/faq", api.CreateFAQ)
		adminAPI.POST("/faq/reorder", api.ReorderFAQ)
		adminAPI.PUT("/faq/:id", api.UpdateFAQ)
		adminAPI.DELETE("/faq/:id", api.DeleteFAQ)

		adminAPI.GET("/gallery", api.ListGallery)
		adminAPI.POST("/gallery", api.CreateGalleryImage)
		adminAPI.POST("/gallery/reorder", api.ReorderGallery)
		adminAPI.PUT("/gallery/:id", api.UpdateGalleryImage)
		adminAPI.DELETE("/gallery/:id", api.DeleteGalleryImage)
	}

	// 后台管理路由
	admin := r.Group("/admin")
	admin.Use(middleware.NoStore())
	{
		admin.GET("/login", api.ShowLoginPage)
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		// 需要认证的后台路由
		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("", redirectTo("/admin/dashboard"))
			auth.GET("/dashboard", api.ShowDashboard)

			auth.GET("/sections/:key", api.ShowSectionForm)
			auth.POST("/sections/:key", api.SubmitSectionForm)

			auth.GET("/colors", api.ShowColors)
			auth.POST("/colors", api.SubmitColors)
			auth.GET("/visibility", api.ShowVisibility)
			auth.POST("/visibility", api.SubmitVisibility)

			auth.GET("/items/:kind", api.ShowItems)

			auth.GET("/footer", api.ShowFooterForm)
			auth.POST("/footer", api.SubmitFooterForm)

			auth.GET("/favicon", api.ShowFaviconPage)
			auth.POST("/favicon", api.SubmitFaviconForm)
			auth.POST("/favicon/delete", api.SubmitFaviconDelete)
		}
	}

	return r
}

func redirectTo(location string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Redirect(http.StatusFound, location)
	}
}

func normalizeUploadURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "/uploads"
	}
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	trimmed = strings.TrimRight(trimmed, "/")
	if trimmed == "" {
		return "/uploads"
	}
	return trimmed
}
