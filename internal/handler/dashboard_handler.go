package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/psisite/internal/content"
	"github.com/psisite/internal/db"
)

// ShowDashboard 渲染后台主面板
func (a *API) ShowDashboard(c *gin.Context) {
	entries, err := a.cache.Entries()
	if err != nil {
		logHandlerError("dashboard", err)
		entries = nil
	}

	formKeys := make(map[string]bool)
	for _, form := range content.Forms() {
		formKeys[form.Key] = true
	}
	formKeys[content.KeySectionColors] = false
	formKeys[content.KeySectionVisibility] = false

	a.renderAdmin(c, http.StatusOK, "dashboard.html", gin.H{
		"title":            "Painel",
		"entries":          entries,
		"formKeys":         formKeys,
		"serviceCount":     a.count(&db.ServiceOffering{}),
		"testimonialCount": a.count(&db.Testimonial{}),
		"faqCount":         a.count(&db.FAQItem{}),
		"galleryCount":     a.count(&db.GalleryImage{}),
	})
}

func (a *API) count(model interface{}) int64 {
	var total int64
	if err := a.db.Model(model).Count(&total).Error; err != nil {
		logHandlerError("dashboard", err)
	}
	return total
}
