package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/psisite/internal/service"
)

// UploadFavicon 处理图标上传（multipart 字段 file）
func (a *API) UploadFavicon(c *gin.Context) {
	url, err := a.saveFaviconUpload(c)
	if err != nil {
		handleFaviconError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Favicon atualizado", "faviconUrl": url})
}

// DeleteFavicon 删除当前图标
func (a *API) DeleteFavicon(c *gin.Context) {
	if err := a.favicon.Delete(); err != nil {
		handleFaviconError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Favicon removido"})
}

// ShowFaviconPage 渲染图标管理页
func (a *API) ShowFaviconPage(c *gin.Context) {
	a.renderAdmin(c, http.StatusOK, "favicon.html", gin.H{
		"title":      "Favicon",
		"faviconUrl": a.favicon.URL(),
	})
}

func (a *API) SubmitFaviconForm(c *gin.Context) {
	if _, err := a.saveFaviconUpload(c); err != nil {
		setFlash(c, flashError, faviconErrorMessage(err))
	} else {
		setFlash(c, flashSuccess, "Favicon atualizado")
	}
	c.Redirect(http.StatusSeeOther, "/admin/favicon")
}

func (a *API) SubmitFaviconDelete(c *gin.Context) {
	if err := a.favicon.Delete(); err != nil && !errors.Is(err, service.ErrFaviconMissing) {
		setFlash(c, flashError, faviconErrorMessage(err))
	} else {
		setFlash(c, flashSuccess, "Favicon removido")
	}
	c.Redirect(http.StatusSeeOther, "/admin/favicon")
}

var errFaviconFileMissing = errors.New("favicon upload without file")

func (a *API) saveFaviconUpload(c *gin.Context) (string, error) {
	header, err := c.FormFile("file")
	if err != nil {
		return "", errFaviconFileMissing
	}
	if header.Size > service.MaxFaviconBytes {
		return "", service.ErrFaviconTooLarge
	}
	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	asset, err := a.favicon.Save(file)
	if err != nil {
		return "", err
	}
	return asset.URL, nil
}

func faviconErrorMessage(err error) string {
	switch {
	case errors.Is(err, errFaviconFileMissing):
		return "Selecione um arquivo de imagem"
	case errors.Is(err, service.ErrFaviconUnsupported):
		return "Formato não suportado. Use PNG, JPG, GIF, WebP, BMP ou ICO."
	case errors.Is(err, service.ErrFaviconTooLarge):
		return "Arquivo muito grande (máximo 2 MB)"
	case errors.Is(err, service.ErrFaviconMissing):
		return "Nenhum favicon configurado"
	default:
		logHandlerError("favicon", err)
		return "Erro ao processar o favicon"
	}
}

func handleFaviconError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, service.ErrFaviconMissing):
		status = http.StatusNotFound
	case errors.Is(err, errFaviconFileMissing), errors.Is(err, service.ErrFaviconUnsupported):
	case errors.Is(err, service.ErrFaviconTooLarge):
		status = http.StatusRequestEntityTooLarge
	default:
		status = http.StatusInternalServerError
	}
	respondError(c, status, faviconErrorMessage(err))
}
