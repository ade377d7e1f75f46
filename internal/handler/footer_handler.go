package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/psisite/internal/service"
)

// GetFooterSettings 返回公共页脚信息
func (a *API) GetFooterSettings(c *gin.Context) {
	settings, err := a.footer.Get()
	if err != nil {
		logHandlerError("footer", err)
		respondError(c, http.StatusInternalServerError, "Erro ao carregar rodapé")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateFooterSettings 覆盖页脚信息（JSON）
func (a *API) UpdateFooterSettings(c *gin.Context) {
	var input service.FooterInput
	if !bindJSON(c, &input, "Dados do rodapé inválidos") {
		return
	}
	settings, err := a.footer.Update(input)
	if err != nil {
		handleFooterError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// ShowFooterForm 渲染页脚编辑页
func (a *API) ShowFooterForm(c *gin.Context) {
	settings, err := a.footer.Get()
	if err != nil {
		logHandlerError("footer", err)
		settings = service.DefaultFooter()
	}
	a.renderAdmin(c, http.StatusOK, "footer.html", gin.H{
		"title":  "Rodapé",
		"footer": service.FooterInputFrom(settings),
	})
}

// SubmitFooterForm handles the HTML form variant of UpdateFooterSettings.
func (a *API) SubmitFooterForm(c *gin.Context) {
	input := service.FooterInput{
		PracticeName: c.PostForm("practiceName"),
		Description:  c.PostForm("description"),
		CRP:          c.PostForm("crp"),
		Phone:        c.PostForm("phone"),
		Email:        c.PostForm("email"),
		Address:      c.PostForm("address"),
		Instagram:    c.PostForm("instagram"),
		WhatsApp:     c.PostForm("whatsapp"),
		LinkedIn:     c.PostForm("linkedin"),
		Copyright:    c.PostForm("copyright"),
	}

	if _, err := a.footer.Update(input); err != nil {
		status, message := http.StatusInternalServerError, saveFailedMessage
		if errors.Is(err, service.ErrFooterInvalid) {
			status, message = http.StatusUnprocessableEntity, "Informe o nome do consultório e um e-mail válido"
		} else {
			logHandlerError("footer", err)
		}
		a.renderAdmin(c, status, "footer.html", gin.H{
			"title":  "Rodapé",
			"footer": input,
			"flash":  Flash{Kind: flashError, Message: message},
		})
		return
	}

	setFlash(c, flashSuccess, saveSuccessMessage)
	c.Redirect(http.StatusSeeOther, "/admin/footer")
}

func handleFooterError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrFooterInvalid) {
		respondError(c, http.StatusBadRequest, "Informe o nome do consultório e um e-mail válido")
		return
	}
	logHandlerError("footer", err)
	respondError(c, http.StatusInternalServerError, "Erro ao salvar rodapé")
}
