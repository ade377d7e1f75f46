package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/psisite/internal/content"
	"github.com/psisite/internal/render"
)

const (
	saveSuccessMessage = "Alterações salvas"
	saveFailedMessage  = "Não foi possível salvar. Tente novamente."
	fieldErrorsMessage = "Verifique os campos destacados"
)

// ShowSectionForm 渲染某个配置键的编辑表单，缺失字段以默认文案填充
func (a *API) ShowSectionForm(c *gin.Context) {
	form, ok := content.FormFor(c.Param("key"))
	if !ok {
		setFlash(c, flashError, "Formulário não encontrado")
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}

	values := formValues(a.loadValue(form.Key))
	a.renderSectionForm(c, http.StatusOK, form, values, content.FieldErrors{}, nil)
}

// SubmitSectionForm validates the whole object, stores it under the form key
// and then runs the form's cache strategy. Invalid input never reaches the store.
func (a *API) SubmitSectionForm(c *gin.Context) {
	form, ok := content.FormFor(c.Param("key"))
	if !ok {
		setFlash(c, flashError, "Formulário não encontrado")
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}

	value, _ := content.Zero(form.Key)
	if err := c.ShouldBindWith(value, binding.Form); err != nil {
		// The validator runs again after normalisation below.
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			a.renderSectionForm(c, http.StatusBadRequest, form, postedValues(c, form), content.FieldErrors{},
				&Flash{Kind: flashError, Message: "Formulário inválido"})
			return
		}
	}

	value.Normalize()
	if err := value.Validate(); err != nil {
		fields, ok := content.AsFieldErrors(err)
		if !ok {
			fields = content.FieldErrors{}
		}
		a.renderSectionForm(c, http.StatusUnprocessableEntity, form, formValues(value), fields,
			&Flash{Kind: flashError, Message: fieldErrorsMessage})
		return
	}

	entry, err := a.configs.SaveValue(form.Key, value)
	if err != nil {
		logHandlerError("admin", err)
		fields, _ := content.AsFieldErrors(err)
		if fields == nil {
			fields = content.FieldErrors{}
		}
		a.renderSectionForm(c, http.StatusInternalServerError, form, formValues(value), fields,
			&Flash{Kind: flashError, Message: saveFailedMessage})
		return
	}

	a.cache.Apply(form.Strategy, entry)
	setFlash(c, flashSuccess, saveSuccessMessage)
	c.Redirect(http.StatusSeeOther, "/admin/sections/"+form.Key)
}

func (a *API) renderSectionForm(c *gin.Context, status int, form content.FormSpec, values map[string]string, fields content.FieldErrors, flash *Flash) {
	data := gin.H{
		"title":     form.Title,
		"form":      form,
		"values":    values,
		"errors":    map[string]string(fields),
		"gradients": render.Gradients(),
		"preview":   a.previewTitle(values),
	}
	if flash != nil {
		data["flash"] = *flash
	}
	a.renderAdmin(c, status, "section_form.html", data)
}

func (a *API) previewTitle(values map[string]string) template.HTML {
	title, ok := values["title"]
	if !ok || title == "" {
		return ""
	}
	gradient := values["gradient"]
	if gradient == "" {
		gradient = a.cache.SiteContent().General.Gradient
	}
	return render.GradientText(title, gradient)
}

// loadValue returns the stored value for key laid over its defaults.
func (a *API) loadValue(key string) content.Value {
	value, _ := content.New(key)
	raw, ok, err := a.cache.Lookup(key)
	if err != nil {
		logHandlerError("admin", err)
		return value
	}
	if !ok {
		return value
	}
	if err := json.Unmarshal(raw, value); err != nil {
		log.Printf("[content] ignoring malformed %s: %v", key, err)
		value, _ = content.New(key)
		return value
	}
	value.Normalize()
	return value
}

func formValues(value interface{}) map[string]string {
	out := map[string]string{}
	raw, err := json.Marshal(value)
	if err != nil {
		return out
	}
	var generic map[string]interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return out
	}
	for key, item := range generic {
		switch typed := item.(type) {
		case nil:
		case string:
			out[key] = typed
		default:
			out[key] = fmt.Sprint(typed)
		}
	}
	return out
}

func postedValues(c *gin.Context, form content.FormSpec) map[string]string {
	out := make(map[string]string, len(form.Fields))
	for _, field := range form.Fields {
		out[field.Name] = c.PostForm(field.Name)
	}
	return out
}

type colorSectionView struct {
	ID             content.SectionID
	Label          string
	Enabled        bool
	Spec           content.SectionColorSpec
	GradientFrom   string
	GradientTo     string
	Opacity        string
	OverlayOpacity string
	Errors         []string
}

// ShowColors 渲染区块背景色设置页
func (a *API) ShowColors(c *gin.Context) {
	colors := a.cache.SiteContent().Colors
	a.renderColors(c, http.StatusOK, colors, content.FieldErrors{}, nil)
}

// SubmitColors replaces section_colors with the enabled sections of the form.
func (a *API) SubmitColors(c *gin.Context) {
	colors, fields := parseColorsForm(c)
	colors.Normalize()
	if err := colors.Validate(); err != nil {
		if validation, ok := content.AsFieldErrors(err); ok {
			for key, message := range validation {
				fields[key] = message
			}
		}
	}
	if len(fields) > 0 {
		a.renderColors(c, http.StatusUnprocessableEntity, colors, fields, &Flash{Kind: flashError, Message: fieldErrorsMessage})
		return
	}

	entry, err := a.configs.SaveValue(content.KeySectionColors, &colors)
	if err != nil {
		logHandlerError("admin", err)
		a.renderColors(c, http.StatusInternalServerError, colors, content.FieldErrors{}, &Flash{Kind: flashError, Message: saveFailedMessage})
		return
	}

	a.cache.Apply(content.StrategyInvalidate, entry)
	setFlash(c, flashSuccess, saveSuccessMessage)
	c.Redirect(http.StatusSeeOther, "/admin/colors")
}

func (a *API) renderColors(c *gin.Context, status int, colors content.SectionColors, fields content.FieldErrors, flash *Flash) {
	views := make([]colorSectionView, 0, len(content.ColorSections))
	for _, id := range content.ColorSections {
		spec, enabled := colors[id]
		view := colorSectionView{ID: id, Label: id.Label(), Enabled: enabled, Spec: spec}
		if len(spec.GradientColors) > 0 {
			view.GradientFrom = spec.GradientColors[0]
		}
		if len(spec.GradientColors) > 1 {
			view.GradientTo = spec.GradientColors[1]
		}
		view.Opacity = formatRatioInput(spec.Opacity)
		view.OverlayOpacity = formatRatioInput(spec.OverlayOpacity)
		prefix := string(id) + "."
		for key, message := range fields {
			if key == string(id) || strings.HasPrefix(key, prefix) {
				view.Errors = append(view.Errors, message)
			}
		}
		views = append(views, view)
	}

	data := gin.H{
		"title":      "Cores das seções",
		"sections":   views,
		"directions": content.GradientDirections,
	}
	if flash != nil {
		data["flash"] = *flash
	}
	a.renderAdmin(c, status, "colors.html", data)
}

func parseColorsForm(c *gin.Context) (content.SectionColors, content.FieldErrors) {
	colors := content.SectionColors{}
	fields := content.FieldErrors{}

	for _, id := range content.ColorSections {
		prefix := string(id) + "."
		if c.PostForm(prefix+"enabled") == "" {
			continue
		}
		spec := content.SectionColorSpec{
			BackgroundType:    c.PostForm(prefix + "backgroundType"),
			BackgroundColor:   c.PostForm(prefix + "backgroundColor"),
			GradientColors:    []string{c.PostForm(prefix + "gradientColor1"), c.PostForm(prefix + "gradientColor2")},
			GradientDirection: c.PostForm(prefix + "gradientDirection"),
			OverlayColor:      c.PostForm(prefix + "overlayColor"),
		}

		var ok bool
		if spec.Opacity, ok = parseRatioInput(c.PostForm(prefix + "opacity")); !ok {
			fields[prefix+"opacity"] = "Use um valor entre 0 e 1"
		}
		if spec.OverlayOpacity, ok = parseRatioInput(c.PostForm(prefix + "overlayOpacity")); !ok {
			fields[prefix+"overlayOpacity"] = "Use um valor entre 0 e 1"
		}
		colors[id] = spec
	}
	return colors, fields
}

// parseRatioInput accepts "", "0.5" or "0,5". Empty means unset.
func parseRatioInput(raw string) (*float64, bool) {
	trimmed := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if trimmed == "" {
		return nil, true
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, false
	}
	return &value, true
}

func formatRatioInput(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}

type visibilityView struct {
	ID      content.SectionID
	Label   string
	Visible bool
}

// ShowVisibility 渲染区块显示开关
func (a *API) ShowVisibility(c *gin.Context) {
	visibility := a.cache.SiteContent().Visibility
	views := make([]visibilityView, 0, len(content.VisibilitySections))
	for _, id := range content.VisibilitySections {
		views = append(views, visibilityView{ID: id, Label: id.Label(), Visible: visibility.Visible(id)})
	}
	a.renderAdmin(c, http.StatusOK, "visibility.html", gin.H{
		"title":    "Visibilidade das seções",
		"sections": views,
	})
}

// SubmitVisibility stores an explicit flag for every section; unchecked boxes become false.
func (a *API) SubmitVisibility(c *gin.Context) {
	checked := make(map[string]bool)
	for _, raw := range c.PostFormArray("visible") {
		checked[strings.TrimSpace(raw)] = true
	}

	visibility := content.SectionVisibility{}
	for _, id := range content.VisibilitySections {
		visibility[id] = checked[string(id)]
	}

	entry, err := a.configs.SaveValue(content.KeySectionVisibility, &visibility)
	if err != nil {
		logHandlerError("admin", err)
		setFlash(c, flashError, saveFailedMessage)
		c.Redirect(http.StatusSeeOther, "/admin/visibility")
		return
	}

	a.cache.Apply(content.StrategyInvalidate, entry)
	setFlash(c, flashSuccess, saveSuccessMessage)
	c.Redirect(http.StatusSeeOther, "/admin/visibility")
}
