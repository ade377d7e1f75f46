package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/psisite/internal/db"
	"github.com/psisite/internal/service"
	"github.com/psisite/internal/view"
)

type reorderRequest struct {
	IDs []uint `json:"ids"`
}

type offeringRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Sort        *int   `json:"sort"`
	Visible     *bool  `json:"visible"`
}

type testimonialRequest struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
	Sort    *int   `json:"sort"`
	Visible *bool  `json:"visible"`
}

type faqRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Sort     *int   `json:"sort"`
	Visible  *bool  `json:"visible"`
}

type galleryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	SortOrder   *int   `json:"sortOrder"`
	Visible     *bool  `json:"visible"`
}

func (r offeringRequest) toInput() service.OfferingInput {
	return service.OfferingInput{Title: r.Title, Description: r.Description, Icon: r.Icon, Sort: r.Sort, Visible: r.Visible}
}

func (r testimonialRequest) toInput() service.TestimonialInput {
	return service.TestimonialInput{Name: r.Name, Role: r.Role, Content: r.Content, Rating: r.Rating, Sort: r.Sort, Visible: r.Visible}
}

func (r faqRequest) toInput() service.FAQInput {
	return service.FAQInput{Question: r.Question, Answer: r.Answer, Sort: r.Sort, Visible: r.Visible}
}

func (r galleryRequest) toInput() service.GalleryInput {
	return service.GalleryInput{Title: r.Title, Description: r.Description, ImageURL: r.ImageURL, SortOrder: r.SortOrder, Visible: r.Visible}
}

func offeringPayload(item db.ServiceOffering) gin.H {
	return gin.H{"id": item.ID, "title": item.Title, "description": item.Description, "icon": item.Icon, "sort": item.Sort, "visible": item.Visible}
}

func testimonialPayload(item db.Testimonial) gin.H {
	return gin.H{"id": item.ID, "name": item.Name, "role": item.Role, "content": item.Content, "rating": item.Rating, "sort": item.Sort, "visible": item.Visible}
}

func faqPayload(item db.FAQItem) gin.H {
	return gin.H{"id": item.ID, "question": item.Question, "answer": item.Answer, "sort": item.Sort, "visible": item.Visible}
}

func galleryPayload(item db.GalleryImage) gin.H {
	return gin.H{"id": item.ID, "title": item.Title, "description": item.Description, "imageUrl": item.ImageURL, "sortOrder": item.SortOrder, "visible": item.Visible}
}

func handleItemError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		respondError(c, http.StatusNotFound, "Item não encontrado")
	case errors.Is(err, service.ErrItemInvalid):
		respondError(c, http.StatusBadRequest, "Preencha os campos obrigatórios")
	default:
		logHandlerError("items", err)
		respondError(c, http.StatusInternalServerError, "A operação falhou")
	}
}

func itemID(c *gin.Context) (uint, bool) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID inválido")
		return 0, false
	}
	return id, true
}

// ListOfferings 返回全部服务卡片（含隐藏）
func (a *API) ListOfferings(c *gin.Context) {
	items, err := a.offerings.List(true)
	if err != nil {
		handleItemError(c, err)
		return
	}
	payload := make([]gin.H, 0, len(items))
	for _, item := range items {
		payload = append(payload, offeringPayload(item))
	}
	c.JSON(http.StatusOK, gin.H{"items": payload})
}

// CreateOffering 新建服务卡片
func (a *API) CreateOffering(c *gin.Context) {
	var req offeringRequest
	if !bindJSON(c, &req, "Dados do serviço inválidos") {
		return
	}
	item, err := a.offerings.Create(req.toInput())
	if err != nil {
		handleItemError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Serviço adicionado", "item": offeringPayload(*item)})
}

// UpdateOffering 更新服务卡片
func (a *API) UpdateOffering(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	var req offeringRequest
	if !bindJSON(c, &req, "Dados do serviço inválidos") {
		return
	}
	item, err := a.offerings.Update(id, req.toInput())
	if err != nil {
		handleItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Serviço atualizado", "item": offeringPayload(*item)})
}

// DeleteOffering 删除服务卡片
func (a *API) DeleteOffering(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	if err := a.offerings.Delete(id); err != nil {
		handleItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Serviço excluído"})
}

// ReorderOfferings 更新排序
func (a *API) ReorderOfferings(c *gin.Context) {
	var req reorderRequest
	if !bindJSON(c, &req, "Ordem inválida") {
		return
	}
	if err := a.offerings.Reorder(req.IDs); err != nil {
		handleItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ordem atualizada"})
}

// ListTestimonials returns every testimonial including hidden ones.
func (a *API) ListTestimonials(c *gin.Context) {
	items, err := a.testimonials.List(true)
	if err != nil {
		handleItemError(c, err)
		return
	}
	payload := make([]gin.H, 0, len(items))
	for _, item := range items {
		payload = append(payload, testimonialPayload(item))
	}
	c.JSON(http.StatusOK, gin.H{"items": payload})
}

func (a *API) CreateTestimonial(c *gin.Context) {
	var req testimonialRequest
	if !bindJSON(c, &req, "Dados do depoimento inválidos") {
		return
	}
	item, err := a.testimonials.Create(req.toInput())
	if err != nil {
		handleItemError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Depoimento adicionado", "item": testimonialPayload(*item)})
}

func (a *API) UpdateTestimonial(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	var req testimonialRequest
	if !bindJSON(c, &req, "Dados do depoimento inválidos") {
		return
	}
	item, err := a.testimonials.Update(id, req.toInput())
	if err != nil {
		handleItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Depoimento atualizado", "item": testimonialPayload(*item)})
}

func (a *API) DeleteTestimonial(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	if err := a.testimonials.Delete(id); err != nil {
		handleItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Depoimento excluído"})
}

func (a *API) ReorderTestimonials(c *gin.Context) {
	var req reorderRequest
	if !bindJSON(c, &req, "Ordem inválida") {
		return
	}
	if err := a.testimonials.Reorder(req.IDs); err != nil {
		handleItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ordem atualizada"})
}

// ListFAQ returns every FAQ item including hidden ones.
func (a *API) ListFAQ(c *gin.Context) {
	items, err := a.faqs.List(true)
	if err != nil {
		handleItemError(c, err)
		return
	}
	payload := make([]gin.H, 0, len(items))
	for _, item := range items {
		payload = append(payload, faqPayload(item))
	}
	c.JSON(http.StatusOK, gin.H{"items": payload})
}

func (a *API) CreateFAQ(c *gin.Context) {
	var req faqRequest
	if !bindJSON(c, &req, "Dados da pergunta inválidos") {
		return
	}
	item, err := a.faqs.Create(req.toInput())
	if err != nil {
		handleItemError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Pergunta adicionada", "item": faqPayload(*item)})
}

func (a *API) UpdateFAQ(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	var req faqRequest
	if !bindJSON(c, &req, "Dados da pergunta inválidos") {
		return
	}
	item, err := a.faqs.Update(id, req.toInput())
	if err != nil {
		handleItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pergunta atualizada", "item": faqPayload(*item)})
}

func (a *API) DeleteFAQ(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	if err := a.faqs.Delete(id); err != nil {
		handleItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pergunta excluída"})
}

func (a *API) ReorderFAQ(c *gin.Context) {
	var req reorderRequest
	if !bindJSON(c, &req, "Ordem inválida") {
		return
	}
	if err := a.faqs.Reorder(req.IDs); err != nil {
		handleItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ordem atualizada"})
}

// ListGallery returns every gallery image including hidden ones.
func (a *API) ListGallery(c *gin.Context) {
	items, err := a.gallery.List(true)
	if err != nil {
		handleItemError(c, err)
		return
	}
	payload := make([]gin.H, 0, len(items))
	for _, item := range items {
		payload = append(payload, galleryPayload(item))
	}
	c.JSON(http.StatusOK, gin.H{"items": payload})
}

func (a *API) CreateGalleryImage(c *gin.Context) {
	var req galleryRequest
	if !bindJSON(c, &req, "Dados da imagem inválidos") {
		return
	}
	item, err := a.gallery.Create(req.toInput())
	if err != nil {
		handleItemError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Imagem adicionada", "item": galleryPayload(*item)})
}

func (a *API) UpdateGalleryImage(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	var req galleryRequest
	if !bindJSON(c, &req, "Dados da imagem inválidos") {
		return
	}
	item, err := a.gallery.Update(id, req.toInput())
	if err != nil {
		handleItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Imagem atualizada", "item": galleryPayload(*item)})
}

func (a *API) DeleteGalleryImage(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	if err := a.gallery.Delete(id); err != nil {
		handleItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Imagem excluída"})
}

func (a *API) ReorderGallery(c *gin.Context) {
	var req reorderRequest
	if !bindJSON(c, &req, "Ordem inválida") {
		return
	}
	if err := a.gallery.Reorder(req.IDs); err != nil {
		handleItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ordem atualizada"})
}

type itemColumn struct {
	Name     string
	Label    string
	Kind     string
	Required bool
}

type itemRow struct {
	ID      uint
	Cells   []string
	Visible bool
}

type itemPage struct {
	title    string
	endpoint string
	columns  []itemColumn
	rows     func(a *API) ([]itemRow, error)
}

var itemPages = map[string]itemPage{
	"services": {
		title:    "Serviços",
		endpoint: "/api/admin/services",
		columns: []itemColumn{
			{Name: "title", Label: "Título", Kind: "text", Required: true},
			{Name: "description", Label: "Descrição", Kind: "textarea"},
			{Name: "icon", Label: "Ícone", Kind: "icon"},
		},
		rows: func(a *API) ([]itemRow, error) {
			items, err := a.offerings.List(true)
			rows := make([]itemRow, 0, len(items))
			for _, item := range items {
				rows = append(rows, itemRow{ID: item.ID, Cells: []string{item.Title, item.Description, item.Icon}, Visible: item.Visible})
			}
			return rows, err
		},
	},
	"testimonials": {
		title:    "Depoimentos",
		endpoint: "/api/admin/testimonials",
		columns: []itemColumn{
			{Name: "name", Label: "Nome", Kind: "text", Required: true},
			{Name: "role", Label: "Descrição", Kind: "text"},
			{Name: "content", Label: "Depoimento", Kind: "textarea", Required: true},
			{Name: "rating", Label: "Nota", Kind: "number"},
		},
		rows: func(a *API) ([]itemRow, error) {
			items, err := a.testimonials.List(true)
			rows := make([]itemRow, 0, len(items))
			for _, item := range items {
				rows = append(rows, itemRow{ID: item.ID, Cells: []string{item.Name, item.Role, item.Content, strconv.Itoa(item.Rating)}, Visible: item.Visible})
			}
			return rows, err
		},
	},
	"faq": {
		title:    "Perguntas frequentes",
		endpoint: "/api/admin/faq",
		columns: []itemColumn{
			{Name: "question", Label: "Pergunta", Kind: "text", Required: true},
			{Name: "answer", Label: "Resposta (Markdown)", Kind: "markdown", Required: true},
		},
		rows: func(a *API) ([]itemRow, error) {
			items, err := a.faqs.List(true)
			rows := make([]itemRow, 0, len(items))
			for _, item := range items {
				rows = append(rows, itemRow{ID: item.ID, Cells: []string{item.Question, item.Answer}, Visible: item.Visible})
			}
			return rows, err
		},
	},
	"gallery": {
		title:    "Galeria",
		endpoint: "/api/admin/gallery",
		columns: []itemColumn{
			{Name: "imageUrl", Label: "URL da imagem", Kind: "text", Required: true},
			{Name: "title", Label: "Título", Kind: "text"},
			{Name: "description", Label: "Descrição", Kind: "textarea"},
		},
		rows: func(a *API) ([]itemRow, error) {
			items, err := a.gallery.List(true)
			rows := make([]itemRow, 0, len(items))
			for _, item := range items {
				rows = append(rows, itemRow{ID: item.ID, Cells: []string{item.ImageURL, item.Title, item.Description}, Visible: item.Visible})
			}
			return rows, err
		},
	},
}

// ShowItems 渲染列表类内容的管理页面
func (a *API) ShowItems(c *gin.Context) {
	page, ok := itemPages[c.Param("kind")]
	if !ok {
		setFlash(c, flashError, "Página não encontrada")
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}

	rows, err := page.rows(a)
	if err != nil {
		logHandlerError("items", err)
		rows = nil
	}

	a.renderAdmin(c, http.StatusOK, "items.html", gin.H{
		"title":    page.title,
		"endpoint": page.endpoint,
		"columns":  page.columns,
		"rows":     rows,
		"icons":    view.ServiceIconOptions(),
	})
}
