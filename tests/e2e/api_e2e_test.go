package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/psisite/internal/db"
	"github.com/psisite/internal/router"
	"github.com/psisite/internal/service"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type e2eSuite struct {
	handler   http.Handler
	public    httpClient
	admin     httpClient
	baseURL   string
	uploadDir string
	adminUser string
	adminPass string
	faqIDs    []uint
}

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type localClient struct {
	handler http.Handler
	jar     http.CookieJar
}

func newLocalClient(handler http.Handler, withJar bool) *localClient {
	var jar http.CookieJar
	if withJar {
		if j, err := cookiejar.New(nil); err == nil {
			jar = j
		}
	}
	return &localClient{handler: handler, jar: jar}
}

func (c *localClient) Do(req *http.Request) (*http.Response, error) {
	if c.jar != nil {
		for _, cookie := range c.jar.Cookies(req.URL) {
			req.AddCookie(cookie)
		}
	}
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	resp := w.Result()
	if c.jar != nil {
		c.jar.SetCookies(req.URL, resp.Cookies())
	}
	return resp, nil
}

func TestE2E_AllInterfaces(t *testing.T) {
	suite := newE2ESuite(t)

	t.Run("public endpoints", suite.testPublicEndpoints)
	suite.login(t)
	t.Run("section form updates the page", suite.testSectionFormUpdatesPage)
	t.Run("visibility and colors", suite.testVisibilityAndColors)
	t.Run("admin apis", suite.testAdminAPIs)
	t.Run("logout", suite.testLogout)
}

func newE2ESuite(t *testing.T) *e2eSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:e2e-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := db.Open("sqlite", dsn, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	if _, err := db.EnsureUser(gdb, "admin", "e2e-secret"); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	if _, err := service.NewExportService(gdb).Seed(); err != nil {
		t.Fatalf("failed to seed content: %v", err)
	}

	faqs, err := service.NewFAQService(gdb).List(true)
	if err != nil {
		t.Fatalf("failed to list seeded faq: %v", err)
	}
	ids := make([]uint, 0, len(faqs))
	for _, item := range faqs {
		ids = append(ids, item.ID)
	}

	uploadDir := t.TempDir()
	engine := router.SetupRouter(router.Options{
		DB:            gdb,
		SessionSecret: "test-session-secret",
		UploadDir:     uploadDir,
		UploadURLPath: "/uploads",
	})

	return &e2eSuite{
		handler:   engine,
		public:    newLocalClient(engine, false),
		admin:     newLocalClient(engine, true),
		baseURL:   "http://example.test",
		uploadDir: uploadDir,
		adminUser: "admin",
		adminPass: "e2e-secret",
		faqIDs:    ids,
	}
}

func (s *e2eSuite) login(t *testing.T) {
	t.Helper()
	form := url.Values{
		"username": {s.adminUser},
		"password": {s.adminPass},
	}

	resp := s.mustRequest(t, s.admin, http.MethodPost, "/admin/login", strings.NewReader(form.Encode()), map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusFound {
		t.Fatalf("login failed, status %d", resp.StatusCode)
	}
}

func (s *e2eSuite) testPublicEndpoints(t *testing.T) {
	t.Helper()

	checkHTML := func(name, path, expect string, code int) {
		t.Helper()
		resp := s.mustRequest(t, s.public, http.MethodGet, path, nil, nil)
		defer resp.Body.Close()
		if resp.StatusCode != code {
			t.Fatalf("%s: expected status %d, got %d", name, code, resp.StatusCode)
		}
		body := readBody(t, resp)
		if expect != "" && !strings.Contains(body, expect) {
			t.Fatalf("%s: response does not contain %q", name, expect)
		}
	}

	checkHTML("home", "/", `data-section="hero"`, http.StatusOK)
	checkHTML("login page", "/admin/login", "password", http.StatusOK)
	checkHTML("stylesheet", "/static/css/site.css", "", http.StatusOK)
	checkHTML("favicon without upload", "/favicon.ico", "", http.StatusNotFound)

	resp := s.mustRequest(t, s.public, http.MethodGet, "/healthz", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz: expected 200, got %d", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, `"status":"ok"`) {
		t.Fatalf("healthz: unexpected body %q", body)
	}

	resp = s.mustRequest(t, s.public, http.MethodGet, "/api/admin/config", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous admin api: expected 401, got %d", resp.StatusCode)
	}

	resp = s.mustRequest(t, s.public, http.MethodGet, "/admin/dashboard", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("anonymous dashboard: expected 302, got %d", resp.StatusCode)
	}
}

func (s *e2eSuite) testSectionFormUpdatesPage(t *testing.T) {
	t.Helper()

	// 先访问首页，确保配置缓存已加载
	resp := s.mustRequest(t, s.public, http.MethodGet, "/", nil, nil)
	readBody(t, resp)

	form := url.Values{
		"badge":       {"Psicologia clínica"},
		"title":       {"Cuidando da sua (saúde mental)"},
		"subtitle":    {"Atendimento online e presencial"},
		"buttonText1": {"Agendar consulta"},
		"gradient":    {"blue-teal"},
	}
	resp = s.mustRequest(t, s.admin, http.MethodPost, "/admin/sections/hero_section", strings.NewReader(form.Encode()), map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("hero form: expected 303, got %d body=%s", resp.StatusCode, readBody(t, resp))
	}

	resp = s.mustRequest(t, s.admin, http.MethodGet, resp.Header.Get("Location"), nil, nil)
	defer resp.Body.Close()
	if body := readBody(t, resp); !strings.Contains(body, "Alterações salvas") {
		t.Fatalf("hero form: expected success flash after redirect")
	}

	resp = s.mustRequest(t, s.public, http.MethodGet, "/", nil, nil)
	defer resp.Body.Close()
	body := readBody(t, resp)
	if !strings.Contains(body, "saúde mental</span>") {
		t.Fatalf("home: expected highlighted title, got %s", body)
	}
	if !strings.Contains(body, "#3b82f6") {
		t.Fatalf("home: expected blue-teal gradient on hero")
	}
	if !strings.Contains(body, "PSICOLOGIA CLÍNICA") {
		t.Fatalf("home: expected uppercase badge")
	}
}

func (s *e2eSuite) testVisibilityAndColors(t *testing.T) {
	t.Helper()

	form := url.Values{"visible": {"hero", "about", "services", "testimonials", "contact", "specialties", "inspirational", "gallery"}}
	resp := s.mustRequest(t, s.admin, http.MethodPost, "/admin/visibility", strings.NewReader(form.Encode()), map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("visibility: expected 303, got %d", resp.StatusCode)
	}

	colors := url.Values{
		"services.enabled":           {"on"},
		"services.backgroundType":    {"gradient"},
		"services.gradientColor1":    {"#fdf2f8"},
		"services.gradientColor2":    {"#ede9fe"},
		"services.gradientDirection": {"to-b"},
	}
	resp = s.mustRequest(t, s.admin, http.MethodPost, "/admin/colors", strings.NewReader(colors.Encode()), map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("colors: expected 303, got %d body=%s", resp.StatusCode, readBody(t, resp))
	}

	resp = s.mustRequest(t, s.public, http.MethodGet, "/", nil, nil)
	defer resp.Body.Close()
	body := readBody(t, resp)
	if strings.Contains(body, `data-section="faq"`) {
		t.Fatalf("home: faq should be hidden")
	}
	if !strings.Contains(body, "linear-gradient(to bottom, #fdf2f8, #ede9fe)") {
		t.Fatalf("home: expected services gradient, got %s", body)
	}
}

func (s *e2eSuite) testAdminAPIs(t *testing.T) {
	t.Helper()

	resp := s.mustRequest(t, s.admin, http.MethodGet, "/api/admin/config", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list config expected 200, got %d", resp.StatusCode)
	}
	var entries []map[string]interface{}
	decodeJSON(t, resp, &entries)
	if len(entries) == 0 {
		t.Fatalf("list config returned no entries")
	}

	resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/api/admin/config", map[string]interface{}{
		"key":   "custom_banner",
		"value": map[string]interface{}{"enabled": true},
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("save unknown key expected 200, got %d", resp.StatusCode)
	}

	resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/api/admin/testimonials", map[string]interface{}{
		"name":    "Maria",
		"content": "Me ajudou muito.",
		"rating":  5,
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create testimonial expected 201, got %d", resp.StatusCode)
	}

	resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/api/admin/testimonials", map[string]interface{}{
		"name":    "João",
		"content": "Nota inválida",
		"rating":  9,
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid rating expected 400, got %d", resp.StatusCode)
	}

	if len(s.faqIDs) > 1 {
		reversed := make([]uint, len(s.faqIDs))
		for i, id := range s.faqIDs {
			reversed[len(s.faqIDs)-1-i] = id
		}
		resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/api/admin/faq/reorder", map[string]interface{}{"ids": reversed})
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("reorder faq expected 200, got %d", resp.StatusCode)
		}

		resp = s.mustRequest(t, s.admin, http.MethodGet, "/api/admin/faq", nil, nil)
		defer resp.Body.Close()
		var list struct {
			Items []struct {
				ID uint `json:"id"`
			} `json:"items"`
		}
		decodeJSON(t, resp, &list)
		if len(list.Items) == 0 || list.Items[0].ID != reversed[0] {
			t.Fatalf("faq order not applied: %+v", list.Items)
		}
	}

	resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/api/admin/gallery", map[string]interface{}{
		"title":    "Consultório",
		"imageUrl": "https://example.com/sala.jpg",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create gallery image expected 201, got %d", resp.StatusCode)
	}

	resp = s.mustRequestJSON(t, s.admin, http.MethodPut, "/api/admin/faq/"+idStr(999999), map[string]interface{}{
		"question": "?",
		"answer":   "!",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("update missing faq expected 404, got %d", resp.StatusCode)
	}
}

func (s *e2eSuite) testLogout(t *testing.T) {
	t.Helper()

	resp := s.mustRequest(t, s.admin, http.MethodGet, "/admin/logout", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("logout expected 302, got %d", resp.StatusCode)
	}

	resp = s.mustRequest(t, s.admin, http.MethodGet, "/api/admin/config", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("admin api after logout expected 401, got %d", resp.StatusCode)
	}
}

func (s *e2eSuite) mustRequest(t *testing.T, client httpClient, method, path string, body io.Reader, headers map[string]string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, s.baseURL+path, body)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	return resp
}

func (s *e2eSuite) mustRequestJSON(t *testing.T, client httpClient, method, path string, payload map[string]interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	return s.mustRequest(t, client, method, path, bytes.NewReader(data), map[string]string{"Content-Type": "application/json"})
}

func decodeJSON(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("failed to decode json: %v", err)
	}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	return string(data)
}

func idStr(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
