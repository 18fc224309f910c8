package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/johndn/portfolio/internal/config"
	"github.com/johndn/portfolio/internal/content"
	"github.com/johndn/portfolio/internal/db"
	"github.com/johndn/portfolio/internal/models"
	"github.com/johndn/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSubmission = `{"name":"Jo","email":"jo@x.com","subject":"Hello","message":"This message is definitely twenty chars."}`

type recordingNotifier struct {
	mu       sync.Mutex
	messages []*models.ContactMessage
}

func (n *recordingNotifier) NotifyContactMessage(_ context.Context, msg *models.ContactMessage) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, msg)
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.messages)
}

type testServer struct {
	srv      *Server
	handler  http.Handler
	db       *db.Database
	notifier *recordingNotifier
}

func newTestConfig() *config.Config {
	return &config.Config{
		Environment:      "test",
		Port:             "0",
		DatabaseDriver:   "sqlite3",
		ContactRateRPS:   100,
		ContactRateBurst: 100,
		Site:             utils.SiteConfig{}.WithDefaults(),
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.NewString())
	database, err := db.Initialize(context.Background(), "sqlite3", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	notifier := &recordingNotifier{}
	srv := NewServer(cfg, database, content.NewStaticStore(content.Default()))
	require.NoError(t, srv.Init(Options{Notifier: notifier}))

	return &testServer{srv: srv, handler: srv.Handler(), db: database, notifier: notifier}
}

func (ts *testServer) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestContactSubmitAndList(t *testing.T) {
	ts := newTestServer(t, newTestConfig())

	w := ts.do(http.MethodPost, "/api/v1/contact", validSubmission, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Message sent successfully! I'll get back to you soon."}`, w.Body.String())

	w = ts.do(http.MethodPost, "/api/contact", strings.Replace(validSubmission, "Hello", "Second", 1), nil)
	require.Equal(t, http.StatusOK, w.Code)
	ts.srv.WaitNotifications()
	assert.Equal(t, 2, ts.notifier.count())

	w = ts.do(http.MethodGet, "/api/v1/contact", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	data := body["data"].([]interface{})
	require.Len(t, data, 2)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "jo@x.com", first["email"])
	assert.Equal(t, "unread", first["status"])
	assert.NotEmpty(t, first["id"])
	assert.NotEmpty(t, first["createdAt"])
}

func TestContactSubmitValidation(t *testing.T) {
	ts := newTestServer(t, newTestConfig())

	w := ts.do(http.MethodPost, "/api/v1/contact", `{"name":"J","email":"bad","subject":"Hi","message":"short"}`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Validation failed", body["error"])
	details := body["details"].(map[string]interface{})
	assert.Equal(t, []interface{}{"Name must be at least 2 characters"}, details["name"])
	assert.Equal(t, []interface{}{"Please enter a valid email"}, details["email"])
	assert.Equal(t, []interface{}{"Subject must be at least 5 characters"}, details["subject"])
	assert.Equal(t, []interface{}{"Message must be at least 20 characters"}, details["message"])

	w = ts.do(http.MethodPost, "/api/v1/contact", `not json`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(http.MethodGet, "/api/v1/contact", "", nil)
	assert.Equal(t, `{"success":true,"data":[]}`, w.Body.String())
	ts.srv.WaitNotifications()
	assert.Zero(t, ts.notifier.count())
}

func TestContactSubmitStorageFailure(t *testing.T) {
	ts := newTestServer(t, newTestConfig())
	require.NoError(t, ts.db.Close())

	w := ts.do(http.MethodPost, "/api/v1/contact", validSubmission, nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Failed to send message. Please try again later."}`, w.Body.String())

	w = ts.do(http.MethodGet, "/api/v1/contact", "", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Failed to fetch messages"}`, w.Body.String())

	w = ts.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestContactRateLimit(t *testing.T) {
	cfg := newTestConfig()
	cfg.ContactRateRPS = 0.001
	cfg.ContactRateBurst = 1
	ts := newTestServer(t, cfg)

	assert.Equal(t, http.StatusOK, ts.do(http.MethodPost, "/api/v1/contact", validSubmission, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, ts.do(http.MethodPost, "/api/v1/contact", validSubmission, nil).Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	cfg := newTestConfig()
	cfg.AdminToken = "s3cret"
	ts := newTestServer(t, cfg)

	assert.Equal(t, http.StatusUnauthorized, ts.do(http.MethodGet, "/api/v1/contact", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, ts.do(http.MethodGet, "/api/v1/admin/stats", "", nil).Code)

	require.Equal(t, http.StatusOK, ts.do(http.MethodPost, "/api/v1/contact", validSubmission, nil).Code)

	auth := map[string]string{"Authorization": "Bearer s3cret"}
	w := ts.do(http.MethodGet, "/api/v1/admin/stats", "", auth)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"posts":3,"projects":3,"unreadMessages":1,"siteName":"John Dn","initials":"JD"}}`, w.Body.String())

	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/v1/contact", "", auth).Code)
}

func TestContentRoutes(t *testing.T) {
	ts := newTestServer(t, newTestConfig())

	w := ts.do(http.MethodGet, "/api/v1/posts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	posts := decode(t, w)["data"].([]interface{})
	require.Len(t, posts, 3)
	first := posts[0].(map[string]interface{})
	assert.Equal(t, "building-scalable-microservices", first["slug"])
	assert.Equal(t, "January 15, 2024", first["date"])
	assert.Equal(t, "Jan 15, 2024", first["dateShort"])

	w = ts.do(http.MethodGet, "/api/v1/posts?featured=true", "", nil)
	assert.Len(t, decode(t, w)["data"], 2)

	w = ts.do(http.MethodGet, "/api/v1/posts?tag=react", "", nil)
	assert.Len(t, decode(t, w)["data"], 1)

	w = ts.do(http.MethodGet, "/api/v1/posts/nextjs-14-app-router/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	post := decode(t, w)["data"].(map[string]interface{})
	assert.Contains(t, post["content"], "App Router")

	w = ts.do(http.MethodGet, "/api/v1/posts/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Resource not found"}`, w.Body.String())

	w = ts.do(http.MethodGet, "/api/v1/archive", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["data"].(map[string]interface{})["2024"], 3)

	w = ts.do(http.MethodGet, "/api/v1/projects", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	projects := decode(t, w)["data"].([]interface{})
	require.Len(t, projects, 3)
	assert.Equal(t, "enterprise-saas-platform", projects[0].(map[string]interface{})["slug"])

	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/v1/projects/ai-powered-analytics", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/api/v1/projects/nope", "", nil).Code)
	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/v1/spotlight", "", nil).Code)

	w = ts.do(http.MethodGet, "/api/v1/tags", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode(t, w)["data"])
}

func TestMetaRoute(t *testing.T) {
	ts := newTestServer(t, newTestConfig())

	w := ts.do(http.MethodGet, "/api/v1/meta?title=About&noindex=true", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	meta := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "About | John Dn", meta["title"])
	assert.Equal(t, map[string]interface{}{"index": false, "follow": false}, meta["robots"])
}

func TestSEORoutes(t *testing.T) {
	ts := newTestServer(t, newTestConfig())

	w := ts.do(http.MethodGet, "/robots.txt", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Disallow: /admin/\n")
	assert.Contains(t, w.Body.String(), "Disallow: /api/\n")
	assert.Contains(t, w.Body.String(), "Sitemap: https://johndn.dev/sitemap.xml")

	w = ts.do(http.MethodGet, "/sitemap.xml", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")
	assert.Contains(t, w.Body.String(), "<loc>https://johndn.dev/blog/building-scalable-microservices</loc>")
	assert.Contains(t, w.Body.String(), "<lastmod>2024-01-15</lastmod>")
	assert.Contains(t, w.Body.String(), "<loc>https://johndn.dev/projects/ecommerce-microservices</loc>")
}

func TestHealthAndFallbacks(t *testing.T) {
	ts := newTestServer(t, newTestConfig())

	w := ts.do(http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	health := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "ok", health["status"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/nope", "", nil).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, ts.do(http.MethodDelete, "/api/v1/contact", "", nil).Code)
}
