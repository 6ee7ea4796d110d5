package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jrmferreira/construcoes-backend/database"
	"github.com/jrmferreira/construcoes-backend/models"
	"github.com/jrmferreira/construcoes-backend/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type captureNotifier struct {
	mu     sync.Mutex
	bodies []string
}

func (c *captureNotifier) Notify(_ context.Context, _, body string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bodies = append(c.bodies, body)
	return nil
}

type testSite struct {
	handler  http.Handler
	notifier *captureNotifier
}

func newTestSite(t *testing.T, cfg map[string]string) testSite {
	t.Helper()
	notifier := &captureNotifier{}
	deps := Dependencies{
		Repo:            database.NewMemoryRepo(database.WithLatency(database.Latency{})),
		Contact:         services.NewContactService(services.ContactFormConfig{NoticeTTL: -1}, nil),
		CommentNotifier: notifier,
	}
	return testSite{
		handler:  newRouter(deps, withConfig(cfg)),
		notifier: notifier,
	}
}

func (s testSite) do(t *testing.T, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestGetAllProjects(t *testing.T) {
	site := newTestSite(t, nil)

	rec := site.do(t, http.MethodGet, "/projects", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	got := decode[ProjectCollection](t, rec)
	require.Equal(t, 6, got.Total)
	for i, p := range got.Projects {
		assert.Equal(t, i+1, p.ID)
	}
	assert.Equal(t, "Reforma de Fachada Comercial", got.Projects[0].Title)
	assert.Equal(t, 2, got.Projects[0].CommentsCount)
}

func TestGetProject(t *testing.T) {
	site := newTestSite(t, nil)

	rec := site.do(t, http.MethodGet, "/project/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	project := decode[models.Project](t, rec)
	assert.Equal(t, "Instalação Elétrica Industrial", project.Title)
	assert.Len(t, project.GalleryImages, 2)

	rec = site.do(t, http.MethodGet, "/project/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	errResp := decode[ErrorResponse](t, rec)
	assert.Equal(t, "error", errResp.Status)
	assert.Equal(t, "project not found", errResp.Error)

	for _, id := range []string{"abc", "0", "-2", "1.5"} {
		rec = site.do(t, http.MethodGet, "/project/"+id, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, id)
	}
}

func TestComments(t *testing.T) {
	site := newTestSite(t, nil)

	rec := site.do(t, http.MethodGet, "/project/1/comments", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[CommentCollection](t, rec)
	assert.Equal(t, 2, list.Total)

	rec = site.do(t, http.MethodGet, "/project/6/comments", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"comments":[],"total":0}`, rec.Body.String())

	rec = site.do(t, http.MethodPost, "/project/1/comments", `{"author_name":"  Ana  ","message":" Ficou ótimo! "}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	comment := decode[models.Comment](t, rec)
	assert.Equal(t, 6, comment.ID)
	assert.Equal(t, 1, comment.ProjectID)
	assert.Equal(t, "Ana", comment.AuthorName)
	assert.Equal(t, "Ficou ótimo!", comment.Message)
	assert.False(t, comment.CreatedAt.IsZero())

	require.Len(t, site.notifier.bodies, 1)
	assert.Equal(t, "Projeto #1\nAna escreveu:\nFicou ótimo!", site.notifier.bodies[0])

	project := decode[models.Project](t, site.do(t, http.MethodGet, "/project/1", ""))
	assert.Equal(t, 3, project.CommentsCount)

	list = decode[CommentCollection](t, site.do(t, http.MethodGet, "/project/1/comments", ""))
	assert.Equal(t, 3, list.Total)
	assert.Equal(t, 6, list.Comments[2].ID)
}

func TestAddCommentRejectsBadInput(t *testing.T) {
	site := newTestSite(t, nil)

	tests := []struct {
		name  string
		path  string
		body  string
		field string
	}{
		{"blank author", "/project/1/comments", `{"author_name":"   ","message":"Oi"}`, "author_name"},
		{"missing message", "/project/1/comments", `{"author_name":"Ana"}`, "message"},
		{"unknown property", "/project/1/comments", `{"author_name":"Ana","message":"Oi","rating":5}`, "payload"},
		{"not json", "/project/1/comments", `author=Ana`, "payload"},
		{"bad id", "/project/x/comments", `{"author_name":"Ana","message":"Oi"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := site.do(t, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.field, decode[ErrorResponse](t, rec).Field)
		})
	}

	assert.Empty(t, site.notifier.bodies)
	project := decode[models.Project](t, site.do(t, http.MethodGet, "/project/1", ""))
	assert.Equal(t, 2, project.CommentsCount)
}

func TestValidateContactField(t *testing.T) {
	site := newTestSite(t, nil)

	rec := site.do(t, http.MethodPost, "/contact/validate", `{"field":"email","value":"a@b"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, FieldValidationResponse{
		Field:   "email",
		Valid:   false,
		Message: "Email deve ter um formato válido",
	}, decode[FieldValidationResponse](t, rec))

	rec = site.do(t, http.MethodPost, "/contact/validate", `{"field":"phone","value":""}`)
	assert.True(t, decode[FieldValidationResponse](t, rec).Valid)

	rec = site.do(t, http.MethodPost, "/contact/validate", `{"field":"cpf","value":"123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "field", decode[ErrorResponse](t, rec).Field)
}

func TestSubmitContactForm(t *testing.T) {
	site := newTestSite(t, nil)

	rec := site.do(t, http.MethodPost, "/contact",
		`{"name":"Jo","email":"jo@x.com","phone":"","subject":"Reforma","message":"Quero um orçamento completo"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	ok := decode[ContactSubmitResponse](t, rec)
	assert.Equal(t, services.StateSubmittedSuccess, ok.State)
	assert.Equal(t, services.BranchBusiness, ok.Branch)
	assert.True(t, strings.HasPrefix(ok.Link, "https://wa.me/5521992215224?text=Ol%C3%A1!%20Gostaria"), ok.Link)
	assert.Equal(t, models.NoticeSuccess, ok.Notice.Type)
	assert.Empty(t, ok.Error)

	rec = site.do(t, http.MethodPost, "/contact",
		`{"name":"Jo","email":"a@b","phone":"","subject":"Reforma","message":"short"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	bad := decode[ContactSubmitResponse](t, rec)
	assert.Equal(t, services.StateSubmittedError, bad.State)
	assert.Empty(t, bad.Link)
	assert.Equal(t, 60.0, bad.Progress)
	assert.Equal(t, "invalid contact form: Por favor, corrija os erros antes de enviar.", bad.Error)
	assert.Equal(t, map[string]string{
		"email":   "Email deve ter um formato válido",
		"message": "Mensagem deve ter pelo menos 10 caracteres",
	}, bad.Errors)

	rec = site.do(t, http.MethodPost, "/contact",
		`{"name":"J","email":"x","phone":"(21) 99221-5224","subject":"","message":""}`)
	require.Equal(t, http.StatusOK, rec.Code)
	visitor := decode[ContactSubmitResponse](t, rec)
	assert.Equal(t, services.BranchVisitor, visitor.Branch)
	assert.True(t, strings.HasPrefix(visitor.Link, "https://wa.me/5521992215224?text="), visitor.Link)
}

func TestWhatsAppChatLink(t *testing.T) {
	site := newTestSite(t, map[string]string{"WHATSAPP_CHAT_NUMBER": "5521992215224"})

	rec := site.do(t, http.MethodGet, "/contact/whatsapp", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(decode[LinkResponse](t, rec).Link, "https://wa.me/5521992215224?text=Ol%C3%A1"))

	rec = site.do(t, http.MethodGet, "/contact/whatsapp?phone=%2B55%2011%2088888-7777&message=Oi%20tudo%20bem", "")
	assert.Equal(t, "https://wa.me/5511888887777?text=Oi%20tudo%20bem", decode[LinkResponse](t, rec).Link)

	rec = newTestSite(t, nil).do(t, http.MethodGet, "/contact/whatsapp", "")
	assert.True(t, strings.HasPrefix(decode[LinkResponse](t, rec).Link, "https://wa.me/"+services.DefaultChatNumber+"?"))
}

func TestSiteRoutes(t *testing.T) {
	site := newTestSite(t, nil)

	rec := site.do(t, http.MethodGet, "/highlights", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.Highlights(), decode[HighlightsResponse](t, rec).Highlights)

	rec = site.do(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[HealthResponse](t, rec).Status)
}

func TestRequestID(t *testing.T) {
	site := newTestSite(t, nil)

	rec := site.do(t, http.MethodGet, "/health", "", requestIDHeader, "abc-123")
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))

	rec = site.do(t, http.MethodGet, "/health", "")
	_, err := uuid.Parse(rec.Header().Get(requestIDHeader))
	assert.NoError(t, err)
}

func TestCORS(t *testing.T) {
	site := newTestSite(t, map[string]string{"ACCEPTED_ORIGINS": "https://jrmferreira.com.br, http://localhost:5173"})

	rec := site.do(t, http.MethodOptions, "/contact", "",
		"Origin", "https://jrmferreira.com.br",
		"Access-Control-Request-Method", http.MethodPost)
	assert.Less(t, rec.Code, 300)
	assert.Equal(t, "https://jrmferreira.com.br", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = site.do(t, http.MethodOptions, "/contact", "",
		"Origin", "https://evil.example",
		"Access-Control-Request-Method", http.MethodPost)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, decode[ErrorResponse](t, rec).Details, "https://evil.example")

	rec = site.do(t, http.MethodGet, "/health", "", "Origin", "http://localhost:5173")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogInternalServerErrorsRecoversPanics(t *testing.T) {
	h := LogInternalServerErrors(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestNewServer(t *testing.T) {
	_, err := NewServer(nil, Dependencies{})
	assert.Error(t, err)

	server, err := NewServer(map[string]string{"PORT": "9090", "READ_TIMEOUT_SECONDS": "5"}, Dependencies{
		Repo: database.NewMemoryRepo(),
	})
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", server.Addr)
	assert.Equal(t, 5*time.Second, server.ReadTimeout)
	assert.Equal(t, 30*time.Second, server.WriteTimeout)
}
