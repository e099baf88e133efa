package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"translation-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTranslationService struct {
	entry *domain.Translation
	err   error
}

func (s *stubTranslationService) Create(context.Context, domain.CreateTranslationRequest) (*domain.Translation, error) {
	return s.entry, s.err
}

func (s *stubTranslationService) GetByID(context.Context, int64) (*domain.Translation, error) {
	return s.entry, s.err
}

func (s *stubTranslationService) List(context.Context) ([]domain.Translation, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []domain.Translation{*s.entry}, nil
}

func (s *stubTranslationService) Update(context.Context, int64, domain.CreateTranslationRequest) (*domain.Translation, error) {
	return s.entry, s.err
}

func (s *stubTranslationService) Delete(context.Context, int64) (*domain.Translation, error) {
	return s.entry, s.err
}

type stubLangTagService struct {
	tag *domain.LangTag
	err error
}

func (s *stubLangTagService) Create(context.Context, domain.CreateLangTagRequest) (*domain.LangTag, error) {
	return s.tag, s.err
}

func (s *stubLangTagService) GetByID(context.Context, int64) (*domain.LangTag, error) {
	return s.tag, s.err
}

func (s *stubLangTagService) List(context.Context, int, int) (*domain.Page[domain.LangTag], error) {
	return nil, s.err
}

func (s *stubLangTagService) Update(context.Context, int64, domain.CreateLangTagRequest) (*domain.LangTag, error) {
	return s.tag, s.err
}

func (s *stubLangTagService) Delete(context.Context, int64) (*domain.LangTag, error) {
	return s.tag, s.err
}

type stubAuthService struct {
	result *domain.AuthResult
	err    error
}

func (s *stubAuthService) Register(context.Context, domain.RegisterRequest) (*domain.AuthResult, error) {
	return s.result, s.err
}

func (s *stubAuthService) Login(context.Context, domain.LoginRequest) (*domain.AuthResult, error) {
	return s.result, s.err
}

type stubVerifier struct {
	userID int64
	err    error
}

func (s stubVerifier) Verify(string) (int64, error) {
	return s.userID, s.err
}

func sampleTranslation() *domain.Translation {
	return &domain.Translation{
		ID:            3,
		Name:          "landing-page",
		Description:   "landing page copy",
		BusinessTagID: 1,
		Translations: domain.TranslationContent{
			"title": {"en": "this is title", "zh": "This is title"},
		},
	}
}

func exportRequest(srv *Server, authHeader string) *httptest.ResponseRecorder {
	e := echo.New()
	e.GET("/api/translations/export/json/:id", srv.ExportTranslation)

	req := httptest.NewRequest(http.MethodGet, "/api/translations/export/json/3", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestExportTranslation_MissingToken(t *testing.T) {
	srv := NewServer(nil, nil, &stubTranslationService{entry: sampleTranslation()}, nil, nil, stubVerifier{userID: 1}, nil)

	rec := exportRequest(srv, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Authorization token required", resp.Message)
}

func TestExportTranslation_InvalidToken(t *testing.T) {
	srv := NewServer(nil, nil, &stubTranslationService{entry: sampleTranslation()}, nil, nil, stubVerifier{err: errors.New("token is expired")}, nil)

	rec := exportRequest(srv, "Bearer expired")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid token", resp.Message)
}

func TestExportTranslation_Download(t *testing.T) {
	srv := NewServer(nil, nil, &stubTranslationService{entry: sampleTranslation()}, nil, nil, stubVerifier{userID: 1}, nil)

	rec := exportRequest(srv, "Bearer valid")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "attachment; filename=translations.json", rec.Header().Get(echo.HeaderContentDisposition))

	// The download body is the bare entry, not the response envelope.
	assert.NotContains(t, rec.Body.String(), "statusCode")
	var entry domain.Translation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.Equal(t, int64(3), entry.ID)
	assert.Equal(t, "this is title", entry.Translations["title"]["en"])
}

func TestExportTranslation_NotFound(t *testing.T) {
	srv := NewServer(nil, nil, &stubTranslationService{err: domain.ErrTranslationNotFound}, nil, nil, stubVerifier{userID: 1}, nil)

	rec := exportRequest(srv, "Bearer valid")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		srv        *Server
		method     string
		target     string
		body       string
		handler    func(*Server) echo.HandlerFunc
		wantStatus int
	}{
		{
			name:       "translation not found",
			srv:        NewServer(nil, nil, &stubTranslationService{err: domain.ErrTranslationNotFound}, nil, nil, stubVerifier{}, nil),
			method:     http.MethodGet,
			target:     "/api/translations/9",
			handler:    func(s *Server) echo.HandlerFunc { return s.GetTranslation },
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "lang tag not found",
			srv:        NewServer(&stubLangTagService{err: domain.ErrLangTagNotFound}, nil, nil, nil, nil, stubVerifier{}, nil),
			method:     http.MethodGet,
			target:     "/api/lang-tags/9",
			handler:    func(s *Server) echo.HandlerFunc { return s.GetLangTag },
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "register conflict",
			srv:        NewServer(nil, nil, nil, &stubAuthService{err: domain.ErrUserExists}, nil, stubVerifier{}, nil),
			method:     http.MethodPost,
			target:     "/api/auth/register",
			body:       `{"name":"Alice","email":"alice@x.com","password":"s3cret"}`,
			handler:    func(s *Server) echo.HandlerFunc { return s.Register },
			wantStatus: http.StatusConflict,
		},
		{
			name:       "login rejected",
			srv:        NewServer(nil, nil, nil, &stubAuthService{err: domain.ErrInvalidCredentials}, nil, stubVerifier{}, nil),
			method:     http.MethodPost,
			target:     "/api/auth/login",
			body:       `{"email":"alice@x.com","password":"wrong"}`,
			handler:    func(s *Server) echo.HandlerFunc { return s.Login },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid language keys rejected",
			srv:        NewServer(nil, nil, &stubTranslationService{err: &domain.InvalidLanguageKeysError{Keys: []string{"xx"}}}, nil, nil, stubVerifier{}, nil),
			method:     http.MethodPost,
			target:     "/api/translations",
			body:       `{"name":"landing-page","business_tag_id":1,"translations":{"title":{"xx":"?"}}}`,
			handler:    func(s *Server) echo.HandlerFunc { return s.CreateTranslation },
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			switch tt.method {
			case http.MethodGet:
				e.GET(strings.Replace(tt.target, "/9", "/:id", 1), tt.handler(tt.srv))
			default:
				e.POST(tt.target, tt.handler(tt.srv))
			}

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp apiResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
