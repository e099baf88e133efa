package server

import (
	"context"
	"database/sql"
	"net/http"
	"strconv"

	"translation-service/internal/domain"

	log "github.com/sirupsen/logrus"

	"github.com/labstack/echo/v4"
)

const version = "1.0.0"

type LangTagService interface {
	Create(ctx context.Context, req domain.CreateLangTagRequest) (*domain.LangTag, error)
	GetByID(ctx context.Context, id int64) (*domain.LangTag, error)
	List(ctx context.Context, page, pageSize int) (*domain.Page[domain.LangTag], error)
	Update(ctx context.Context, id int64, req domain.CreateLangTagRequest) (*domain.LangTag, error)
	Delete(ctx context.Context, id int64) (*domain.LangTag, error)
}

type BusinessTagService interface {
	Create(ctx context.Context, req domain.CreateBusinessTagRequest) (*domain.BusinessTag, error)
	GetByID(ctx context.Context, id int64) (*domain.BusinessTag, error)
	List(ctx context.Context, page, pageSize int) (*domain.Page[domain.BusinessTag], error)
	Update(ctx context.Context, id int64, req domain.CreateBusinessTagRequest) (*domain.BusinessTag, error)
	Delete(ctx context.Context, id int64) (*domain.BusinessTag, error)
}

type TranslationService interface {
	Create(ctx context.Context, req domain.CreateTranslationRequest) (*domain.Translation, error)
	GetByID(ctx context.Context, id int64) (*domain.Translation, error)
	List(ctx context.Context) ([]domain.Translation, error)
	Update(ctx context.Context, id int64, req domain.CreateTranslationRequest) (*domain.Translation, error)
	Delete(ctx context.Context, id int64) (*domain.Translation, error)
}

type AuthService interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResult, error)
	Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResult, error)
}

type ApiLogService interface {
	List(ctx context.Context, page, pageSize int) (*domain.Page[domain.ApiLog], error)
	ClearOld(ctx context.Context) (int, error)
	ClearAll(ctx context.Context) (int, error)
	Stats(ctx context.Context) (*domain.ApiLogStats, error)
}

// TokenVerifier guards the export endpoint.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

type Server struct {
	langTags     LangTagService
	businessTags BusinessTagService
	translations TranslationService
	auth         AuthService
	apiLogs      ApiLogService
	tokens       TokenVerifier
	db           *sql.DB
}

func NewServer(
	langTags LangTagService,
	businessTags BusinessTagService,
	translations TranslationService,
	auth AuthService,
	apiLogs ApiLogService,
	tokens TokenVerifier,
	db *sql.DB,
) *Server {
	return &Server{
		langTags:     langTags,
		businessTags: businessTags,
		translations: translations,
		auth:         auth,
		apiLogs:      apiLogs,
		tokens:       tokens,
		db:           db,
	}
}

// apiResponse is the envelope every API route answers with.
type apiResponse struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Result     interface{} `json:"result,omitempty"`
}

func respond(c echo.Context, code int, message string, result interface{}) error {
	return c.JSON(code, apiResponse{
		StatusCode: code,
		Message:    message,
		Result:     result,
	})
}

func respondError(c echo.Context, code int, message string) error {
	return c.JSON(code, apiResponse{
		StatusCode: code,
		Message:    message,
	})
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func pageParams(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))
	return page, pageSize
}

func (s *Server) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "I18n Translation API is running!",
		"version": version,
	})
}

func (s *Server) HealthCheck(c echo.Context) error {
	if err := s.db.Ping(); err != nil {
		log.WithField("error", err).Error("Health check failed: database is down")
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  "database connection error",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
