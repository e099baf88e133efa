package server

import (
	"errors"
	"net/http"
	"strings"

	"translation-service/internal/domain"

	log "github.com/sirupsen/logrus"

	"github.com/labstack/echo/v4"
)

func (s *Server) ListTranslations(c echo.Context) error {
	entries, err := s.translations.List(c.Request().Context())
	if err != nil {
		log.WithError(err).Error("Failed to list translations")
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	return respond(c, http.StatusOK, "find all success", entries)
}

func (s *Server) CreateTranslation(c echo.Context) error {
	var req domain.CreateTranslationRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.BusinessTagID < 1 {
		return respondError(c, http.StatusBadRequest, "name and business_tag_id are required")
	}

	entry, err := s.translations.Create(c.Request().Context(), req)
	if err != nil {
		// Validation failures carry their own message (invalid language
		// keys, empty content); everything else surfaces as a 400 too.
		log.WithError(err).Error("Failed to create translation")
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	return respond(c, http.StatusCreated, "create success", entry)
}

func (s *Server) GetTranslation(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid id")
	}

	entry, err := s.translations.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTranslationNotFound) {
			return respondError(c, http.StatusNotFound, "translation not found")
		}
		log.WithError(err).WithField("translation_id", id).Error("Failed to get translation")
		return respondError(c, http.StatusInternalServerError, "internal server error")
	}
	return respond(c, http.StatusOK, "find by id success", entry)
}

func (s *Server) UpdateTranslation(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid id")
	}

	var req domain.CreateTranslationRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	entry, err := s.translations.Update(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, domain.ErrTranslationNotFound) {
			return respondError(c, http.StatusNotFound, "translation not found")
		}
		log.WithError(err).WithField("translation_id", id).Error("Failed to update translation")
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	return respond(c, http.StatusOK, "update success", entry)
}

func (s *Server) DeleteTranslation(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid id")
	}

	entry, err := s.translations.Delete(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTranslationNotFound) {
			return respondError(c, http.StatusNotFound, "translation not found")
		}
		log.WithError(err).WithField("translation_id", id).Error("Failed to delete translation")
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	return respond(c, http.StatusOK, "delete success", entry)
}

// ExportTranslation streams a single translation row as a JSON file
// download. Unlike the other routes it requires a verified bearer token.
func (s *Server) ExportTranslation(c echo.Context) error {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return respondError(c, http.StatusUnauthorized, "Authorization token required")
	}
	if _, err := s.tokens.Verify(strings.TrimPrefix(authHeader, "Bearer ")); err != nil {
		return respondError(c, http.StatusUnauthorized, "Invalid token")
	}

	id, err := parseID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid id")
	}

	entry, err := s.translations.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTranslationNotFound) {
			return respondError(c, http.StatusNotFound, "translation not found")
		}
		log.WithError(err).WithField("translation_id", id).Error("Failed to export translation")
		return respondError(c, http.StatusInternalServerError, "Export failed")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=translations.json")
	return c.JSON(http.StatusOK, entry)
}
