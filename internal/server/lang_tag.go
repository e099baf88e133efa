package server

import (
	"errors"
	"net/http"

	"translation-service/internal/domain"

	log "github.com/sirupsen/logrus"

	"github.com/labstack/echo/v4"
)

func (s *Server) ListLangTags(c echo.Context) error {
	page, pageSize := pageParams(c)

	result, err := s.langTags.List(c.Request().Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list lang tags")
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	return respond(c, http.StatusOK, "find all success", result)
}

func (s *Server) CreateLangTag(c echo.Context) error {
	var req domain.CreateLangTagRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return respondError(c, http.StatusBadRequest, "name is required")
	}

	tag, err := s.langTags.Create(c.Request().Context(), req)
	if err != nil {
		log.WithError(err).Error("Failed to create lang tag")
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	return respond(c, http.StatusCreated, "create success", tag)
}

func (s *Server) GetLangTag(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid id")
	}

	tag, err := s.langTags.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrLangTagNotFound) {
			return respondError(c, http.StatusNotFound, "lang tag not found")
		}
		log.WithError(err).WithField("lang_tag_id", id).Error("Failed to get lang tag")
		return respondError(c, http.StatusInternalServerError, "internal server error")
	}
	return respond(c, http.StatusOK, "find by id success", tag)
}

func (s *Server) UpdateLangTag(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid id")
	}

	var req domain.CreateLangTagRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	tag, err := s.langTags.Update(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, domain.ErrLangTagNotFound) {
			return respondError(c, http.StatusNotFound, "lang tag not found")
		}
		log.WithError(err).WithField("lang_tag_id", id).Error("Failed to update lang tag")
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	return respond(c, http.StatusOK, "update success", tag)
}

func (s *Server) DeleteLangTag(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid id")
	}

	tag, err := s.langTags.Delete(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrLangTagNotFound) {
			return respondError(c, http.StatusNotFound, "lang tag not found")
		}
		log.WithError(err).WithField("lang_tag_id", id).Error("Failed to delete lang tag")
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	return respond(c, http.StatusOK, "delete success", tag)
}
