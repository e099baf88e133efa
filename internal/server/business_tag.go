package server

import (
	"errors"
	"net/http"

	"translation-service/internal/domain"

	log "github.com/sirupsen/logrus"

	"github.com/labstack/echo/v4"
)

func (s *Server) ListBusinessTags(c echo.Context) error {
	page, pageSize := pageParams(c)

	result, err := s.businessTags.List(c.Request().Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list business tags")
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	return respond(c, http.StatusOK, "find all success", result)
}

func (s *Server) CreateBusinessTag(c echo.Context) error {
	var req domain.CreateBusinessTagRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return respondError(c, http.StatusBadRequest, "name is required")
	}

	tag, err := s.businessTags.Create(c.Request().Context(), req)
	if err != nil {
		log.WithError(err).Error("Failed to create business tag")
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	return respond(c, http.StatusCreated, "create success", tag)
}

func (s *Server) GetBusinessTag(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid id")
	}

	tag, err := s.businessTags.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrBusinessTagNotFound) {
			return respondError(c, http.StatusNotFound, "business tag not found")
		}
		log.WithError(err).WithField("business_tag_id", id).Error("Failed to get business tag")
		return respondError(c, http.StatusInternalServerError, "internal server error")
	}
	return respond(c, http.StatusOK, "find by id success", tag)
}

func (s *Server) UpdateBusinessTag(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid id")
	}

	var req domain.CreateBusinessTagRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	tag, err := s.businessTags.Update(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, domain.ErrBusinessTagNotFound) {
			return respondError(c, http.StatusNotFound, "business tag not found")
		}
		log.WithError(err).WithField("business_tag_id", id).Error("Failed to update business tag")
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	return respond(c, http.StatusOK, "update success", tag)
}

func (s *Server) DeleteBusinessTag(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid id")
	}

	tag, err := s.businessTags.Delete(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrBusinessTagNotFound) {
			return respondError(c, http.StatusNotFound, "business tag not found")
		}
		log.WithError(err).WithField("business_tag_id", id).Error("Failed to delete business tag")
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	return respond(c, http.StatusOK, "delete success", tag)
}
