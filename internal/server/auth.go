package server

import (
	"errors"
	"net/http"

	"translation-service/internal/domain"

	log "github.com/sirupsen/logrus"

	"github.com/labstack/echo/v4"
)

func (s *Server) Register(c echo.Context) error {
	var req domain.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return respondError(c, http.StatusBadRequest, "name, email and password are required")
	}

	result, err := s.auth.Register(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return respondError(c, http.StatusConflict, err.Error())
		}
		log.WithError(err).WithField("email", req.Email).Error("Failed to register user")
		return respondError(c, http.StatusInternalServerError, "internal server error")
	}
	return respond(c, http.StatusCreated, "register success", result)
}

func (s *Server) Login(c echo.Context) error {
	var req domain.LoginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	result, err := s.auth.Login(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return respondError(c, http.StatusUnauthorized, err.Error())
		}
		log.WithError(err).WithField("email", req.Email).Error("Failed to log in user")
		return respondError(c, http.StatusInternalServerError, "internal server error")
	}
	return respond(c, http.StatusOK, "login success", result)
}
