package server

import (
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/labstack/echo/v4"
)

func (s *Server) ListApiLogs(c echo.Context) error {
	page, pageSize := pageParams(c)

	result, err := s.apiLogs.List(c.Request().Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to retrieve API logs")
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	return respond(c, http.StatusOK, "API logs retrieved successfully", result)
}

type purgeResult struct {
	DeletedCount int    `json:"deletedCount"`
	Message      string `json:"message"`
}

func (s *Server) ClearOldApiLogs(c echo.Context) error {
	deleted, err := s.apiLogs.ClearOld(c.Request().Context())
	if err != nil {
		log.WithError(err).Error("Failed to clear old logs")
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	return respond(c, http.StatusOK, "Old logs cleared successfully", purgeResult{
		DeletedCount: deleted,
		Message:      fmt.Sprintf("Successfully deleted %d old log records", deleted),
	})
}

func (s *Server) ClearAllApiLogs(c echo.Context) error {
	log.Info("Starting clear all logs operation")

	deleted, err := s.apiLogs.ClearAll(c.Request().Context())
	if err != nil {
		log.WithError(err).Error("Failed to clear all logs")
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	log.WithField("deleted_count", deleted).Info("Clear all logs completed")
	return respond(c, http.StatusOK, "All logs cleared successfully", purgeResult{
		DeletedCount: deleted,
		Message:      fmt.Sprintf("Successfully deleted %d log records", deleted),
	})
}

func (s *Server) ApiLogStats(c echo.Context) error {
	stats, err := s.apiLogs.Stats(c.Request().Context())
	if err != nil {
		log.WithError(err).Error("Failed to retrieve API log stats")
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	return respond(c, http.StatusOK, "API log stats retrieved successfully", stats)
}
