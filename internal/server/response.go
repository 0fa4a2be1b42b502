package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"plates-planner/internal/service"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": apiError{Code: code, Message: message}})
}

// respondServiceError maps service-layer failures onto the envelope.
func (s *Server) respondServiceError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) {
		respondError(c, http.StatusNotFound, "not_found", "resource not found")
		return
	}
	s.log.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
	respondError(c, http.StatusInternalServerError, "internal", "internal server error")
}

func respondBadRequest(c *gin.Context, err error) {
	respondError(c, http.StatusBadRequest, "bad_request", err.Error())
}
