package server

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"plates-planner/internal/model"
)

const userContextKey = "current_user"

// requestLogger logs every request with structured fields, escalating
// the level with the status code.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		entry := s.log.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		})
		switch {
		case status >= 500:
			entry.Error("request")
		case status >= 400:
			entry.Warn("request")
		default:
			entry.Info("request")
		}
	}
}

// currentUser resolves the single local account, seeding it on first
// run. The auth stand-in until real sessions exist.
func (s *Server) currentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := s.users.Current(c.Request.Context())
		if err != nil {
			s.log.WithError(err).Error("resolve current user")
			respondError(c, http.StatusInternalServerError, "internal", "internal server error")
			c.Abort()
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) *model.User {
	return c.MustGet(userContextKey).(*model.User)
}

// cronAuth guards scheduler endpoints with a shared bearer secret.
func (s *Server) cronAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(s.cronSecret)) != 1 {
			respondError(c, http.StatusUnauthorized, "unauthorized", "invalid cron secret")
			c.Abort()
			return
		}
		c.Next()
	}
}
