package web

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zachkp/folio/internal/theme"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"

	reducedMotionHint = "Sec-CH-Prefers-Reduced-Motion"
)

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// clientHints asks browsers for the colour-scheme and motion preferences so
// the first render already matches the OS setting.
func clientHints() gin.HandlerFunc {
	hints := theme.ColorSchemeHint + ", " + reducedMotionHint
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Accept-CH", hints)
		h.Set("Critical-CH", theme.ColorSchemeHint)
		h.Add("Vary", hints+", Cookie")
		c.Next()
	}
}

// untracked paths are logged at debug level only.
func untracked(path string) bool {
	return strings.HasPrefix(path, "/static/") ||
		strings.HasPrefix(path, "/images/") ||
		strings.HasPrefix(path, "/favicon") ||
		path == "/healthz"
}

// visitLogger logs each request. Page views carry a salted hash of the
// client IP instead of the address itself, and are skipped for DNT clients.
func (s *Server) visitLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		attrs := []any{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", c.GetString(requestIDKey),
		}

		if untracked(path) || c.GetHeader("DNT") == "1" {
			s.logger.Debug("request", attrs...)
			return
		}

		attrs = append(attrs,
			"visitor", s.hashIP(c.ClientIP()),
			"user_agent", c.Request.UserAgent(),
		)
		s.logger.Info("page view", attrs...)
	}
}

// hashIP is stable per IP for the life of the process.
func (s *Server) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}
