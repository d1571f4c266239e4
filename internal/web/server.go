// Package web serves the portfolio over HTTP with gin.
package web

import (
	"context"
	"crypto/rand"
	"embed"
	"encoding/hex"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/content"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// CVPath is where the configured CV document is served.
const CVPath = "/cv.pdf"

// Server is the portfolio HTTP server.
type Server struct {
	cfg     *config.Config
	content *content.Holder
	logger  *slog.Logger
	tmpl    *template.Template
	engine  *gin.Engine

	// salt keys visitor hashes to this process, so hashes cannot be joined
	// across restarts.
	salt string
}

// New builds the server and its routes.
func New(cfg *config.Config, holder *content.Holder, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	salt, err := randomHex(32)
	if err != nil {
		return nil, fmt.Errorf("generating visitor salt: %w", err)
	}

	gin.SetMode(cfg.Server.Mode)
	s := &Server{
		cfg:     cfg,
		content: holder,
		logger:  logger,
		tmpl:    tmpl,
		engine:  gin.New(),
		salt:    salt,
	}
	s.engine.SetHTMLTemplate(tmpl)
	if err := s.routes(); err != nil {
		return nil, err
	}
	return s, nil
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return tmpl, nil
}

func (s *Server) routes() error {
	r := s.engine
	r.Use(gin.Recovery(), requestID(), s.visitLogger(), clientHints())

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return fmt.Errorf("static assets: %w", err)
	}
	r.StaticFS("/static", http.FS(static))

	if dir := s.cfg.Assets.ImagesDir; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			r.Static("/images", dir)
		} else {
			s.logger.Debug("images directory not served", "dir", dir)
		}
	}

	if cv := s.cfg.Assets.CV; cv != "" {
		if _, err := os.Stat(cv); err != nil {
			s.logger.Warn("CV document not readable, /cv.pdf will 404", "path", cv, "error", err)
		}
		// Inline by default for the preview frame; ?download=1 forces a save.
		r.GET(CVPath, func(c *gin.Context) {
			if c.Query("download") != "" {
				c.FileAttachment(cv, "cv.pdf")
				return
			}
			c.File(cv)
		})
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", s.page)
	r.GET("/projects", s.page)
	r.GET("/blog", s.page)

	r.POST("/theme/toggle", s.toggleTheme)
	r.POST("/theme", s.setTheme)

	r.NoRoute(s.notFound)
	return nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Server.Port,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", srv.Addr, "mode", gin.Mode())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
