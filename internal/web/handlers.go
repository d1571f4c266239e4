package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/nav"
	"github.com/Zachkp/folio/internal/theme"
	"github.com/Zachkp/folio/internal/view"
)

// Events sent to the client through htmx trigger headers.
const (
	scrollEvent = "folio:scroll"
	themeEvent  = "folio:theme"
)

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// themeFor binds a controller to the request's cookie and client hint.
func (s *Server) themeFor(c *gin.Context) *theme.Controller {
	return theme.New(
		theme.NewCookieStore(c, s.cfg.Server.SecureCookies),
		theme.NewClientHint(c.Request),
		s.cfg.Theme.Policy(),
		theme.WithLogger(s.logger),
		theme.WithRoot(theme.NewClassList("scroll-smooth")),
	)
}

func (s *Server) viewOptions(c *gin.Context, route nav.Route, ctrl *theme.Controller) view.Options {
	opts := view.Options{
		Route:         route,
		Dark:          ctrl.IsDark(),
		RootClass:     ctrl.Root().String(),
		ReducedMotion: theme.HintValue(c.Request, reducedMotionHint) == "reduce",
	}
	if s.cfg.Assets.CV != "" {
		opts.CVHref = CVPath
	}
	return opts
}

// htmxViewport delivers scroll resets to htmx clients as an event fired
// after the swapped-in content has settled. Full page loads already start
// at the top.
type htmxViewport struct {
	c *gin.Context
}

func (v htmxViewport) ScrollTo(x, y int) {
	if !isHTMX(v.c) {
		return
	}
	trigger, _ := json.Marshal(map[string]any{
		scrollEvent: map[string]int{"x": x, "y": y},
	})
	v.c.Header("HX-Trigger-After-Settle", string(trigger))
}

// previousRoute is where an htmx navigation came from. Plain requests
// have no previous route, so they count as arriving at their target.
func previousRoute(c *gin.Context, fallback nav.Route) nav.Route {
	raw := c.GetHeader("HX-Current-URL")
	if raw == "" {
		return fallback
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fallback
	}
	r, _, ok := nav.Lookup(u.Path)
	if !ok {
		return fallback
	}
	return r
}

func (s *Server) page(c *gin.Context) {
	target, _, _ := nav.Lookup(c.Request.URL.Path)
	ctrl := s.themeFor(c)
	site := s.content.Site()

	var buf bytes.Buffer
	mount := func(r nav.Route) error {
		return s.tmpl.ExecuteTemplate(&buf, "page", view.Build(site, s.viewOptions(c, r, ctrl)))
	}

	shell := nav.NewShell(previousRoute(c, target), mount, htmxViewport{c})
	t, err := shell.Navigate(c.Request.URL.Path)
	if errors.Is(err, nav.ErrUnknownRoute) {
		s.notFound(c)
		return
	}
	if err != nil {
		s.logger.Error("rendering page", "path", c.Request.URL.Path, "error", err,
			"request_id", c.GetString(requestIDKey))
		c.String(http.StatusInternalServerError, "Something went wrong.")
		return
	}

	if t.Changed() {
		s.logger.Debug("route change", "from", t.From.String(), "to", t.To.String())
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) notFound(c *gin.Context) {
	ctrl := s.themeFor(c)
	p := view.NotFound(s.content.Site(), s.viewOptions(c, nav.Home, ctrl))
	c.HTML(http.StatusNotFound, "page", p)
}

func (s *Server) toggleTheme(c *gin.Context) {
	ctrl := s.themeFor(c)
	ctrl.Toggle()
	s.themeResponse(c, ctrl)
}

func (s *Server) setTheme(c *gin.Context) {
	dark, err := strconv.ParseBool(c.PostForm("dark"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dark must be true or false"})
		return
	}
	ctrl := s.themeFor(c)
	ctrl.Set(dark)
	s.themeResponse(c, ctrl)
}

// themeResponse answers a preference change for htmx, JSON and plain form
// clients respectively.
func (s *Server) themeResponse(c *gin.Context, ctrl *theme.Controller) {
	dark := ctrl.IsDark()
	switch {
	case isHTMX(c):
		trigger, _ := json.Marshal(map[string]any{
			themeEvent: map[string]bool{"dark": dark},
		})
		c.Header("HX-Trigger", string(trigger))
		c.HTML(http.StatusOK, "theme-toggle", gin.H{"Dark": dark})
	case c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON:
		c.JSON(http.StatusOK, gin.H{theme.Key: dark})
	default:
		c.Redirect(http.StatusSeeOther, backTo(c))
	}
}

// backTo returns the same-site path of the Referer, or "/".
func backTo(c *gin.Context) string {
	ref, err := url.Parse(c.GetHeader("Referer"))
	if err != nil || ref.Path == "" {
		return "/"
	}
	if ref.Host != "" && ref.Host != c.Request.Host {
		return "/"
	}
	if _, _, ok := nav.Lookup(ref.Path); !ok {
		return "/"
	}
	return ref.Path
}
