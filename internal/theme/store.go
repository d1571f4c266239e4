package theme

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// MemoryStore keeps values in process memory. It stands in for the browser
// store wherever no request is available.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// CookieMaxAge is how long a persisted preference survives.
const CookieMaxAge = 365 * 24 * time.Hour

// CookieStore persists values as cookies on a single request/response pair.
// Values written during the request are served back by Get, since the
// incoming request still carries the old cookie.
type CookieStore struct {
	c       *gin.Context
	secure  bool
	written map[string]string
}

// NewCookieStore binds a store to c. Secure marks cookies HTTPS-only.
func NewCookieStore(c *gin.Context, secure bool) *CookieStore {
	return &CookieStore{c: c, secure: secure, written: make(map[string]string)}
}

func (s *CookieStore) Get(key string) (string, bool, error) {
	if v, ok := s.written[key]; ok {
		return v, true, nil
	}
	v, err := s.c.Cookie(key)
	if errors.Is(err, http.ErrNoCookie) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *CookieStore) Set(key, value string) error {
	// Not HttpOnly: folio.js reads it back after htmx history restores.
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, value, int(CookieMaxAge.Seconds()), "/", "", s.secure, false)
	s.written[key] = value
	return nil
}

// ColorSchemeHint is the client hint carrying the OS colour-scheme preference.
const ColorSchemeHint = "Sec-CH-Prefers-Color-Scheme"

// ClientHint reads the colour-scheme client hint of a request.
type ClientHint struct {
	value string
}

// NewClientHint reads the hint from r. A nil request yields no signal.
func NewClientHint(r *http.Request) ClientHint {
	if r == nil {
		return ClientHint{}
	}
	return ClientHint{value: HintValue(r, ColorSchemeHint)}
}

func (h ClientHint) PrefersDark() (bool, bool) {
	switch h.value {
	case "dark":
		return true, true
	case "light":
		return false, true
	default:
		return false, false
	}
}

// HintValue returns the token of a preference client hint. Browsers send these
// as structured-header strings, so surrounding quotes are removed.
func HintValue(r *http.Request, name string) string {
	return trimQuotes(strings.TrimSpace(r.Header.Get(name)))
}

func trimQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// NoMedia never has a signal.
type NoMedia struct{}

func (NoMedia) PrefersDark() (bool, bool) { return false, false }
