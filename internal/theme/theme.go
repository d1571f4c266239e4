// Package theme resolves, persists and applies the light/dark preference.
//
// A Controller owns a single boolean. Where the value comes from and where it
// goes are injected: a Store persists it between page loads and a
// MediaReader reports the operating system's colour-scheme signal. Either may
// be nil or broken; the controller then falls back to its configured default
// and never returns an error.
package theme

import (
	"log/slog"
	"strconv"
)

// Key is the name the preference is persisted under.
const Key = "darkMode"

// DarkClass is toggled on the document root when dark mode is active.
const DarkClass = "dark"

// Store persists string values by key.
type Store interface {
	// Get returns the stored value and whether one exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// MediaReader reports the platform's dark colour-scheme signal.
type MediaReader interface {
	// PrefersDark returns the signal and whether it could be read at all.
	PrefersDark() (dark bool, ok bool)
}

// Policy decides what happens when nothing is stored.
type Policy struct {
	// FollowSystem lets the MediaReader signal win over Default.
	FollowSystem bool
	// Default is used when neither a stored value nor a usable signal exists.
	Default bool
}

// DefaultPolicy follows the operating system and falls back to light.
func DefaultPolicy() Policy {
	return Policy{FollowSystem: true, Default: false}
}

// Controller holds the dark-mode flag for one page view.
type Controller struct {
	store  Store
	media  MediaReader
	policy Policy
	logger *slog.Logger

	dark bool
	root *ClassList
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for degraded reads and writes.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRoot binds the controller to an existing document root class list.
func WithRoot(root *ClassList) Option {
	return func(c *Controller) {
		if root != nil {
			c.root = root
		}
	}
}

// New creates a controller, resolves the initial preference and applies it to
// the document root. Nothing is persisted until Set or Toggle is called.
func New(store Store, media MediaReader, policy Policy, opts ...Option) *Controller {
	c := &Controller{
		store:  store,
		media:  media,
		policy: policy,
		logger: slog.Default(),
		root:   NewClassList(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.dark = c.Initial()
	c.apply()
	return c
}

// Initial resolves the preference from storage, then the system signal, then
// the policy default.
func (c *Controller) Initial() bool {
	if dark, ok := c.stored(); ok {
		return dark
	}
	if c.policy.FollowSystem && c.media != nil {
		if dark, ok := c.media.PrefersDark(); ok {
			return dark
		}
	}
	return c.policy.Default
}

func (c *Controller) stored() (bool, bool) {
	if c.store == nil {
		return false, false
	}
	raw, ok, err := c.store.Get(Key)
	if err != nil {
		c.logger.Debug("theme store unavailable", "error", err)
		return false, false
	}
	if !ok {
		return false, false
	}
	dark, err := strconv.ParseBool(raw)
	if err != nil {
		c.logger.Debug("ignoring unparseable theme preference", "value", raw)
		return false, false
	}
	return dark, true
}

// Set persists dark and applies it to the document root.
func (c *Controller) Set(dark bool) {
	c.dark = dark
	if c.store != nil {
		if err := c.store.Set(Key, strconv.FormatBool(dark)); err != nil {
			c.logger.Debug("theme preference not persisted", "error", err)
		}
	}
	c.apply()
}

// Toggle flips the flag and returns the new value.
func (c *Controller) Toggle() bool {
	c.Set(!c.dark)
	return c.dark
}

// IsDark reports the current flag.
func (c *Controller) IsDark() bool {
	return c.dark
}

// Root returns the document root class list the controller styles.
func (c *Controller) Root() *ClassList {
	return c.root
}

func (c *Controller) apply() {
	if c.dark {
		c.root.Add(DarkClass)
	} else {
		c.root.Remove(DarkClass)
	}
}
