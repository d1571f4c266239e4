package nav

import "fmt"

// Viewport receives scroll commands.
type Viewport interface {
	ScrollTo(x, y int)
}

// MountFunc renders the view for a route. The view's top-level element
// exists once it returns nil.
type MountFunc func(Route) error

// Transition describes a committed navigation.
type Transition struct {
	From   Route
	To     Route
	Anchor string
}

// Changed reports whether the route differs from the previous one.
func (t Transition) Changed() bool {
	return t.From != t.To
}

// Shell tracks the current route.
type Shell struct {
	current  Route
	mount    MountFunc
	viewport Viewport
}

// NewShell starts a shell at current. A nil viewport discards scroll commands.
func NewShell(current Route, mount MountFunc, viewport Viewport) *Shell {
	if viewport == nil {
		viewport = discardViewport{}
	}
	return &Shell{current: current, mount: mount, viewport: viewport}
}

// Current returns the committed route.
func (s *Shell) Current() Route {
	return s.current
}

// Navigate mounts the view for path, commits the route and resets the
// viewport to the top. The scroll reset only happens after a successful mount.
func (s *Shell) Navigate(path string) (Transition, error) {
	route, anchor, ok := Lookup(path)
	if !ok {
		return Transition{}, fmt.Errorf("%w: %q", ErrUnknownRoute, path)
	}

	if s.mount != nil {
		if err := s.mount(route); err != nil {
			return Transition{}, fmt.Errorf("mounting %s: %w", route, err)
		}
	}

	t := Transition{From: s.current, To: route, Anchor: anchor}
	s.current = route
	s.viewport.ScrollTo(0, 0)
	return t, nil
}

type discardViewport struct{}

func (discardViewport) ScrollTo(int, int) {}
