// Package nav maps URL paths to the site's three top-level views and keeps
// the scroll position in step with route changes.
package nav

import (
	"errors"
	"strings"
)

// Route is a top-level view.
type Route int

const (
	Home Route = iota
	ProjectsList
	BlogList
)

// Routes lists every route in navigation order.
var Routes = []Route{Home, ProjectsList, BlogList}

// ErrUnknownRoute is returned for paths outside the route set.
var ErrUnknownRoute = errors.New("nav: unknown route")

// Path returns the URL path the route is served at.
func (r Route) Path() string {
	switch r {
	case ProjectsList:
		return "/projects"
	case BlogList:
		return "/blog"
	default:
		return "/"
	}
}

func (r Route) String() string {
	switch r {
	case Home:
		return "home"
	case ProjectsList:
		return "projects"
	case BlogList:
		return "blog"
	default:
		return "unknown"
	}
}

// Title is the human label used in page titles and links.
func (r Route) Title() string {
	switch r {
	case ProjectsList:
		return "All Projects"
	case BlogList:
		return "All Articles"
	default:
		return "Home"
	}
}

// Lookup resolves a path, optionally carrying a query and #fragment, to a
// route and the in-page anchor. Trailing slashes are ignored.
func Lookup(path string) (Route, string, bool) {
	anchor := ""
	if i := strings.IndexByte(path, '#'); i >= 0 {
		path, anchor = path[:i], path[i+1:]
	}
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	if path == "" {
		path = "/"
	}

	for _, r := range Routes {
		if r.Path() == path {
			if r != Home {
				// Anchors only scroll within the home view.
				anchor = ""
			}
			return r, anchor, true
		}
	}
	return Home, "", false
}
