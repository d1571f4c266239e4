package nav

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		path   string
		route  Route
		anchor string
		ok     bool
	}{
		{"/", Home, "", true},
		{"", Home, "", true},
		{"/#projects", Home, "projects", true},
		{"/projects", ProjectsList, "", true},
		{"/projects/", ProjectsList, "", true},
		{"/projects#top", ProjectsList, "", true},
		{"/blog?page=2", BlogList, "", true},
		{"/admin", Home, "", false},
		{"/projects/x", Home, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			route, anchor, ok := Lookup(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.route, route)
			assert.Equal(t, tt.anchor, anchor)
		})
	}
}

func TestRoutePathRoundTrip(t *testing.T) {
	for _, r := range Routes {
		got, _, ok := Lookup(r.Path())
		require.True(t, ok, r.String())
		assert.Equal(t, r, got)
	}
}

func TestHref(t *testing.T) {
	assert.Equal(t, "#cv", Href(Home, "cv"))
	assert.Equal(t, "/#cv", Href(BlogList, "cv"))

	menu := Menu(ProjectsList)
	require.Len(t, menu, len(Anchors))
	assert.Equal(t, "/#about", menu[0].Href)
}

func TestAwayMenu(t *testing.T) {
	away := AwayMenu()
	require.Len(t, away, len(Anchors))
	for i, l := range away {
		assert.Equal(t, "/#"+Anchors[i].ID, l.Href)
		assert.Equal(t, Anchors[i].Label, l.Label)
	}
	assert.Equal(t, "#about", Menu(Home)[0].Href)
}

type recorder struct {
	events []string
}

func (r *recorder) ScrollTo(x, y int) {
	r.events = append(r.events, "scroll")
	if x != 0 || y != 0 {
		r.events = append(r.events, "not-top")
	}
}

func TestShell_ScrollResetsAfterMountOnEveryTransition(t *testing.T) {
	rec := &recorder{}
	mount := func(r Route) error {
		rec.events = append(rec.events, "mount:"+r.String())
		return nil
	}
	s := NewShell(Home, mount, rec)

	for _, from := range Routes {
		for _, to := range Routes {
			if from == to {
				continue
			}
			s.current = from
			rec.events = nil

			tr, err := s.Navigate(to.Path())
			require.NoError(t, err)
			assert.Equal(t, from, tr.From)
			assert.Equal(t, to, tr.To)
			assert.True(t, tr.Changed())
			assert.Equal(t, to, s.Current())
			assert.Equal(t, []string{"mount:" + to.String(), "scroll"}, rec.events)
		}
	}
}

func TestShell_FailedMountDoesNotScrollOrCommit(t *testing.T) {
	rec := &recorder{}
	boom := errors.New("template exploded")
	s := NewShell(Home, func(Route) error { return boom }, rec)

	_, err := s.Navigate("/blog")
	require.ErrorIs(t, err, boom)
	assert.Empty(t, rec.events)
	assert.Equal(t, Home, s.Current())
}

func TestShell_UnknownRoute(t *testing.T) {
	rec := &recorder{}
	s := NewShell(BlogList, nil, rec)

	_, err := s.Navigate("/nope")
	require.ErrorIs(t, err, ErrUnknownRoute)
	assert.Empty(t, rec.events)
	assert.Equal(t, BlogList, s.Current())
}

func TestShell_NilViewport(t *testing.T) {
	s := NewShell(Home, nil, nil)
	tr, err := s.Navigate("/#blog")
	require.NoError(t, err)
	assert.Equal(t, "blog", tr.Anchor)
	assert.False(t, tr.Changed())
}
