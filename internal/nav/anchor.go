package nav

// Anchor is an in-page section of the home view.
type Anchor struct {
	ID    string
	Label string
}

// Anchors are the home sections in page order.
var Anchors = []Anchor{
	{ID: "about", Label: "About"},
	{ID: "tech-stack", Label: "Tech Stack"},
	{ID: "projects", Label: "Projects"},
	{ID: "experience", Label: "Experience"},
	{ID: "blog", Label: "Blog"},
	{ID: "cv", Label: "CV"},
}

// Href links to a home section from the current route. On the home view the
// link stays in-page, elsewhere it navigates home first.
func Href(current Route, anchor string) string {
	return anchorHref(current == Home, anchor)
}

func anchorHref(onHome bool, anchor string) string {
	if onHome {
		return "#" + anchor
	}
	return Home.Path() + "#" + anchor
}

// Link is a rendered navigation entry.
type Link struct {
	Label string
	Href  string
}

// Menu builds the navbar entries for current.
func Menu(current Route) []Link {
	return menu(current == Home)
}

// AwayMenu builds the navbar for pages outside the route set, such as the
// not-found page. Every entry navigates home first.
func AwayMenu() []Link {
	return menu(false)
}

func menu(onHome bool) []Link {
	links := make([]Link, 0, len(Anchors))
	for _, a := range Anchors {
		links = append(links, Link{Label: a.Label, Href: anchorHref(onHome, a.ID)})
	}
	return links
}
