// Package view turns content and request state into page models for the
// templates. Nothing here performs I/O.
package view

import (
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/nav"
	"github.com/Zachkp/folio/internal/reveal"
)

// RecentPostCount is how many posts the About section teases.
const RecentPostCount = 2

// Options carries per-request inputs.
type Options struct {
	Route nav.Route
	// Dark and RootClass come from the request's theme controller.
	Dark      bool
	RootClass string
	// ReducedMotion pre-reveals every section.
	ReducedMotion bool
	// CVHref is where the CV document is served, empty when none is configured.
	CVHref string
}

// Page is the model for one rendered document.
type Page struct {
	Route     nav.Route
	Title     string
	SiteName  string
	Dark      bool
	RootClass string
	Menu      []nav.Link

	Home     *Home
	Projects *ProjectsPage
	Blog     *BlogPage
	// Missing marks the not-found page.
	Missing bool
}

// Section is a revealable block of a page.
type Section struct {
	ID     string
	Reveal *reveal.Latch
}

// RevealState is rendered into data-reveal for the client-side latch.
func (s Section) RevealState() string {
	return s.Reveal.State().String()
}

type Home struct {
	About      About
	Tech       Tech
	Projects   Projects
	Experience Experience
	Blog       Blog
	CV         CV
}

type About struct {
	Section
	Profile     content.Profile
	Social      []content.SocialLink
	News        []content.NewsUpdate
	RecentPosts []content.BlogPost
}

type Tech struct {
	Section
	Rows []content.TechRow
}

type Projects struct {
	Section
	List Listing[content.Project]
}

type Experience struct {
	Section
	Entries []content.Experience
}

type Blog struct {
	Section
	List Listing[content.BlogPost]
}

type CV struct {
	Section
	content.CV
	DocumentHref string
}

// ProjectsPage is the full projects view.
type ProjectsPage struct {
	Projects
	Back nav.Link
}

// BlogPage is the full blog view.
type BlogPage struct {
	Blog
	Back nav.Link
}

// Build assembles the page for opts.Route.
func Build(site *content.Site, opts Options) *Page {
	p := &Page{
		Route:     opts.Route,
		Title:     title(site, opts.Route),
		SiteName:  site.Profile.Name,
		Dark:      opts.Dark,
		RootClass: opts.RootClass,
		Menu:      nav.Menu(opts.Route),
	}
	b := builder{reducedMotion: opts.ReducedMotion}
	back := nav.Link{Label: "Back to Home", Href: nav.Home.Path()}

	switch opts.Route {
	case nav.ProjectsList:
		p.Projects = &ProjectsPage{Projects: b.projects(site, false), Back: back}
	case nav.BlogList:
		p.Blog = &BlogPage{Blog: b.blog(site, false), Back: back}
	default:
		p.Home = &Home{
			About: About{
				Section:     b.section("about"),
				Profile:     site.Profile,
				Social:      site.Social,
				News:        site.News,
				RecentPosts: recent(site.Posts),
			},
			Tech:     Tech{Section: b.section("tech-stack"), Rows: site.Technologies},
			Projects: b.projects(site, true),
			Experience: Experience{
				Section: b.section("experience"),
				Entries: site.Experience,
			},
			Blog: b.blog(site, true),
			CV:   CV{Section: b.section("cv"), CV: site.CV, DocumentHref: opts.CVHref},
		}
	}
	return p
}

// NotFound is the page shown for unknown paths.
func NotFound(site *content.Site, opts Options) *Page {
	return &Page{
		Route:     opts.Route,
		Title:     "Page not found",
		SiteName:  site.Profile.Name,
		Dark:      opts.Dark,
		RootClass: opts.RootClass,
		Menu:      nav.AwayMenu(),
		Missing:   true,
	}
}

func title(site *content.Site, r nav.Route) string {
	if r == nav.Home {
		return site.Profile.Name
	}
	if site.Profile.Name == "" {
		return r.Title()
	}
	return r.Title() + " | " + site.Profile.Name
}

// recent returns the leading posts teased in the About section. The result
// has no spare capacity, so appends never reach the site's slice.
func recent(posts []content.BlogPost) []content.BlogPost {
	n := min(len(posts), RecentPostCount)
	return posts[:n:n]
}

type builder struct {
	reducedMotion bool
}

// section creates a fresh latch, so every rendered instance reveals on its own.
func (b builder) section(id string) Section {
	l := &reveal.Latch{}
	if b.reducedMotion {
		l.Observe(true)
	}
	return Section{ID: id, Reveal: l}
}

func (b builder) projects(site *content.Site, limited bool) Projects {
	return Projects{
		Section: b.section("projects"),
		List:    List(site.Projects, limited, nav.ProjectsList, "See All Projects"),
	}
}

func (b builder) blog(site *content.Site, limited bool) Blog {
	return Blog{
		Section: b.section("blog"),
		List:    List(site.Posts, limited, nav.BlogList, "See All Articles"),
	}
}
