// Package content holds the hand-authored records rendered by the site.
//
// Everything is loaded once from a YAML document and never mutated
// afterwards; a reload replaces the whole Site value.
package content

import (
	"html/template"
	"time"
)

// Site is the complete content document.
type Site struct {
	Profile      Profile      `yaml:"profile"`
	Social       []SocialLink `yaml:"social"`
	News         []NewsUpdate `yaml:"news"`
	Technologies []TechRow    `yaml:"technologies"`
	Projects     []Project    `yaml:"projects"`
	Experience   []Experience `yaml:"experience"`
	Posts        []BlogPost   `yaml:"posts"`
	CV           CV           `yaml:"cv"`
}

// Profile is the biography shown at the top of the home view.
type Profile struct {
	Name     string `yaml:"name"`
	Headline string `yaml:"headline"`
	Summary  string `yaml:"summary"`
	Avatar   string `yaml:"avatar"`
	// About is markdown; AboutHTML is filled in on load.
	About     string        `yaml:"about"`
	AboutHTML template.HTML `yaml:"-"`
}

type SocialLink struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
	Icon  string `yaml:"icon"`
}

type NewsUpdate struct {
	Title string `yaml:"title"`
}

// TechRow is a labelled row of the technology stack.
type TechRow struct {
	Label string       `yaml:"label"`
	Items []Technology `yaml:"items"`
}

type Technology struct {
	Name  string `yaml:"name"`
	Icon  string `yaml:"icon"`
	Color string `yaml:"color"`
}

type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	GitHubURL   string   `yaml:"github_url"`
	LiveURL     string   `yaml:"live_url"`
	Image       string   `yaml:"image"`
}

// Experience is one entry of the work-experience timeline.
type Experience struct {
	Title        string   `yaml:"title"`
	Company      string   `yaml:"company"`
	Location     string   `yaml:"location"`
	Period       string   `yaml:"period"`
	Type         string   `yaml:"type"`
	Description  string   `yaml:"description"`
	Achievements []string `yaml:"achievements"`
	Technologies []string `yaml:"technologies"`
	Color        string   `yaml:"color"`
}

type BlogPost struct {
	Title    string    `yaml:"title"`
	Summary  string    `yaml:"summary"`
	Date     time.Time `yaml:"date"`
	ReadTime string    `yaml:"read_time"`
	Category string    `yaml:"category"`
	Image    string    `yaml:"image"`
	URL      string    `yaml:"url"`
}

// CV is the on-page résumé summary. The document itself is configured with
// the server's assets.
type CV struct {
	Experience []CVEntry `yaml:"experience"`
	Education  []CVEntry `yaml:"education"`
	Contact    Contact   `yaml:"contact"`
}

// CVEntry is a job or a degree.
type CVEntry struct {
	Title        string `yaml:"title"`
	Organization string `yaml:"organization"`
	Period       string `yaml:"period"`
	Description  string `yaml:"description"`
}

type Contact struct {
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	Location string `yaml:"location"`
}

// Titled is implemented by records keyed by their title.
type Titled interface {
	Key() string
}

func (p Project) Key() string    { return p.Title }
func (p BlogPost) Key() string   { return p.Title }
func (e Experience) Key() string { return e.Title + " @ " + e.Company }
func (n NewsUpdate) Key() string { return n.Title }
