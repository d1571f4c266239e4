package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDocument []byte

// markdown renders biography text. The default renderer escapes raw HTML.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Default returns the site content compiled into the binary.
func Default() (*Site, error) {
	return Decode(bytes.NewReader(defaultDocument))
}

// LoadFile reads a content document from disk.
func LoadFile(path string) (*Site, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening content %s: %w", path, err)
	}
	defer f.Close()

	site, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return site, nil
}

// Load reads path when set and falls back to the embedded document otherwise.
func Load(path string) (*Site, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Decode parses a YAML content document and renders its markdown fields.
func Decode(r io.Reader) (*Site, error) {
	var site Site
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&site); err != nil {
		return nil, fmt.Errorf("decoding content: %w", err)
	}

	html, err := Markdown(site.Profile.About)
	if err != nil {
		return nil, fmt.Errorf("rendering profile.about: %w", err)
	}
	site.Profile.AboutHTML = html
	return &site, nil
}

// Markdown converts src to HTML safe for direct use in templates.
func Markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
