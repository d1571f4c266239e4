package content

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	site, err := Default()
	require.NoError(t, err)

	assert.NotEmpty(t, site.Profile.Name)
	assert.Greater(t, len(site.Projects), 3, "home view needs more projects than it shows")
	assert.Greater(t, len(site.Posts), 3, "home view needs more posts than it shows")
	assert.NotEmpty(t, site.Experience)
	assert.NotEmpty(t, site.Technologies)
	assert.Empty(t, site.Duplicates())

	assert.Contains(t, string(site.Profile.AboutHTML), "<strong>")
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), site.Posts[0].Date)
}

func TestDecode_PreservesOrder(t *testing.T) {
	doc := `
projects:
  - title: C
  - title: A
  - title: B
`
	site, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	var titles []string
	for _, p := range site.Projects {
		titles = append(titles, p.Title)
	}
	assert.Equal(t, []string{"C", "A", "B"}, titles)
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("projects:\n  - titel: typo\n"))
	require.Error(t, err)
}

func TestMarkdown_EscapesRawHTML(t *testing.T) {
	html, err := Markdown("hello <script>alert(1)</script> *there*")
	require.NoError(t, err)
	assert.NotContains(t, string(html), "<script>")
	assert.Contains(t, string(html), "<em>there</em>")
}

func TestDuplicates(t *testing.T) {
	site := &Site{
		Projects: []Project{{Title: "A"}, {Title: "B"}, {Title: "A"}, {Title: "A"}},
		Posts:    []BlogPost{{Title: "X"}, {Title: "Y"}},
		News:     []NewsUpdate{{Title: "n"}, {Title: "n"}},
	}

	dups := site.Duplicates()
	require.Len(t, dups, 2)
	assert.Equal(t, Duplicate{List: "projects", Key: "A", Count: 3}, dups[0])
	assert.Equal(t, Duplicate{List: "news", Key: "n", Count: 2}, dups[1])
	assert.Equal(t, `projects: "A" appears 3 times`, dups[0].String())
}

func TestLoad(t *testing.T) {
	site, err := Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, site.Projects)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: Before\n"), 0644))

	site, err := LoadFile(path)
	require.NoError(t, err)
	h := NewHolder(site)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, Watch(ctx, path, h, nil))

	require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: After\n"), 0644))

	assert.Eventually(t, func() bool {
		return h.Site().Profile.Name == "After"
	}, 5*time.Second, 50*time.Millisecond)
}

func TestWatch_KeepsPreviousOnBadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: Good\n"), 0644))

	site, err := LoadFile(path)
	require.NoError(t, err)
	h := NewHolder(site)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, Watch(ctx, path, h, nil))

	require.NoError(t, os.WriteFile(path, []byte("profile: [broken"), 0644))
	time.Sleep(3 * debounce)
	assert.Equal(t, "Good", h.Site().Profile.Name)
}
