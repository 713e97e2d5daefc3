package building

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/hyperion-dev/hyperion-site/data"
	"github.com/hyperion-dev/hyperion-site/data/tagfilter"
	"github.com/hyperion-dev/hyperion-site/render"
	"github.com/hyperion-dev/hyperion-site/route"
	"github.com/hyperion-dev/hyperion-site/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testContent(t *testing.T) *site.Content {
	t.Helper()

	store, err := data.NewDefaultStore("")
	require.NoError(t, err)

	studio, err := data.DefaultStudio()
	require.NoError(t, err)

	templates, err := render.ReadTemplates(render.Options{})
	require.NoError(t, err)

	return &site.Content{Store: store, Studio: studio, Templates: templates}
}

func readBuildFile(t *testing.T, dir, name string) string {
	t.Helper()

	b, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
	require.NoError(t, err)

	return string(b)
}

func TestBuild(t *testing.T) {
	content := testContent(t)
	dir := t.TempDir()

	err := Build(content, Options{BuildDirectory: dir, MaxFilterTags: 10}, zap.NewNop())
	require.NoError(t, err)

	assert.Contains(t, readBuildFile(t, dir, "index.html"), `data-mode="static"`)
	assert.Contains(t, readBuildFile(t, dir, "views/posts/cscp-study-guide.html"), "A practical CSCP study guide")
	assert.Contains(t, readBuildFile(t, dir, "views/notfound.html"), `href="#/blog"`)
	assert.Contains(t, readBuildFile(t, dir, "views/apps.html"), `data-anchor="logiquiz"`)
	assert.FileExists(t, filepath.Join(dir, "static", "site.js"))
	assert.FileExists(t, filepath.Join(dir, "static", "favicon-32.png"))
	assert.FileExists(t, filepath.Join(dir, "static", "apple-touch-icon.png"))
	assert.FileExists(t, filepath.Join(dir, "api", "posts.json"))

	manifest, err := readManifest(dir)
	require.NoError(t, err)

	assert.Equal(t, "views/home.html", manifest.Views[""])
	assert.Equal(t, "views/blog.html", manifest.Views["/blog"])
	assert.Equal(t, "views/notfound.html", manifest.NotFound)
	assert.Len(t, manifest.Posts, content.Store.Len())

	vocabulary := tagfilter.Vocabulary(content.Store.Posts())
	assert.Len(t, manifest.Filters, (1<<len(vocabulary))-1)

	file, ok := manifest.Filters["Design"]
	require.True(t, ok)
	filtered := readBuildFile(t, dir, file)
	assert.Contains(t, filtered, "Designing Logiquiz")
	assert.NotContains(t, filtered, "Ten CPIM exam tips")
}

func TestBuildTooManyTags(t *testing.T) {
	err := Build(testContent(t), Options{BuildDirectory: t.TempDir(), MaxFilterTags: 2}, zap.NewNop())
	assert.ErrorIs(t, err, ErrTooManyTags)
}

func TestBuildSkipsUpToDateOutput(t *testing.T) {
	contentDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(contentDir, "note.md"), []byte("x"), 0o644))

	buildDir := t.TempDir()
	opts := Options{ContentDirectory: contentDir, BuildDirectory: buildDir, MaxFilterTags: 10}

	assert.False(t, upToDate(opts, zap.NewNop()))

	require.NoError(t, Build(testContent(t), opts, zap.NewNop()))
	assert.True(t, upToDate(opts, zap.NewNop()))

	opts.ContentDirectory = ""
	assert.False(t, upToDate(opts, zap.NewNop()), "embedded content is always rebuilt")
}

func TestTagSubsets(t *testing.T) {
	subsets := tagSubsets([]string{"a", "b", "c"})
	require.Len(t, subsets, 7)

	seen := map[string]bool{}
	for _, s := range subsets {
		assert.False(t, s.IsEmpty())
		seen[render.JoinTags(s)] = true
	}
	assert.Len(t, seen, 7)
	assert.True(t, seen["a,b,c"])

	assert.Empty(t, tagSubsets(nil))
}

func TestFilenamer(t *testing.T) {
	f := Filenamer{}

	assert.Equal(t, "views/home.html", f.ViewFile(route.Of(route.Home)))
	assert.Equal(t, "views/blog.html", f.ViewFile(route.Of(route.BlogIndex)))
	assert.Equal(t, "views/posts/cpim-exam-tips.html", f.ViewFile(route.Post("cpim-exam-tips")))
	assert.Equal(t, "views/blog/filter-007.html", f.FilterFile(7))
}

func TestManifestLayout(t *testing.T) {
	content := testContent(t)
	dir := t.TempDir()

	require.NoError(t, Build(content, Options{BuildDirectory: dir, MaxFilterTags: 10}, zap.NewNop()))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(readBuildFile(t, dir, manifestFileName)), &raw))
	assert.ElementsMatch(t, []string{"views", "posts", "filters", "notFound"}, keys(raw))

	var views map[string]string
	require.NoError(t, json.Unmarshal(raw["views"], &views))
	assert.ElementsMatch(t, []string{"", "apps", "contact", "/blog"}, keys(views))

	var posts map[string]string
	require.NoError(t, json.Unmarshal(raw["posts"], &posts))
	for _, post := range content.Store.Posts() {
		assert.Equal(t, "views/posts/"+post.Slug+".html", posts[post.Slug])
	}
	assert.NotContains(t, posts, "constructor")

	var filters map[string]string
	require.NoError(t, json.Unmarshal(raw["filters"], &filters))
	for key, file := range filters {
		assert.Equal(t, key, render.JoinTags(render.SplitTags(key)), "filter keys are canonical")
		assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(file)))
	}
}

func keys[V any](m map[string]V) []string {
	result := make([]string, 0, len(m))
	for k := range m {
		result = append(result, k)
	}

	return result
}

func TestViewSetForEachIsOrdered(t *testing.T) {
	views := NewViewSet()
	views.Add("views/posts/b.html", route.Post("b"), tagfilter.Clear())
	views.Add("views/home.html", route.Of(route.Home), tagfilter.Clear())
	views.Add("views/posts/a.html", route.Post("a"), tagfilter.Clear())
	views.Add("views/home.html", route.Of(route.Home), tagfilter.Clear())

	var files []string
	views.ForEach(func(job viewJob) {
		files = append(files, job.File)
	})

	assert.Equal(t, []string{"views/home.html", "views/posts/a.html", "views/posts/b.html"}, files)
	assert.Equal(t, 3, views.Len())
}
