package data

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postSource(frontMatter, body string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte("---\n" + frontMatter + "---\n" + body)}
}

func slugs(posts []*Post) []string {
	var result []string
	for _, p := range posts {
		result = append(result, p.Slug)
	}
	return result
}

func TestNewStore(t *testing.T) {
	fsys := fstest.MapFS{
		"posts/2024-01-01-older.md": postSource("title: Older\ndate: 2024-01-01\ntags: [CPIM]\n", "Older body.\n"),
		"posts/2024-02-01-newer.md": postSource("title: Newer\ndate: 2024-02-01\ntags: [CSCP, CPIM]\nsummary: Explicit.\n", "Newer body.\n"),
		"posts/b-same-day.md":       postSource("title: B\ndate: 2024-01-01\ntags: [x]\n", "B.\n"),
		"posts/notes.txt":           &fstest.MapFile{Data: []byte("ignored")},
	}

	store, err := NewStore(fsys, "posts")
	require.NoError(t, err)

	assert.Equal(t, 3, store.Len())
	assert.Equal(t, []string{"newer", "b-same-day", "older"}, slugs(store.Posts()))

	newer, ok := store.PostBySlug("newer")
	require.True(t, ok)
	assert.Equal(t, "Newer", newer.Title)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), newer.Date)
	assert.Equal(t, []string{"CSCP", "CPIM"}, newer.Tags)
	assert.Equal(t, "Explicit.", newer.Summary)
	assert.Contains(t, string(newer.Content()), "Newer body.")

	older, ok := store.PostBySlug("older")
	require.True(t, ok)
	assert.Equal(t, "Older body.", older.Summary, "summary falls back to first paragraph")

	_, ok = store.PostBySlug("missing")
	assert.False(t, ok)
}

func TestStorePostsIsACopy(t *testing.T) {
	store, err := NewStoreFromPosts(
		&Post{Slug: "a", Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		&Post{Slug: "b", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	)
	require.NoError(t, err)

	posts := store.Posts()
	posts[0], posts[1] = posts[1], posts[0]

	assert.Equal(t, []string{"a", "b"}, slugs(store.Posts()))
}

func TestNewStoreErrors(t *testing.T) {
	tests := []struct {
		name string
		file *fstest.MapFile
		want error
	}{
		{"missing date", postSource("title: X\ntags: [a]\n", "x"), ErrMissingDate},
		{"missing title", postSource("date: 2024-01-01\ntags: [a]\n", "x"), ErrMissingTitle},
		{"no tags", postSource("title: X\ndate: 2024-01-01\n", "x"), ErrNoTags},
		{"empty tags", postSource("title: X\ndate: 2024-01-01\ntags: ['  ']\n", "x"), ErrNoTags},
		{"numeric tag", postSource("title: X\ndate: 2024-01-01\ntags: [2024]\n", "x"), ErrInvalidTag},
		{"comma in tag", postSource("title: X\ndate: 2024-01-01\ntags: ['a,b']\n", "x"), ErrInvalidTag},
		{"invalid slug", postSource("title: X\nslug: Not Safe\ndate: 2024-01-01\ntags: [a]\n", "x"), ErrInvalidSlug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStore(fstest.MapFS{"p/post.md": tt.file}, "p")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewStoreDuplicateSlug(t *testing.T) {
	fsys := fstest.MapFS{
		"2024-01-01-same.md": postSource("title: A\ndate: 2024-01-01\ntags: [a]\n", "a"),
		"other.md":           postSource("title: B\nslug: same\ndate: 2024-01-02\ntags: [b]\n", "b"),
	}

	_, err := NewStore(fsys, ".")
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestNewStoreDeduplicatesPostTags(t *testing.T) {
	fsys := fstest.MapFS{
		"x.md": postSource("title: X\ndate: 2024-01-01\ntags: [CSCP, CSCP, cscp]\n", "x"),
	}

	store, err := NewStore(fsys, ".")
	require.NoError(t, err)

	post, _ := store.PostBySlug("x")
	assert.Equal(t, []string{"CSCP", "cscp"}, post.Tags)
}

func TestDefaultStore(t *testing.T) {
	store, err := NewDefaultStore("")
	require.NoError(t, err)

	post, ok := store.PostBySlug("cscp-study-guide")
	require.True(t, ok)
	assert.Equal(t, "A practical CSCP study guide", post.Title)
	assert.True(t, post.HasTag("CSCP"))
	assert.True(t, post.HasAuthor())

	for _, p := range store.Posts() {
		assert.NotEmptyf(t, p.Tags, "post %s", p.Slug)
		assert.NotEmptyf(t, p.Summary, "post %s", p.Slug)
	}
}

func TestReadingMinutes(t *testing.T) {
	assert.Equal(t, 1, (&Post{Words: 0}).ReadingMinutes())
	assert.Equal(t, 1, (&Post{Words: 200}).ReadingMinutes())
	assert.Equal(t, 2, (&Post{Words: 201}).ReadingMinutes())
}

func TestWriteFrontMatterRoundTrip(t *testing.T) {
	fm := FrontMatter{
		Title:   "Round trip",
		Date:    YamlDate(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
		Author:  "Hyperion Team",
		Summary: "A summary.",
		Tags:    []string{"CSCP", "Study"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteFrontMatter(&buf, fm))
	buf.WriteString("\nBody text.\n")

	store, err := NewStore(fstest.MapFS{"round-trip.md": {Data: buf.Bytes()}}, ".")
	require.NoError(t, err)

	post, ok := store.PostBySlug("round-trip")
	require.True(t, ok)
	assert.Equal(t, "Round trip", post.Title)
	assert.Equal(t, "2024-06-01", post.Date.Format("2006-01-02"))
	assert.Equal(t, []string{"CSCP", "Study"}, post.Tags)
	assert.Equal(t, "A summary.", post.Summary)
}

func TestDefaultStudio(t *testing.T) {
	studio, err := DefaultStudio()
	require.NoError(t, err)

	assert.Equal(t, "Hyperion Dev Studio", studio.Name)
	assert.Equal(t, "Logiquiz", studio.Product.Name)
	assert.Len(t, studio.Features, 6)
	assert.Len(t, studio.Steps, 4)
	assert.Equal(t, "contact@hyperion.dev", studio.ContactEmail)
}

func TestLoadStudioRejectsUnknownFields(t *testing.T) {
	fsys := fstest.MapFS{"s.yaml": {Data: []byte("name: X\nunknown: 1\n")}}

	_, err := LoadStudio(fsys, "s.yaml")
	assert.Error(t, err)
}

func TestDefaultStoreFromDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "posts"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "posts", "2024-01-01-hello.md"),
		[]byte("---\ntitle: Hello\ndate: 2024-01-01\ntags: [x]\n---\nHi.\n"),
		0o644,
	))

	store, err := NewDefaultStore(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, slugs(store.Posts()))

	studio, err := NewDefaultStudio(dir)
	require.NoError(t, err)
	assert.Equal(t, "Hyperion Dev Studio", studio.Name, "falls back to embedded studio copy")
}
