package tagfilter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hyperion-dev/hyperion-site/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(slug string, tags ...string) *data.Post {
	return &data.Post{Slug: slug, Title: slug, Tags: tags}
}

func slugs(posts []*data.Post) []string {
	result := []string{}
	for _, p := range posts {
		result = append(result, p.Slug)
	}
	return result
}

func examplePosts() []*data.Post {
	return []*data.Post{
		post("a", "CSCP"),
		post("b", "CPIM"),
		post("c", "CSCP", "CPIM"),
	}
}

func TestVocabulary(t *testing.T) {
	posts := []*data.Post{
		post("1", "logiquiz", "CSCP"),
		post("2", "Design", "CSCP"),
		post("3", "cpim", "Logiquiz", "design"),
	}

	got := Vocabulary(posts)

	want := []string{"cpim", "CSCP", "Design", "design", "Logiquiz", "logiquiz"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Vocabulary mismatch (-want +got):\n%s", diff)
	}
}

func TestVocabularyEmpty(t *testing.T) {
	assert.Empty(t, Vocabulary(nil))
	assert.Empty(t, Vocabulary([]*data.Post{}))
	assert.NotNil(t, Vocabulary(nil))
}

func TestVocabularyIsOrderInsensitiveAndIdempotent(t *testing.T) {
	posts := []*data.Post{
		post("1", "Zeta", "alpha"),
		post("2", "Beta"),
		post("3", "alpha", "gamma"),
	}
	reversed := []*data.Post{posts[2], posts[1], posts[0]}

	first := Vocabulary(posts)

	assert.Equal(t, first, Vocabulary(posts))
	assert.Equal(t, first, Vocabulary(reversed))
	assert.Equal(t, []string{"alpha", "Beta", "gamma", "Zeta"}, first)
}

func TestToggle(t *testing.T) {
	empty := Clear()

	one := Toggle(empty, "CSCP")
	assert.True(t, one.Has("CSCP"))
	assert.True(t, empty.IsEmpty(), "input selection is not mutated")

	two := Toggle(one, "CPIM")
	assert.Equal(t, []string{"CPIM", "CSCP"}, two.Tags())
	assert.Equal(t, 1, one.Len(), "input selection is not mutated")

	back := Toggle(two, "CSCP")
	assert.Equal(t, []string{"CPIM"}, back.Tags())
	assert.Equal(t, 2, two.Len())
}

func TestToggleTwiceIsIdentity(t *testing.T) {
	selections := []Selection{Clear(), Select("a"), Select("a", "b"), Select("x", "y", "z")}

	for _, s := range selections {
		for _, tag := range []string{"a", "b", "q"} {
			assert.Truef(t, Toggle(Toggle(s, tag), tag).Equal(s), "selection %v tag %s", s.Tags(), tag)
		}
	}
}

func TestClear(t *testing.T) {
	assert.True(t, Clear().IsEmpty())
	assert.Equal(t, 0, Clear().Len())
	assert.Empty(t, Clear().Tags())
}

func TestParseSelection(t *testing.T) {
	s := ParseSelection([]string{"CSCP", "", "CPIM", "CSCP"})

	assert.Equal(t, []string{"CPIM", "CSCP"}, s.Tags())
	assert.True(t, ParseSelection(nil).IsEmpty())
}

func TestSelectionMembershipIsCaseSensitive(t *testing.T) {
	s := Select("CSCP")

	assert.True(t, s.Has("CSCP"))
	assert.False(t, s.Has("cscp"))
	assert.Empty(t, VisiblePosts([]*data.Post{post("x", "cscp")}, s))
}

func TestVisiblePostsEmptySelectionKeepsAll(t *testing.T) {
	posts := examplePosts()

	got := VisiblePosts(posts, Clear())

	assert.Equal(t, []string{"a", "b", "c"}, slugs(got))
}

func TestVisiblePostsScenario(t *testing.T) {
	posts := examplePosts()

	s := Toggle(Clear(), "CSCP")
	assert.Equal(t, []string{"a", "c"}, slugs(VisiblePosts(posts, s)))

	s = Toggle(s, "CPIM")
	assert.Equal(t, []string{"a", "b", "c"}, slugs(VisiblePosts(posts, s)))

	s = Clear()
	assert.Equal(t, []string{"a", "b", "c"}, slugs(VisiblePosts(posts, s)))
}

func TestVisiblePostsMatchesExactlyTheIntersectingPosts(t *testing.T) {
	posts := []*data.Post{
		post("p1", "Go", "Web"),
		post("p2", "Design"),
		post("p3", "Web"),
		post("p4", "Go", "Design", "Web"),
		post("p5", "Ops"),
	}

	selections := []Selection{
		Select("Go"),
		Select("Web", "Design"),
		Select("Ops", "Nothing"),
		Select("Nothing"),
	}

	for _, s := range selections {
		got := VisiblePosts(posts, s)

		in := make(map[string]bool)
		for _, p := range got {
			require.Falsef(t, in[p.Slug], "post %s returned twice", p.Slug)
			in[p.Slug] = true
		}

		for _, p := range posts {
			intersects := false
			for _, tag := range p.Tags {
				if s.Has(tag) {
					intersects = true
				}
			}
			assert.Equalf(t, intersects, in[p.Slug], "post %s, selection %v", p.Slug, s.Tags())
		}
	}
}

func TestVisiblePostsIsIdempotent(t *testing.T) {
	posts := examplePosts()
	s := Select("CPIM")

	assert.Equal(t, slugs(VisiblePosts(posts, s)), slugs(VisiblePosts(posts, s)))
	assert.Equal(t, []string{"b", "c"}, slugs(VisiblePosts(posts, s)))
}
