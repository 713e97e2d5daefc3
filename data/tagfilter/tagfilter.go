// Package tagfilter derives the tag vocabulary of a post list and filters
// posts by a set of selected tags.
package tagfilter

import (
	"sort"

	"github.com/hyperion-dev/hyperion-site/data"
	"golang.org/x/text/cases"
)

// Vocabulary returns every distinct tag of posts, ordered case-insensitively.
// Tags that differ only in case are distinct and ordered by their raw form.
func Vocabulary(posts []*data.Post) []string {
	seen := make(map[string]struct{})
	tags := []string{}

	for _, post := range posts {
		for _, tag := range post.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}

	fold := cases.Fold()
	keys := make(map[string]string, len(tags))
	for _, tag := range tags {
		keys[tag] = fold.String(tag)
	}

	sort.Slice(tags, func(i, j int) bool {
		a, b := keys[tags[i]], keys[tags[j]]
		if a != b {
			return a < b
		}
		return tags[i] < tags[j]
	})

	return tags
}

// Selection is an immutable set of tags. The zero value is the empty
// selection, which filters nothing.
type Selection struct {
	tags map[string]struct{}
}

// Select returns a selection holding tags.
func Select(tags ...string) Selection {
	if len(tags) == 0 {
		return Selection{}
	}

	m := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		m[tag] = struct{}{}
	}

	return Selection{tags: m}
}

// ParseSelection builds a selection from query values, ignoring empty ones.
func ParseSelection(values []string) Selection {
	var tags []string
	for _, v := range values {
		if v != "" {
			tags = append(tags, v)
		}
	}

	return Select(tags...)
}

func (s Selection) Has(tag string) bool {
	_, ok := s.tags[tag]
	return ok
}

func (s Selection) Len() int {
	return len(s.tags)
}

func (s Selection) IsEmpty() bool {
	return len(s.tags) == 0
}

// Tags returns the selected tags in ascending order.
func (s Selection) Tags() []string {
	tags := make([]string, 0, len(s.tags))
	for tag := range s.tags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	return tags
}

// Equal reports whether both selections hold the same tags.
func (s Selection) Equal(other Selection) bool {
	if len(s.tags) != len(other.tags) {
		return false
	}

	for tag := range s.tags {
		if !other.Has(tag) {
			return false
		}
	}

	return true
}

// Toggle returns a new selection with tag removed when present in s and
// added otherwise. s is left untouched.
func Toggle(s Selection, tag string) Selection {
	m := make(map[string]struct{}, len(s.tags)+1)
	for t := range s.tags {
		m[t] = struct{}{}
	}

	if _, ok := m[tag]; ok {
		delete(m, tag)
	} else {
		m[tag] = struct{}{}
	}

	return Selection{tags: m}
}

// Clear returns the empty selection.
func Clear() Selection {
	return Selection{}
}

// VisiblePosts returns the posts having at least one selected tag, in input
// order. The empty selection keeps every post. The result is a new slice
// sharing the read-only posts.
func VisiblePosts(posts []*data.Post, s Selection) []*data.Post {
	visible := make([]*data.Post, 0, len(posts))

	for _, post := range posts {
		if s.IsEmpty() || matches(post, s) {
			visible = append(visible, post)
		}
	}

	return visible
}

func matches(post *data.Post, s Selection) bool {
	for _, tag := range post.Tags {
		if s.Has(tag) {
			return true
		}
	}

	return false
}
