package data

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/hyperion-dev/hyperion-site/markdown"
)

var (
	ErrMissingDate   = errors.New("field 'date' missing in front matter")
	ErrMissingTitle  = errors.New("field 'title' missing in front matter")
	ErrNoTags        = errors.New("post has no tags")
	ErrInvalidTag    = errors.New("invalid tag")
	ErrInvalidSlug   = errors.New("invalid slug")
	ErrDuplicateSlug = errors.New("duplicate slug")
)

var (
	slugPattern       = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	datePrefixPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-`)
)

// Store is the immutable, ordered collection of posts. Posts are ordered
// newest first; posts of the same day are ordered by slug.
type Store struct {
	posts  []*Post
	bySlug map[string]*Post
}

// NewStore loads every markdown file below root in fsys.
func NewStore(fsys fs.FS, root string) (*Store, error) {
	converter := markdown.NewConverter()

	var posts []*Post

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.Type().IsRegular() || strings.ToLower(path.Ext(p)) != ".md" {
			return nil
		}

		source, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("could not read source file: %w", err)
		}

		post, err := LoadPost(converter, p, source)
		if err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}

		posts = append(posts, post)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not load posts: %w", err)
	}

	return NewStoreFromPosts(posts...)
}

// NewStoreFromPosts orders posts and indexes them by slug.
func NewStoreFromPosts(posts ...*Post) (*Store, error) {
	store := &Store{
		posts:  make([]*Post, len(posts)),
		bySlug: make(map[string]*Post, len(posts)),
	}
	copy(store.posts, posts)

	for _, post := range store.posts {
		if other, ok := store.bySlug[post.Slug]; ok {
			return nil, fmt.Errorf("%w %q in %s and %s", ErrDuplicateSlug, post.Slug, other.Source, post.Source)
		}
		store.bySlug[post.Slug] = post
	}

	sort.SliceStable(store.posts, func(i, j int) bool {
		a, b := store.posts[i], store.posts[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.Slug < b.Slug
	})

	return store, nil
}

// LoadPost converts one markdown source into a post.
func LoadPost(converter *markdown.Converter, sourcePath string, source []byte) (*Post, error) {
	res, err := converter.Convert(sourcePath, source)
	if err != nil {
		return nil, err
	}

	post := &Post{
		Source:   sourcePath,
		Markdown: string(res.Body),
		HTML:     res.HTML,
		Words:    markdown.WordCount(res.HTML),
	}

	if err := populateFromMeta(post, res.Meta); err != nil {
		return nil, err
	}

	if post.Slug == "" {
		post.Slug = slugFromPath(sourcePath)
	}

	if !slugPattern.MatchString(post.Slug) {
		return nil, fmt.Errorf("%w %q", ErrInvalidSlug, post.Slug)
	}

	if !post.HasSummary() {
		post.Summary = markdown.FirstParagraph(res.HTML)
	}

	return post, nil
}

func slugFromPath(p string) string {
	name := strings.TrimSuffix(path.Base(p), path.Ext(p))
	return datePrefixPattern.ReplaceAllString(name, "")
}

// Posts returns the posts in presentation order. The slice is a copy.
func (s *Store) Posts() []*Post {
	posts := make([]*Post, len(s.posts))
	copy(posts, s.posts)

	return posts
}

func (s *Store) Len() int {
	return len(s.posts)
}

func (s *Store) PostBySlug(slug string) (*Post, bool) {
	post, ok := s.bySlug[slug]
	return post, ok
}
