package data

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hyperion-dev/hyperion-site/util/dates"
	"github.com/hyperion-dev/hyperion-site/util/slices"
	"gopkg.in/yaml.v2"
)

// FrontMatter is the YAML header of a post source.
type FrontMatter struct {
	Title   string   `yaml:"title"`
	Slug    string   `yaml:"slug,omitempty"`
	Date    YamlDate `yaml:"date"`
	Author  string   `yaml:"author,omitempty"`
	Summary string   `yaml:"summary,omitempty"`
	Tags    []string `yaml:"tags"`
}

// WriteFrontMatter writes fm enclosed in "---" lines.
func WriteFrontMatter(w io.Writer, fm FrontMatter) error {
	if _, err := fmt.Fprintln(w, "---"); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	if err := enc.Encode(fm); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "---")
	return err
}

func populateFromMeta(post *Post, m map[string]interface{}) error {
	if title, ok := m["title"].(string); ok {
		post.Title = strings.TrimSpace(title)
	}
	if post.Title == "" {
		return ErrMissingTitle
	}

	if slug, ok := m["slug"].(string); ok {
		post.Slug = strings.TrimSpace(slug)
	}

	switch date := m["date"].(type) {
	case string:
		t, err := time.Parse(dates.Layout, date)
		if err != nil {
			return fmt.Errorf("could not parse date: %w", err)
		}
		post.Date = t
	case time.Time:
		post.Date = dates.StartOfDay(date)
	default:
		return ErrMissingDate
	}

	if summary, ok := m["summary"].(string); ok {
		post.Summary = strings.TrimSpace(summary)
	}

	if author, ok := m["author"].(string); ok {
		post.Author = strings.TrimSpace(author)
	}

	if tags, ok := m["tags"].([]interface{}); ok {
		rawTags, rest := slices.Partition[string](tags)
		if len(rest) > 0 {
			return fmt.Errorf("%w %v: tags must be strings", ErrInvalidTag, rest[0])
		}
		for _, tag := range rawTags {
			tag = strings.TrimSpace(tag)
			if strings.Contains(tag, ",") {
				return fmt.Errorf("%w %q: tags must not contain commas", ErrInvalidTag, tag)
			}
			if tag != "" && !post.HasTag(tag) {
				post.Tags = append(post.Tags, tag)
			}
		}
	}

	if len(post.Tags) == 0 {
		return ErrNoTags
	}

	return nil
}

type YamlDate time.Time

func (t *YamlDate) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var txt string
	err := unmarshal(&txt)
	if err != nil {
		return err
	}

	date, err := time.Parse(dates.Layout, txt)
	if err != nil {
		return err
	}

	*t = YamlDate(date)
	return nil
}

func (t YamlDate) MarshalYAML() (interface{}, error) {
	return dates.DateString(time.Time(t)), nil
}
