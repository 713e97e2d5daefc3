package data

import (
	"html/template"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const wordsPerMinute = 200

// Post is a blog entry. Posts are created by the Store and shared by every
// reader, so they are read-only: callers must not modify a post or its Tags.
// Use Record or CopyTags for a value that may be changed.
type Post struct {
	Slug     string
	Title    string
	Date     time.Time
	Summary  string
	Author   string
	Tags     []string
	Source   string            // Path of the markdown source
	Markdown string            // Source below the front matter
	HTML     *goquery.Document // Rendered content
	Words    int
}

func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}

	return false
}

// CopyTags returns a copy of the post's tags.
func (p *Post) CopyTags() []string {
	return append([]string(nil), p.Tags...)
}

func (p *Post) HasAuthor() bool {
	return len(p.Author) > 0
}

func (p *Post) HasSummary() bool {
	return len(p.Summary) > 0
}

// ReadingMinutes estimates the reading time, at least one minute.
func (p *Post) ReadingMinutes() int {
	minutes := (p.Words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}

	return minutes
}

// Content returns the rendered body. Empty for posts without HTML.
func (p *Post) Content() template.HTML {
	if p.HTML == nil {
		return ""
	}

	fragment, err := p.HTML.Find("body").Html()
	if err != nil {
		return ""
	}

	return template.HTML(fragment)
}
