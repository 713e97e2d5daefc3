// Package markdown converts post sources into goquery documents.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/hyperion-dev/hyperion-site/markdown/callout"
	"github.com/hyperion-dev/hyperion-site/markdown/yamlblock"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Result is a converted markdown source: its front matter, the markdown
// below it and the HTML.
type Result struct {
	Meta map[string]interface{}
	Body []byte
	HTML *goquery.Document
}

type Converter struct {
	gmark goldmark.Markdown
}

func NewConverter() *Converter {
	return &Converter{
		gmark: goldmark.New(
			goldmark.WithExtensions(
				meta.Meta,
				extension.GFM,
				yamlblock.New(callout.New()),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
}

// Convert renders source and post-processes the HTML. path only labels
// errors and directives.
func (c *Converter) Convert(path string, source []byte) (*Result, error) {
	var buffer bytes.Buffer

	pc := parser.NewContext()
	yamlblock.SetSourcePath(pc, path)

	if err := c.gmark.Convert(source, &buffer, parser.WithContext(pc)); err != nil {
		return nil, fmt.Errorf("convert %s: %w", path, err)
	}

	m, err := meta.TryGet(pc)
	if err != nil {
		return nil, fmt.Errorf("front matter of %s: %w", path, err)
	}

	doc, err := goquery.NewDocumentFromReader(&buffer)
	if err != nil {
		return nil, fmt.Errorf("could not parse HTML: %w", err)
	}

	ImplicitFigure(doc)
	ExternalLinks(doc)

	return &Result{Meta: m, Body: StripFrontMatter(source), HTML: doc}, nil
}

var frontMatterDelimiter = []byte("---")

// StripFrontMatter returns source without a leading "---" delimited block.
func StripFrontMatter(source []byte) []byte {
	lines := bytes.SplitAfter(source, []byte("\n"))
	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), frontMatterDelimiter) {
		return source
	}

	offset := len(lines[0])
	for _, line := range lines[1:] {
		offset += len(line)
		if bytes.Equal(bytes.TrimSpace(line), frontMatterDelimiter) {
			return bytes.TrimLeft(source[offset:], "\n")
		}
	}

	return source
}
