// Package callout provides the "callout" directive for post bodies:
//
//	:: callout ---
//	kind: tip
//	title: Exam day
//	text: Arrive early.
//	---
package callout

import (
	"fmt"
	"html"

	"github.com/hyperion-dev/hyperion-site/markdown/yamlblock"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/util"
)

var kinds = map[string]string{
	"note":    "Note",
	"tip":     "Tip",
	"warning": "Warning",
}

type Callout struct {
	Kind  string `yaml:"kind"`
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

type directive struct{}

func New() yamlblock.Directive {
	return directive{}
}

func (directive) Name() string {
	return "callout"
}

func (directive) New(pc parser.Context) interface{} {
	return &Callout{Kind: "note"}
}

func (directive) Render(w util.BufWriter, value interface{}) error {
	c := value.(*Callout)

	defaultTitle, ok := kinds[c.Kind]
	if !ok {
		return fmt.Errorf("unknown callout kind %q", c.Kind)
	}

	title := c.Title
	if title == "" {
		title = defaultTitle
	}

	fmt.Fprintf(w, `<aside class="callout callout-%s"><p class="callout-title">%s</p>`, c.Kind, html.EscapeString(title))
	if c.Text != "" {
		fmt.Fprintf(w, "<p>%s</p>", html.EscapeString(c.Text))
	}
	_, _ = w.WriteString("</aside>\n")

	return nil
}
