// Package preview prints site views to a terminal.
package preview

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/hyperion-dev/hyperion-site/data"
	"github.com/hyperion-dev/hyperion-site/render"
	"github.com/hyperion-dev/hyperion-site/route"
	"github.com/hyperion-dev/hyperion-site/site"
)

const dateLayout = "January 2, 2006"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f2f2f2")).
			Background(lipgloss.Color("#4f46e5")).
			Padding(0, 1)
	hashStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8")).
			PaddingLeft(1)
	chipStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

type Renderer struct {
	markdown *glamour.TermRenderer
	tagSet   *render.TagSet
}

// NewRenderer creates a renderer; opts configure the markdown renderer.
func NewRenderer(opts ...glamour.TermRendererOption) (*Renderer, error) {
	if len(opts) == 0 {
		opts = []glamour.TermRendererOption{
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		}
	}

	markdown, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create markdown renderer: %w", err)
	}

	return &Renderer{
		markdown: markdown,
		tagSet:   render.NewTagSet(),
	}, nil
}

// Render writes a header line, the tag chips of the blog index and the
// view's markdown.
func (r *Renderer) Render(w io.Writer, v site.View) error {
	fmt.Fprintln(w, r.Header(v))

	if v.Template == render.BlogTemplate {
		fmt.Fprintln(w, r.Chips(v))
	}

	out, err := r.markdown.Render(Markdown(v))
	if err != nil {
		return fmt.Errorf("could not render markdown: %w", err)
	}

	_, err = io.WriteString(w, out)
	return err
}

func (r *Renderer) Header(v site.View) string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		headerStyle.Render(v.Studio.Name),
		hashStyle.Render(v.Route.Href()),
	)
}

// Chips lists the vocabulary, selected tags highlighted.
func (r *Renderer) Chips(v site.View) string {
	chips := make([]string, 0, len(v.Vocabulary))
	for _, tag := range v.Vocabulary {
		style := chipStyle.Foreground(lipgloss.Color(r.tagSet.HexColor(tag)))
		if v.Selection.Has(tag) {
			style = style.Reverse(true)
		}
		chips = append(chips, style.Render(tag))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

// Markdown is the terminal text of a view.
func Markdown(v site.View) string {
	var b strings.Builder

	switch v.Template {
	case render.BlogTemplate:
		writeBlog(&b, v)
	case render.PostTemplate:
		writePost(&b, v.Post)
	case render.NotFoundTemplate:
		writeNotFound(&b, v.Slug)
	default:
		writeLanding(&b, v)
	}

	return b.String()
}

type section struct {
	id    string
	write func(b *strings.Builder, studio *data.Studio)
}

var landingSections = []section{
	{"home", writeHero},
	{"services", writeServices},
	{"logiquiz", writeProduct},
	{"process", writeProcess},
	{"contact", writeContact},
}

// writeLanding starts at the view's anchor section.
func writeLanding(b *strings.Builder, v site.View) {
	started := v.Anchor == ""
	for _, s := range landingSections {
		if s.id == v.Anchor {
			started = true
		}
		if started {
			s.write(b, v.Studio)
		}
	}
}

func writeHero(b *strings.Builder, studio *data.Studio) {
	hero := studio.Hero
	fmt.Fprintf(b, "# %s %s\n\n%s\n\n", hero.Title, hero.Highlight, hero.Lead)
	fmt.Fprintf(b, "_%s_\n\n", strings.Join(studio.Stacks, " · "))
}

func writeServices(b *strings.Builder, studio *data.Studio) {
	b.WriteString("## What we do\n\n")
	for _, f := range studio.Features {
		fmt.Fprintf(b, "- **%s**: %s\n", f.Title, f.Description)
	}
	b.WriteString("\n")
}

func writeProduct(b *strings.Builder, studio *data.Studio) {
	product := studio.Product
	fmt.Fprintf(b, "## %s\n\n_%s_\n\n%s\n\n", product.Headline, product.Platforms, product.Description)
	for _, item := range product.Checklist {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
	if studio.Links.BetaGroup != "" {
		fmt.Fprintf(b, "Join the beta: %s\n\n", studio.Links.BetaGroup)
	}
}

func writeProcess(b *strings.Builder, studio *data.Studio) {
	b.WriteString("## A clear path to launch\n\n")
	for i, s := range studio.Steps {
		fmt.Fprintf(b, "%d. **%s**: %s\n", i+1, s.Title, s.Detail)
	}
	b.WriteString("\n")
}

func writeContact(b *strings.Builder, studio *data.Studio) {
	fmt.Fprintf(b, "## Let’s build something exceptional\n\n- %s\n", studio.ContactEmail)
	if studio.Links.GitHub != "" {
		fmt.Fprintf(b, "- %s\n", studio.Links.GitHub)
	}
	if studio.Links.LinkedIn != "" {
		fmt.Fprintf(b, "- %s\n", studio.Links.LinkedIn)
	}
	b.WriteString("\n")
}

func writeBlog(b *strings.Builder, v site.View) {
	fmt.Fprintf(b, "# Blog\n\n_%d of %d posts_\n\n", len(v.Posts), v.Total)
	if len(v.Posts) == 0 {
		b.WriteString("No posts match the selected tags.\n")
		return
	}

	for _, g := range v.Groups {
		fmt.Fprintf(b, "## %s\n\n", g.Month.Format("January 2006"))
		for _, p := range g.Posts {
			fmt.Fprintf(b, "### %s\n\n_%s · %d min read · %s_\n\n%s\n\n`%s`\n\n",
				p.Title, p.Date.Format(dateLayout), p.ReadingMinutes(),
				strings.Join(p.Tags, ", "), p.Summary, route.Post(p.Slug).Href())
		}
	}
}

func writePost(b *strings.Builder, p *data.Post) {
	fmt.Fprintf(b, "# %s\n\n_%s", p.Title, p.Date.Format(dateLayout))
	if p.HasAuthor() {
		fmt.Fprintf(b, " · %s", p.Author)
	}
	fmt.Fprintf(b, " · %s_\n\n", strings.Join(p.Tags, ", "))
	b.WriteString(quoteDirectives(p.Markdown))
	fmt.Fprintf(b, "\n\n[All posts](%s)\n", route.Of(route.BlogIndex).Href())
}

func writeNotFound(b *strings.Builder, slug string) {
	b.WriteString("# Post not found\n\n")
	if slug != "" {
		fmt.Fprintf(b, "There is no post called “%s”.\n\n", slug)
	} else {
		b.WriteString("That post does not exist.\n\n")
	}
	fmt.Fprintf(b, "[Back to the blog](%s)\n", route.Of(route.BlogIndex).Href())
}

var directivePattern = regexp.MustCompile(`(?ms)^:: *(\w+)(?: *---\n(.*?)\n---)?[ \t]*$`)

// quoteDirectives turns directive blocks into block quotes.
func quoteDirectives(source string) string {
	return directivePattern.ReplaceAllStringFunc(source, func(block string) string {
		m := directivePattern.FindStringSubmatch(block)

		var b strings.Builder
		fmt.Fprintf(&b, "> **%s**", m[1])
		for _, line := range strings.Split(m[2], "\n") {
			if line = strings.TrimSpace(line); line != "" {
				fmt.Fprintf(&b, "\n> %s", line)
			}
		}

		return b.String()
	})
}
