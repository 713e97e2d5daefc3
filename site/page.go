// Package site is the page controller. A Page follows a Location, owns the
// tag selection of the blog index, and renders the view for the current
// route.
package site

import (
	"fmt"
	"html/template"
	"io"
	"sync"

	"github.com/hyperion-dev/hyperion-site/data"
	"github.com/hyperion-dev/hyperion-site/data/tagfilter"
	"github.com/hyperion-dev/hyperion-site/render"
	"github.com/hyperion-dev/hyperion-site/route"
)

// Content is the read-only material pages are built from. It is shared by
// every page.
type Content struct {
	Store     *data.Store
	Studio    *data.Studio
	Templates *template.Template
}

// View is everything a template needs to render one route.
type View struct {
	Route    route.Route
	Template string
	Anchor   string // Landing page section to scroll to
	Studio   *data.Studio

	// Blog index
	Posts      []*data.Post
	Groups     []render.PostGroup
	Total      int
	Vocabulary []string
	Selection  tagfilter.Selection

	// Blog post; Post is nil when Slug names no post.
	Post *data.Post
	Slug string
}

func (v View) NotFound() bool {
	return v.Template == render.NotFoundTemplate
}

type Page struct {
	content  *Content
	resolver *route.Resolver

	mu          sync.Mutex
	selection   tagfilter.Selection
	unsubscribe func()
	onChange    func(View)
}

func NewPage(content *Content) *Page {
	return &Page{
		content:  content,
		resolver: route.NewResolver(),
	}
}

// OnChange registers fn to receive the new view whenever the route or the
// tag selection changes. Set it before Mount to also get the initial view.
func (p *Page) OnChange(fn func(View)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.onChange = fn
}

// Mount starts following loc. A page is mounted at most once at a time.
func (p *Page) Mount(loc route.Location) error {
	p.mu.Lock()
	if p.unsubscribe != nil {
		p.mu.Unlock()
		return route.ErrMounted
	}
	p.unsubscribe = p.resolver.Subscribe(p.routeChanged)
	p.mu.Unlock()

	if err := p.resolver.Mount(loc); err != nil {
		p.mu.Lock()
		p.unsubscribe()
		p.unsubscribe = nil
		p.mu.Unlock()
		return fmt.Errorf("mount page: %w", err)
	}

	return nil
}

// Unmount stops following the location. Later hash changes have no effect.
func (p *Page) Unmount() {
	p.resolver.Unmount()

	p.mu.Lock()
	unsubscribe := p.unsubscribe
	p.unsubscribe = nil
	p.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

func (p *Page) Route() route.Route {
	return p.resolver.Current()
}

func (p *Page) Selection() tagfilter.Selection {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.selection
}

// ToggleTag flips tag in the selection and returns the new selection.
func (p *Page) ToggleTag(tag string) tagfilter.Selection {
	return p.setSelection(func(s tagfilter.Selection) tagfilter.Selection {
		return tagfilter.Toggle(s, tag)
	})
}

func (p *Page) ClearTags() tagfilter.Selection {
	return p.setSelection(func(tagfilter.Selection) tagfilter.Selection {
		return tagfilter.Clear()
	})
}

// SetSelection replaces the selection wholesale.
func (p *Page) SetSelection(sel tagfilter.Selection) {
	p.setSelection(func(tagfilter.Selection) tagfilter.Selection {
		return sel
	})
}

func (p *Page) setSelection(next func(tagfilter.Selection) tagfilter.Selection) tagfilter.Selection {
	p.mu.Lock()
	p.selection = next(p.selection)
	sel := p.selection
	onChange := p.onChange
	p.mu.Unlock()

	if onChange != nil {
		onChange(p.View())
	}

	return sel
}

// routeChanged runs on the location's notification turn. The selection
// belongs to the blog index and does not survive leaving it.
func (p *Page) routeChanged(r route.Route) {
	p.mu.Lock()
	if r.Name() != route.BlogIndex {
		p.selection = tagfilter.Clear()
	}
	sel := p.selection
	onChange := p.onChange
	p.mu.Unlock()

	if onChange != nil {
		onChange(BuildView(p.content, r, sel))
	}
}

// View builds the view model for the current route and selection.
func (p *Page) View() View {
	return BuildView(p.content, p.Route(), p.Selection())
}

// Render writes the current view.
func (p *Page) Render(w io.Writer) error {
	return RenderView(w, p.content.Templates, p.View())
}

// BuildView selects and fills the view for r.
func BuildView(content *Content, r route.Route, sel tagfilter.Selection) View {
	view := View{
		Route:  r,
		Studio: content.Studio,
	}

	switch r.Name() {
	case route.Apps:
		view.Template = render.HomeTemplate
		view.Anchor = "logiquiz"

	case route.Contact:
		view.Template = render.HomeTemplate
		view.Anchor = "contact"

	case route.BlogIndex:
		posts := content.Store.Posts()
		visible := tagfilter.VisiblePosts(posts, sel)

		view.Template = render.BlogTemplate
		view.Total = len(posts)
		view.Vocabulary = tagfilter.Vocabulary(posts)
		view.Selection = sel
		view.Posts = visible
		view.Groups = render.MakePostGroups(visible)

	case route.BlogPost:
		slug, _ := r.Slug()
		view.Slug = slug
		if post, ok := content.Store.PostBySlug(slug); ok {
			view.Template = render.PostTemplate
			view.Post = post
		} else {
			view.Template = render.NotFoundTemplate
		}

	default:
		view.Template = render.HomeTemplate
	}

	return view
}

// RenderView executes the view's template.
func RenderView(w io.Writer, templates *template.Template, view View) error {
	if err := templates.ExecuteTemplate(w, view.Template, view); err != nil {
		return fmt.Errorf("could not execute template %s: %w", view.Template, err)
	}

	return nil
}
