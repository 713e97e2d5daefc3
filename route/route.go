// Package route resolves URL hash fragments into the views of the site.
//
// The fragment is the part of a URL after '#'. Resolution never fails: any
// fragment that does not name a known view resolves to Home.
package route

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/hyperion-dev/hyperion-site/option"
)

type Name int

const (
	Home Name = iota
	Apps
	Contact
	BlogIndex
	BlogPost
)

var names = [...]string{
	Home:      "home",
	Apps:      "apps",
	Contact:   "contact",
	BlogIndex: "blogIndex",
	BlogPost:  "blogPost",
}

func (n Name) String() string {
	if n < 0 || int(n) >= len(names) {
		return fmt.Sprintf("Name(%d)", int(n))
	}

	return names[n]
}

func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

const (
	blogPrefix = "/blog/"
	blogIndex  = "/blog"
)

// Route is an immutable resolved destination. The slug is only present for
// BlogPost routes.
type Route struct {
	name Name
	slug option.Option[string]
}

// Of returns the route for a view without parameters. Use Post for blog posts.
func Of(name Name) Route {
	if name == BlogPost {
		return Post("")
	}

	return Route{name: name}
}

// Post returns the route to the blog post identified by slug.
func Post(slug string) Route {
	return Route{name: BlogPost, slug: option.Some(slug)}
}

// Parse resolves a hash fragment (without the leading '#') into a route.
// The first matching rule wins; unknown fragments resolve to Home.
func Parse(fragment string) Route {
	switch {
	case strings.HasPrefix(fragment, blogPrefix):
		rest := strings.TrimPrefix(fragment, blogPrefix)
		slug, err := url.PathUnescape(rest)
		if err != nil {
			slug = rest
		}
		return Post(slug)

	case fragment == blogIndex:
		return Of(BlogIndex)

	case fragment == "apps" || fragment == "/apps":
		return Of(Apps)

	case fragment == "contact" || fragment == "/contact":
		return Of(Contact)
	}

	return Of(Home)
}

// Fragment extracts the hash fragment from a raw location hash ("#/blog") or
// an absolute URL ("https://example.org/#/blog"). Anything else is already a
// fragment and is returned unchanged, '#' characters included.
func Fragment(s string) string {
	if strings.HasPrefix(s, "#") {
		return s[1:]
	}

	if u, err := url.Parse(s); err == nil && u.Scheme != "" && u.Host != "" {
		if i := strings.IndexByte(s, '#'); i >= 0 {
			return s[i+1:]
		}
		return ""
	}

	return s
}

func (r Route) Name() Name {
	return r.name
}

// Slug returns the blog post slug, ok is false unless the route is a BlogPost.
func (r Route) Slug() (string, bool) {
	return r.slug.Lookup()
}

// Hash formats the route as its canonical fragment, so that
// Parse(r.Hash()) equals r.
func (r Route) Hash() string {
	switch r.name {
	case Apps:
		return "apps"
	case Contact:
		return "contact"
	case BlogIndex:
		return blogIndex
	case BlogPost:
		return blogPrefix + url.PathEscape(r.slug.GetOr(""))
	}

	return ""
}

// Href is the hash link pointing to the route, suitable for an anchor.
func (r Route) Href() string {
	return "#" + r.Hash()
}

func (r Route) Equal(other Route) bool {
	if r.name != other.name {
		return false
	}

	a, aok := r.Slug()
	b, bok := other.Slug()

	return aok == bok && a == b
}

func (r Route) String() string {
	if slug, ok := r.Slug(); ok {
		return fmt.Sprintf("%s(%q)", r.name, slug)
	}

	return r.name.String()
}

type jsonRoute struct {
	Name Name    `json:"name"`
	Slug *string `json:"slug,omitempty"`
	Hash string  `json:"hash"`
}

func (r Route) MarshalJSON() ([]byte, error) {
	jr := jsonRoute{
		Name: r.name,
		Hash: r.Hash(),
	}

	if slug, ok := r.Slug(); ok {
		jr.Slug = &slug
	}

	return json.Marshal(jr)
}
