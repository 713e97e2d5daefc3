package render

import (
	"html/template"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"github.com/hyperion-dev/hyperion-site/data/tagfilter"
	"github.com/hyperion-dev/hyperion-site/route"
)

// Options tune the template helpers.
type Options struct {
	Locale   monday.Locale
	BasePath string
}

func (o Options) withDefaults() Options {
	if o.Locale == "" {
		o.Locale = monday.LocaleEnUS
	}
	if o.BasePath == "" {
		o.BasePath = "/"
	}
	if !strings.HasSuffix(o.BasePath, "/") {
		o.BasePath += "/"
	}

	return o
}

var icons = map[string]string{
	"smartphone": "📱",
	"shield":     "🛡",
	"bot":        "🤖",
	"paintbrush": "🖌",
	"cpu":        "🧠",
	"rocket":     "🚀",
}

func makeTemplateFuncmap(opts Options) template.FuncMap {
	tagSet := NewTagSet()

	return template.FuncMap{
		"tagColor": tagSet.HexColor,

		"dateDisplay": func(t time.Time) string {
			return monday.Format(t, "January 2, 2006", opts.Locale)
		},
		"monthDisplay": func(t time.Time) string {
			return monday.Format(t, "January 2006", opts.Locale)
		},
		"isoDate": func(t time.Time) string {
			return t.Format("2006-01-02")
		},

		"routeHref": func(r route.Route) string {
			return r.Href()
		},
		"postHref": func(slug string) string {
			return route.Post(slug).Href()
		},
		"blogHref": func() string {
			return route.Of(route.BlogIndex).Href()
		},

		"toggleTags": ToggleTags,
		"joinTags":   JoinTags,

		"asset": func(name string) string {
			return opts.BasePath + "static/" + strings.TrimPrefix(name, "/")
		},
		"basePath": func() string {
			return opts.BasePath
		},

		"icon": func(name string) string {
			if icon, ok := icons[name]; ok {
				return icon
			}
			return "✦"
		},

		"add": func(a, b int) int {
			return a + b
		},
	}
}

// TagSeparator joins selected tags in data attributes and file names. Tags
// never contain it.
const TagSeparator = ","

// JoinTags is the canonical text form of a selection.
func JoinTags(sel tagfilter.Selection) string {
	return strings.Join(sel.Tags(), TagSeparator)
}

// SplitTags parses the canonical text form back into a selection.
func SplitTags(s string) tagfilter.Selection {
	return tagfilter.ParseSelection(strings.Split(s, TagSeparator))
}

// ToggleTags is the canonical text form of the selection that clicking tag
// would produce.
func ToggleTags(sel tagfilter.Selection, tag string) string {
	return JoinTags(tagfilter.Toggle(sel, tag))
}
