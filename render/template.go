package render

import (
	"fmt"
	"html/template"

	"github.com/hyperion-dev/hyperion-site/res"
)

// Template names of the page shell and the views.
const (
	ShellTemplate    = "shell.html"
	HomeTemplate     = "home.html"
	BlogTemplate     = "blog.html"
	PostTemplate     = "post.html"
	NotFoundTemplate = "notfound.html"
)

func ReadTemplates(opts Options) (*template.Template, error) {
	funcMap := makeTemplateFuncmap(opts.withDefaults())

	templates, err := template.New("").Funcs(funcMap).ParseFS(res.Templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return templates, nil
}
