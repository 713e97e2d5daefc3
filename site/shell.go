package site

import (
	"fmt"
	"io"
	"time"

	"github.com/hyperion-dev/hyperion-site/data"
	"github.com/hyperion-dev/hyperion-site/render"
	"github.com/hyperion-dev/hyperion-site/route"
)

// Mode tells the shell script where view fragments come from.
type Mode string

const (
	ServerMode Mode = "server"
	StaticMode Mode = "static"
)

type NavEntry struct {
	Label string
	Href  string
}

// Shell is the payload of the page frame around the views.
type Shell struct {
	Studio *data.Studio
	Mode   Mode
	Nav    []NavEntry
	Year   int
}

func NewShell(studio *data.Studio, mode Mode) Shell {
	return Shell{
		Studio: studio,
		Mode:   mode,
		Nav: []NavEntry{
			{Label: "Home", Href: route.Of(route.Home).Href()},
			{Label: studio.Product.Name, Href: route.Of(route.Apps).Href()},
			{Label: "Blog", Href: route.Of(route.BlogIndex).Href()},
			{Label: "Contact", Href: route.Of(route.Contact).Href()},
		},
		Year: time.Now().Year(),
	}
}

func RenderShell(w io.Writer, content *Content, mode Mode) error {
	shell := NewShell(content.Studio, mode)
	if err := content.Templates.ExecuteTemplate(w, render.ShellTemplate, shell); err != nil {
		return fmt.Errorf("could not execute shell template: %w", err)
	}

	return nil
}
