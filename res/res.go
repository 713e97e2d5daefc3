// Package res embeds templates, static assets and site content.
package res

import "embed"

const (
	PostsDirectory  = "content/posts"
	StudioFile      = "content/studio.yaml"
	StaticDirectory = "static"
	LogoFile        = "static/logo.png"
)

//go:embed templates
var Templates embed.FS

//go:embed static
var Static embed.FS

//go:embed content
var Content embed.FS
