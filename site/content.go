package site

import (
	"fmt"

	"github.com/hyperion-dev/hyperion-site/config"
	"github.com/hyperion-dev/hyperion-site/data"
	"github.com/hyperion-dev/hyperion-site/render"
)

// LoadContent reads posts, studio copy and templates as configured. Contact
// address and links set in the configuration replace the studio's own.
func LoadContent() (*Content, error) {
	store, err := data.NewDefaultStore(config.ContentDirectory())
	if err != nil {
		return nil, err
	}

	studio, err := data.NewDefaultStudio(config.ContentDirectory())
	if err != nil {
		return nil, fmt.Errorf("could not load studio content: %w", err)
	}
	applyOverrides(studio)

	templates, err := render.ReadTemplates(render.Options{
		Locale:   config.Locale(),
		BasePath: config.BasePath(),
	})
	if err != nil {
		return nil, err
	}

	return &Content{
		Store:     store,
		Studio:    studio,
		Templates: templates,
	}, nil
}

func applyOverrides(studio *data.Studio) {
	override := func(dst *string, value string) {
		if value != "" {
			*dst = value
		}
	}

	override(&studio.ContactEmail, config.ContactEmail())
	override(&studio.Links.AppStore, config.AppStoreLink())
	override(&studio.Links.BetaGroup, config.BetaGroupLink())
	override(&studio.Links.GitHub, config.GitHubLink())
}
