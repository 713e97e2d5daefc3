package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hyperion-dev/hyperion-site/data/tagfilter"
	"github.com/hyperion-dev/hyperion-site/preview"
	"github.com/hyperion-dev/hyperion-site/render"
	"github.com/hyperion-dev/hyperion-site/route"
	"github.com/hyperion-dev/hyperion-site/site"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview [HASH]",
	Short: "Browse the site in the terminal",
	Long: `Preview renders the views of the site as terminal text. Navigation works
with the same hash fragments as the browser, e.g. "#/blog" or "#apps".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

const (
	actionNavigate = "Go to…"
	actionOpenPost = "Open post"
	actionTags     = "Filter by tags"
	actionClear    = "Clear filters"
	actionBack     = "Back to the blog"
	actionQuit     = "Quit"
)

func runPreview(cmd *cobra.Command, args []string) error {
	content, err := site.LoadContent()
	if err != nil {
		return err
	}

	renderer, err := preview.NewRenderer()
	if err != nil {
		return err
	}

	hash := ""
	if len(args) == 1 {
		hash = args[0]
	}

	out := cmd.OutOrStdout()
	loc := route.NewMemoryLocation(hash)
	page := site.NewPage(content)
	page.OnChange(func(v site.View) {
		if err := renderer.Render(out, v); err != nil {
			logger.Error("could not render view", zap.Error(err))
		}
	})

	if err := page.Mount(loc); err != nil {
		return err
	}
	defer page.Unmount()

	for {
		view := page.View()

		action := ""
		err := survey.AskOne(&survey.Select{
			Message: "Next",
			Options: previewActions(view),
		}, &action)
		if err := interrupted(err); err != nil {
			if errors.Is(err, errAborted) {
				return nil
			}
			return err
		}

		switch action {
		case actionNavigate:
			next := ""
			err := survey.AskOne(&survey.Input{Message: "Hash", Default: view.Route.Href()}, &next)
			if err := interrupted(err); errors.Is(err, errAborted) {
				continue
			} else if err != nil {
				return err
			}
			loc.SetHash(strings.TrimSpace(next))

		case actionOpenPost:
			slug, err := promptPost(view)
			if errors.Is(err, errAborted) {
				continue
			} else if err != nil {
				return err
			}
			loc.SetHash(route.Post(slug).Href())

		case actionTags:
			var tags []string
			err := survey.AskOne(&survey.MultiSelect{
				Message: "Tags",
				Options: view.Vocabulary,
				Default: view.Selection.Tags(),
			}, &tags)
			if err := interrupted(err); errors.Is(err, errAborted) {
				continue
			} else if err != nil {
				return err
			}
			page.SetSelection(tagfilter.Select(tags...))

		case actionClear:
			page.ClearTags()

		case actionBack:
			loc.SetHash(route.Of(route.BlogIndex).Href())

		case actionQuit:
			return nil
		}
	}
}

func previewActions(v site.View) []string {
	actions := []string{actionNavigate}

	switch v.Template {
	case render.BlogTemplate:
		if len(v.Posts) > 0 {
			actions = append(actions, actionOpenPost)
		}
		actions = append(actions, actionTags)
		if !v.Selection.IsEmpty() {
			actions = append(actions, actionClear)
		}
	case render.PostTemplate, render.NotFoundTemplate:
		actions = append(actions, actionBack)
	}

	return append(actions, actionQuit)
}

func promptPost(v site.View) (string, error) {
	options := make([]string, len(v.Posts))
	for i, p := range v.Posts {
		options[i] = fmt.Sprintf("%s (%s)", p.Title, p.Slug)
	}

	idx := 0
	err := survey.AskOne(&survey.Select{
		Message: "Post",
		Options: options,
	}, &idx)
	if err := interrupted(err); err != nil {
		return "", err
	}

	return v.Posts[idx].Slug, nil
}
