package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/hyperion-dev/hyperion-site/cmd/tools"
	"github.com/hyperion-dev/hyperion-site/config"
	"github.com/hyperion-dev/hyperion-site/data"
	"github.com/hyperion-dev/hyperion-site/data/tagfilter"
	"github.com/hyperion-dev/hyperion-site/filesystem"
	"github.com/hyperion-dev/hyperion-site/render"
	"github.com/hyperion-dev/hyperion-site/util/dates"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// postCmd represents the post command
var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Interactive process to create a new blog post",
	RunE:  runGenPost,
}

func init() {
	genCmd.AddCommand(postCmd)
}

var errAborted = errors.New("aborted")

func runGenPost(cmd *cobra.Command, args []string) error {
	if !config.HasContentDirectory() {
		return fmt.Errorf("no content directory configured")
	}

	contentDir := config.ContentDirectory()

	store, err := data.NewDefaultStore(contentDir)
	if err != nil {
		return err
	}

	date, err := promptDate()
	if err != nil {
		return err
	}

	// Read title
	title := ""
	{
		prompt := survey.Input{
			Message: "Title",
		}
		err := survey.AskOne(
			&prompt,
			&title,
			survey.WithValidator(survey.Required),
			survey.WithValidator(
				func(ans interface{}) error {
					slug := normalizeTitle(ans.(string))
					if len(slug) == 0 {
						return fmt.Errorf("empty normalized title, try letters and digits")
					}
					if _, ok := store.PostBySlug(slug); ok {
						return fmt.Errorf("a post with slug %q exists", slug)
					}
					return nil
				},
			),
		)
		if err := interrupted(err); err != nil {
			return err
		}
	}

	tags, err := promptTags(store)
	if err != nil {
		return err
	}

	var summary string
	{
		prompt := survey.Input{
			Message: "Summary (optional)",
		}

		err := survey.AskOne(&prompt, &summary)
		if err := interrupted(err); err != nil {
			return err
		}

		summary = strings.TrimSpace(summary)
	}

	author := os.Getenv("USER")
	{
		prompt := survey.Input{
			Message: "Author",
			Default: author,
		}
		err := survey.AskOne(&prompt, &author)
		if err := interrupted(err); err != nil {
			return err
		}
	}

	frontMatter := data.FrontMatter{
		Title:   strings.TrimSpace(title),
		Date:    data.YamlDate(date),
		Author:  strings.TrimSpace(author),
		Summary: summary,
		Tags:    tags,
	}

	// Review front matter
	{
		if err := data.WriteFrontMatter(cmd.OutOrStdout(), frontMatter); err != nil {
			return err
		}

		isConfirmed := true

		prompt := &survey.Confirm{
			Message: "Proceed",
			Default: isConfirmed,
		}

		err := survey.AskOne(prompt, &isConfirmed)
		if err := interrupted(err); err != nil {
			return err
		}

		if !isConfirmed {
			return nil
		}
	}

	postsDir := filepath.Join(contentDir, "posts")
	postFile := filepath.Join(postsDir, fmt.Sprintf("%s-%s.md", dates.DateString(date), normalizeTitle(title)))

	if err := filesystem.CreateDirectoryIfNotExists(postsDir); err != nil {
		return fmt.Errorf("could not create posts directory: %w", err)
	}

	f, err := os.OpenFile(postFile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("could not create post: %w", err)
	}

	err = data.WriteFrontMatter(f, frontMatter)
	if err == nil {
		_, err = fmt.Fprintf(f, "\n%s\n", summaryOrPlaceholder(summary))
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("could not write post: %w", err)
	}

	// The new post must load like every other one.
	if _, err := data.NewDefaultStore(contentDir); err != nil {
		_ = os.Remove(postFile)
		return fmt.Errorf("created post does not load: %w", err)
	}

	logger.Info("created post", zap.String("file", postFile))

	openEditor := true
	err = survey.AskOne(&survey.Confirm{Message: "Open in editor", Default: openEditor}, &openEditor)
	if err := interrupted(err); err != nil {
		return err
	}

	if openEditor {
		return tools.RunEditor(cmd.Context(), postFile)
	}

	return nil
}

// promptTags offers the existing vocabulary and asks for new tags until an
// empty answer.
func promptTags(store *data.Store) ([]string, error) {
	var tags []string

	if vocabulary := tagfilter.Vocabulary(store.Posts()); len(vocabulary) > 0 {
		prompt := &survey.MultiSelect{
			Message: "Tags",
			Options: vocabulary,
		}
		err := survey.AskOne(prompt, &tags)
		if err := interrupted(err); err != nil {
			return nil, err
		}
	}

	prompt := survey.Input{
		Message: "New tag",
	}
	for {
		tag := ""
		err := survey.AskOne(&prompt, &tag, survey.WithValidator(func(ans interface{}) error {
			if strings.Contains(ans.(string), render.TagSeparator) {
				return fmt.Errorf("tags must not contain %q", render.TagSeparator)
			}
			return nil
		}))
		if err := interrupted(err); err != nil {
			return nil, err
		}

		tag = strings.TrimSpace(tag)
		if len(tag) > 0 {
			tags = append(tags, tag)
			continue
		}

		if len(tags) > 0 {
			break
		}

		fmt.Println("A post needs at least one tag.")
	}

	return tags, nil
}

func interrupted(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errAborted
	}

	return err
}

func summaryOrPlaceholder(summary string) string {
	if summary != "" {
		return summary
	}

	return "Write the first paragraph here."
}

func normalizeTitle(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range title {
		if unicode.IsSpace(r) || r == '-' {
			if !lastDash {
				b.WriteString("-")
				lastDash = true
			}
		} else if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(unicode.ToLower(r))
			lastDash = false
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

func isTodayAnswer(s string) bool {
	return s == "today"
}

func promptDate() (time.Time, error) {
	dateStr := dates.DateString(time.Now())

	prompt := survey.Input{
		Message: "Date",
		Default: dateStr,
	}
	err := survey.AskOne(
		&prompt,
		&dateStr,
		survey.WithValidator(func(ans interface{}) error {
			s := ans.(string)

			if isTodayAnswer(s) {
				return nil
			}

			_, err := time.Parse(dates.Layout, s)

			return err
		}),
	)
	if err := interrupted(err); err != nil {
		return time.Time{}, err
	}

	if isTodayAnswer(dateStr) {
		return dates.StartOfDay(time.Now()), nil
	}

	return time.Parse(dates.Layout, dateStr)
}
