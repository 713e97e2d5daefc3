package cmd

import (
	"github.com/hyperion-dev/hyperion-site/building"
	"github.com/hyperion-dev/hyperion-site/config"
	"github.com/hyperion-dev/hyperion-site/site"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write the site as static files",
	Long: `Build renders the shell page and every view fragment, including the blog
index for each combination of tags, so the site can be hosted without a
server.`,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	isCleanBuild, err := cmd.Flags().GetBool("clean")
	if err != nil {
		return err
	}

	content, err := site.LoadContent()
	if err != nil {
		return err
	}

	return building.Build(content, building.Options{
		Clean:            isCleanBuild,
		ContentDirectory: config.ContentDirectory(),
		BuildDirectory:   config.BuildDirectory(),
		MaxFilterTags:    config.MaxFilterTags(),
		Logo:             config.Logo(),
	}, logger)
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("output", "O", config.DefaultBuildDirectory(), "Build directory")
	buildCmd.Flags().Bool("clean", false, "Rebuild even if the output is up to date")

	err := viper.BindPFlag(config.KeyBuildDirectory, buildCmd.Flags().Lookup("output"))
	if err != nil {
		panic(err)
	}
}
