package cmd

import (
	"github.com/spf13/cobra"
)

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate posts and site icons",
	Long: `Generate collects the authoring helpers:

  post  asks for title, date, tags, summary and author and writes a new
        post below the content directory
  logo  renders the favicon and touch icon from a logo image`,
}

func init() {
	rootCmd.AddCommand(genCmd)
}
