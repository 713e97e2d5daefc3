package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/hyperion-dev/hyperion-site/cmd/serve"
	"github.com/hyperion-dev/hyperion-site/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return serve.Run(ctx, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", config.DefaultServerAddress(), "Listen address")
	err := viper.BindPFlag(config.KeyServerAddress, serveCmd.Flags().Lookup("address"))
	if err != nil {
		panic(err)
	}
}
