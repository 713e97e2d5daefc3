package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hyperion-dev/hyperion-site/config"
	"github.com/hyperion-dev/hyperion-site/filesystem"
	"github.com/hyperion-dev/hyperion-site/images"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// logoCmd represents the logo command
var logoCmd = &cobra.Command{
	Use:   "logo [IMAGE]",
	Short: "Generate the favicon and touch icon",
	Long: `Icons are square renditions of the logo. Without an input image the
configured site logo is used, or the embedded one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogo,
}

func runLogo(cmd *cobra.Command, args []string) error {
	inputFilePath := ""
	if len(args) == 1 {
		inputFilePath = args[0]
	} else if config.HasLogo() {
		inputFilePath = config.Logo()
	}

	logo, err := images.LoadLogo(inputFilePath)
	if err != nil {
		return err
	}

	outputDirectory := cmd.Flag("output").Value.String()
	if err := filesystem.CreateDirectoryIfNotExists(outputDirectory); err != nil {
		return fmt.Errorf("could not create output directory: %w", err)
	}

	for _, icon := range images.DefaultIcons() {
		outputFilePath := filepath.Join(outputDirectory, icon.Name)

		fOut, err := os.Create(outputFilePath)
		if err != nil {
			return fmt.Errorf("could not create output image: %w", err)
		}

		err = images.WritePNG(fOut, images.Square(logo, icon.Size))
		closeErr := fOut.Close()
		if err != nil {
			return err
		}
		if closeErr != nil {
			return closeErr
		}

		logger.Info("created icon",
			zap.String("file", outputFilePath),
			zap.Int("size", icon.Size),
		)
	}

	return nil
}

func init() {
	genCmd.AddCommand(logoCmd)

	logoCmd.Flags().StringP("output", "o", ".", "Output directory")
}
