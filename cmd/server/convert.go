package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pdf-to-text/internal/config"
	"pdf-to-text/internal/domain"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file.pdf>",
	Short: "Convert a local PDF and print its page mapping",
	Long: `convert runs a local PDF through the same validate, save, extract and
write steps as an HTTP upload. The .txt and .json outputs land in the
configured directories and the page mapping is printed to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := config.NewContainer()
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}
		defer syncLogger(container)

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		result, err := container.ConversionService.Convert(cmd.Context(), &domain.UploadedFile{
			Filename: filepath.Base(args[0]),
			Content:  f,
		})
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result.Pages, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s and %s\n", result.TextPath, result.JSONPath)
		return nil
	},
}
