package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pdf-to-text/internal/config"
	"pdf-to-text/internal/handler"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pdf2txt",
	Short: "Convert uploaded PDFs to per-page text",
	Long: `pdf2txt extracts the text of every page of a PDF and writes it to a
.txt file (pages separated by a line of asterisks) and a .json page mapping.

Run "pdf2txt serve" to accept uploads over HTTP, or "pdf2txt convert" to
process a local file with the same pipeline. Settings come from the
environment or a .env file in the working directory.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load environment variables from .env file
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("Warning: .env file could not be loaded: %v", err)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP upload endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, convertCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServer() error {
	// Wiring
	container, err := config.NewContainer()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer syncLogger(container)

	// Handlers
	convertHandler := handler.NewConvertHandler(
		container.ConversionService,
		container.Config.GetMaxFileSize(),
		container.Logger,
	)

	// Router
	router := handler.NewRouter(
		convertHandler,
		container.Logger,
		container.Config.GetAllowedOrigins(),
	)

	server := &http.Server{
		Addr:              ":" + container.Config.GetServerPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		container.Logger.Info("Server listening",
			"address", server.Addr,
			"engine", container.Extractor.Name(),
			"upload_path", container.Config.GetUploadPath(),
			"converted_path", container.Config.GetConvertedPath(),
			"json_output_dir", container.Config.GetJSONOutputPath(),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-serverErr:
		if ok {
			container.Logger.Error("Server failed to start", err)
			return err
		}
		return nil
	case <-quit:
	}

	container.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		container.Logger.Error("Graceful shutdown failed", err)
		_ = server.Close()
	}

	container.Logger.Info("Server exited")
	return nil
}

func syncLogger(container *config.Container) {
	if s, ok := container.Logger.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}
