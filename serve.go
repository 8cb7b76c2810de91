package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/aouyang1/photogallery/api"
	"github.com/aouyang1/photogallery/exifmeta"
	"github.com/aouyang1/photogallery/gallery"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gallery web server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default: :8080, env: GALLERY_SERVER_ADDR)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := configFromContext(cmd.Context())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lister := gallery.NewLister(cfg.GalleryConfig())
	extractor := exifmeta.NewExtractor(lister)

	ws, err := api.NewWebServer(api.Options{
		Addr:            cfg.Server.Addr,
		ReadTimeout:     cfg.Server.ReadTimeoutDuration(),
		WriteTimeout:    cfg.Server.WriteTimeoutDuration(),
		ShutdownTimeout: cfg.Server.ShutdownTimeoutDuration(),
	}, lister, extractor)
	if err != nil {
		return fmt.Errorf("create web server: %w", err)
	}

	slog.Info("serving photos", "dir", lister.Dir())
	return ws.Run(ctx)
}
