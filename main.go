package main

import (
	"os"

	"github.com/aouyang1/photogallery/config"
	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "photogallery",
	Short:   "Photo gallery web server with EXIF metadata",
	Long: `photogallery serves the images in a directory over HTTP, one image per
page with its camera and lens metadata and circular prev/next navigation.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configFile, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configFile, cmd.Flags())
		if err != nil {
			return err
		}
		setupLogging(cfg.Log)
		cmd.SetContext(withConfig(cmd.Context(), cfg))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config.yaml)")
	rootCmd.PersistentFlags().String("dir", "", "photo directory (default: ./photos, env: GALLERY_GALLERY_DIR)")
	rootCmd.PersistentFlags().StringSlice("ext", nil, "allowed image extensions (default: png,jpg,jpeg,gif)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (env: GALLERY_LOG_LEVEL)")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text, json (env: GALLERY_LOG_FORMAT)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
