package main

import (
	"context"
	"fmt"

	"github.com/aouyang1/photogallery/remote"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Mirror images from an S3 bucket into the photo directory",
	Args:  cobra.NoArgs,
	RunE:  runSync,
}

func init() {
	syncCmd.Flags().String("profile", "", "shared AWS config profile (env: GALLERY_REMOTE_PROFILE)")
	syncCmd.Flags().String("region", "", "AWS region (env: GALLERY_REMOTE_REGION)")
	syncCmd.Flags().String("bucket", "", "S3 bucket to mirror (env: GALLERY_REMOTE_BUCKET)")
	syncCmd.Flags().String("prefix", "", "only mirror objects under this key prefix")
	syncCmd.Flags().Bool("prune", false, "delete local images missing from the bucket")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := configFromContext(cmd.Context())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Remote.TimeoutDuration())
	defer cancel()

	client, err := remote.NewS3Client(ctx, cfg.Remote.Profile, cfg.Remote.Region)
	if err != nil {
		return err
	}

	mirror, err := remote.NewMirror(client, cfg.GalleryConfig(), remote.Options{
		Bucket: cfg.Remote.Bucket,
		Prefix: cfg.Remote.Prefix,
		Prune:  cfg.Remote.Prune,
	})
	if err != nil {
		return err
	}

	report, err := mirror.Sync(ctx)
	if err != nil {
		return fmt.Errorf("sync with s3 bucket %s: %w", cfg.Remote.Bucket, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "downloaded: %d\n", len(report.Downloaded))
	fmt.Fprintf(out, "deleted:    %d\n", len(report.Deleted))
	fmt.Fprintf(out, "failed:     %d\n", len(report.Failed))
	if len(report.Failed) > 0 {
		return fmt.Errorf("%d files failed to sync", len(report.Failed))
	}
	return nil
}
