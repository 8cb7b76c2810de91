package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/aouyang1/photogallery/api/client"
	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls [filename...]",
	Short: "List a running server's images with their metadata",
	Long: `List the images a running gallery server offers. With filenames, only
those images are shown.`,
	RunE: runLs,
}

func init() {
	lsCmd.Flags().String("server", "", "gallery server URL (default: http://localhost:8080, env: GALLERY_CLIENT_SERVER)")
	rootCmd.AddCommand(lsCmd)
}

func runLs(cmd *cobra.Command, args []string) error {
	cfg, err := configFromContext(cmd.Context())
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	gc := client.NewGalleryClient(cfg.Client.Server)

	names := args
	if len(names) == 0 {
		list, err := gc.ListImages(ctx)
		if err != nil {
			return err
		}
		names = list.Images
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMAKE\tMODEL\tLENS\tFOCAL\tAPERTURE\tSHUTTER\tISO\tSTATUS")
	for _, name := range names {
		md, err := gc.Metadata(ctx, name)
		if err != nil {
			return err
		}
		r := md.Metadata
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			md.Filename, r.Make, r.Model, r.LensModel, r.FocalLength, r.Aperture, r.ShutterSpeed, r.ISO, md.Status)
	}
	return w.Flush()
}
