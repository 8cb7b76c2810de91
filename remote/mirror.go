// Package remote mirrors images from an S3 bucket into the photo directory.
package remote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aouyang1/photogallery/gallery"
	"github.com/aouyang1/photogallery/util"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	mapset "github.com/deckarep/golang-set/v2"
)

var ErrNoBucket = errors.New("no s3 bucket configured")

// Options selects what part of the bucket is mirrored.
type Options struct {
	Bucket string
	Prefix string
	// Prune removes local images that are no longer in the bucket.
	Prune bool
}

// SyncReport lists what a Sync changed, each slice sorted by name.
type SyncReport struct {
	Downloaded []string `json:"downloaded"`
	Deleted    []string `json:"deleted"`
	Failed     []string `json:"failed"`
}

// Changed reports whether the photo directory was modified.
func (r SyncReport) Changed() bool {
	return len(r.Downloaded) > 0 || len(r.Deleted) > 0
}

type Mirror struct {
	client S3API
	cfg    gallery.Config
	lister *gallery.Lister
	opts   Options
}

func NewMirror(client S3API, cfg gallery.Config, opts Options) (*Mirror, error) {
	if opts.Bucket == "" {
		return nil, ErrNoBucket
	}
	if opts.Prefix != "" && !strings.HasSuffix(opts.Prefix, "/") {
		opts.Prefix += "/"
	}
	return &Mirror{
		client: client,
		cfg:    cfg,
		lister: gallery.NewLister(cfg),
		opts:   opts,
	}, nil
}

// remoteFiles maps local file names to the object keys they come from. Only
// objects directly under the prefix with an allowed extension are kept.
func (m *Mirror) remoteFiles(ctx context.Context) (map[string]string, error) {
	files := make(map[string]string)

	input := &s3.ListObjectsV2Input{Bucket: aws.String(m.opts.Bucket)}
	if m.opts.Prefix != "" {
		input.Prefix = aws.String(m.opts.Prefix)
	}

	paginator := s3.NewListObjectsV2Paginator(m.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("unable to list objects in s3 bucket %s: %w", m.opts.Bucket, err)
		}
		for object := range slices.Values(page.Contents) {
			key := aws.ToString(object.Key)
			name := strings.TrimPrefix(key, m.opts.Prefix)
			if name == "" || strings.Contains(name, "/") || !filepath.IsLocal(name) {
				continue
			}
			if !util.IsImage(name, m.cfg.Extensions) {
				continue
			}
			files[name] = key
		}
	}

	if len(files) == 0 {
		slog.Info("no remote files found", "bucket", m.opts.Bucket, "prefix", m.opts.Prefix)
	}
	return files, nil
}

func (m *Mirror) localFiles() (mapset.Set[string], error) {
	names, err := m.lister.List()
	if err != nil {
		return nil, err
	}
	return mapset.NewSet(names...), nil
}

// download writes the object to a hidden part file first so a partial
// download never shows up in the gallery.
func (m *Mirror) download(ctx context.Context, name, key string) error {
	f, err := os.CreateTemp(m.cfg.Dir, "."+name+".*.part")
	if err != nil {
		return fmt.Errorf("unable to create file for s3 download, %s, %w", name, err)
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	downloader := manager.NewDownloader(m.client)
	_, err = downloader.Download(ctx, f, &s3.GetObjectInput{
		Bucket: aws.String(m.opts.Bucket),
		Key:    aws.String(key),
	})
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("unable to download object from s3, %s, %w", key, err)
	}

	if err := os.Rename(tmp, filepath.Join(m.cfg.Dir, name)); err != nil {
		return fmt.Errorf("unable to move download into place, %s, %w", name, err)
	}
	return nil
}

// Sync downloads every remote image missing locally and, with Prune set,
// removes local images absent from the bucket. Individual download or remove
// failures are logged and reported; listing failures abort the sync.
func (m *Mirror) Sync(ctx context.Context) (SyncReport, error) {
	var report SyncReport

	if err := os.MkdirAll(m.cfg.Dir, 0o755); err != nil {
		return report, fmt.Errorf("unable to create photo directory %s: %w", m.cfg.Dir, err)
	}

	localFiles, err := m.localFiles()
	if err != nil {
		return report, err
	}
	remote, err := m.remoteFiles(ctx)
	if err != nil {
		return report, err
	}
	remoteFiles := mapset.NewSetFromMapKeys(remote)

	toDownload := remoteFiles.Difference(localFiles).ToSlice()
	slices.Sort(toDownload)
	if len(toDownload) > 0 {
		slog.Info("adding files", "count", len(toDownload), "names", toDownload)
	}
	for name := range slices.Values(toDownload) {
		if err := m.download(ctx, name, remote[name]); err != nil {
			if ctx.Err() != nil {
				return report, ctx.Err()
			}
			slog.Warn("error while downloading s3 object", "name", name, "error", err)
			report.Failed = append(report.Failed, name)
			continue
		}
		report.Downloaded = append(report.Downloaded, name)
	}

	if m.opts.Prune {
		toDelete := localFiles.Difference(remoteFiles).ToSlice()
		slices.Sort(toDelete)
		if len(toDelete) > 0 {
			slog.Info("deleting local files", "count", len(toDelete), "names", toDelete)
		}
		for name := range slices.Values(toDelete) {
			if err := os.Remove(filepath.Join(m.cfg.Dir, name)); err != nil {
				slog.Warn("unable to remove local file", "name", name, "error", err)
				report.Failed = append(report.Failed, name)
				continue
			}
			report.Deleted = append(report.Deleted, name)
		}
	}

	slog.Info("sync complete",
		"downloaded", len(report.Downloaded),
		"deleted", len(report.Deleted),
		"failed", len(report.Failed),
	)
	return report, nil
}
