package gallery

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/aouyang1/photogallery/util"
)

// Lister reads the photo directory. It holds no state between calls; every
// List re-reads the directory.
type Lister struct {
	cfg Config
}

func NewLister(cfg Config) *Lister {
	return &Lister{cfg: cfg}
}

// Dir returns the configured photo directory.
func (l *Lister) Dir() string {
	return l.cfg.Dir
}

// List returns the image set: names of regular entries with an allowed
// extension, sorted ascending. A missing directory yields an empty set.
func (l *Lister) List() ([]string, error) {
	entries, err := os.ReadDir(l.cfg.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("photo directory was not found", "dir", l.cfg.Dir)
			return []string{}, nil
		}
		return nil, fmt.Errorf("unable to read photo directory, %s, %w", l.cfg.Dir, err)
	}

	images := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !util.IsImage(name, l.cfg.Extensions) {
			continue
		}
		images = append(images, name)
	}

	slices.Sort(images)
	return images, nil
}

// Open opens name inside the photo directory. Names that are not local paths
// return ErrInvalidPath; missing files, directories and anything the root
// refuses to resolve (e.g. symlinks pointing outside) return ErrNotFound.
// The caller closes the file.
func (l *Lister) Open(name string) (*os.File, fs.FileInfo, error) {
	if name == "" || !filepath.IsLocal(name) {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidPath, name)
	}

	root, err := os.OpenRoot(l.cfg.Dir)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: open root %s: %v", ErrNotFound, l.cfg.Dir, err)
	}
	defer root.Close()

	f, err := root.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("stat %s: %w", name, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, name)
	}

	return f, info, nil
}
