// Package gallery lists the images of a photo directory, opens them confined
// to that directory and works out prev/next navigation between them.
package gallery

import (
	"errors"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/aouyang1/photogallery/util"
)

var (
	// ErrNotFound is returned when a filename is not part of the image set or
	// does not exist on disk.
	ErrNotFound = errors.New("image not found")

	// ErrInvalidPath is returned for names that would leave the photo directory.
	ErrInvalidPath = errors.New("invalid image path")
)

// DefaultDir is the photo directory used when none is configured.
const DefaultDir = "./photos"

// Config describes where images live and which extensions count as images.
// It is built once at startup and never changed afterwards.
type Config struct {
	Dir        string
	Extensions mapset.Set[string]
}

// NewConfig normalizes exts (lower-cased, leading dots removed). An empty exts
// falls back to util.SupportedExt, an empty dir to DefaultDir.
func NewConfig(dir string, exts []string) Config {
	if dir == "" {
		dir = DefaultDir
	}

	set := mapset.NewThreadUnsafeSet[string]()
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			set.Add(ext)
		}
	}
	if set.Cardinality() == 0 {
		set = util.SupportedExt.Clone()
	}

	return Config{Dir: dir, Extensions: set}
}
