// Package util is a set of utility variables or methods
package util

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// SupportedExt holds the image extensions the gallery shows, lower-cased and
// without the leading dot.
var SupportedExt = mapset.NewSet(
	"png", "jpg", "jpeg", "gif",
)

// Ext returns the lower-cased text after the last '.' in name. The second
// return value is false when name has no '.' at all.
func Ext(name string) (string, bool) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return "", false
	}
	return strings.ToLower(name[i+1:]), true
}

// IsImage reports whether name carries one of the extensions in allowed.
func IsImage(name string, allowed mapset.Set[string]) bool {
	ext, ok := Ext(name)
	if !ok {
		return false
	}
	return allowed.Contains(ext)
}
