package gallery

import (
	"fmt"
	"slices"
)

// View is the position of one image within the image set together with its
// circular neighbours.
type View struct {
	Current  string
	Prev     string
	Next     string
	Position int
	Total    int
}

// Navigate locates name in images and returns its neighbours, wrapping around
// at both ends. A single-image set points back at itself.
func Navigate(images []string, name string) (View, error) {
	i := slices.Index(images, name)
	if i < 0 {
		return View{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	n := len(images)
	return View{
		Current:  name,
		Prev:     images[(i-1+n)%n],
		Next:     images[(i+1)%n],
		Position: i,
		Total:    n,
	}, nil
}
