package gallery_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aouyang1/photogallery/gallery"
)

func TestNavigate(t *testing.T) {
	images := []string{"a.jpg", "b.jpg", "c.jpg"}

	tests := []struct {
		name string
		cur  string
		prev string
		next string
		pos  int
	}{
		{"first wraps to last", "a.jpg", "c.jpg", "b.jpg", 0},
		{"middle", "b.jpg", "a.jpg", "c.jpg", 1},
		{"last wraps to first", "c.jpg", "b.jpg", "a.jpg", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := gallery.Navigate(images, tt.cur)
			require.NoError(t, err)
			assert.Equal(t, tt.cur, v.Current)
			assert.Equal(t, tt.prev, v.Prev)
			assert.Equal(t, tt.next, v.Next)
			assert.Equal(t, tt.pos, v.Position)
			assert.Equal(t, 3, v.Total)
		})
	}
}

func TestNavigate_SingleImage(t *testing.T) {
	v, err := gallery.Navigate([]string{"a.jpg"}, "a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "a.jpg", v.Prev)
	assert.Equal(t, "a.jpg", v.Next)
}

func TestNavigate_NotFound(t *testing.T) {
	_, err := gallery.Navigate([]string{"a.jpg"}, "z.jpg")
	assert.True(t, errors.Is(err, gallery.ErrNotFound))

	_, err = gallery.Navigate(nil, "a.jpg")
	assert.True(t, errors.Is(err, gallery.ErrNotFound))
}
