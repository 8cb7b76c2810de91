package templates

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/aouyang1/photogallery/exifmeta"
	"github.com/aouyang1/photogallery/gallery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLs(t *testing.T) {
	assert.Equal(t, "/photos/a.jpg", PhotoURL("a.jpg"))
	assert.Equal(t, "/view/my%20photo.jpg", ViewURL("my photo.jpg"))
	assert.Equal(t, "/view/%3F.jpg", ViewURL("?.jpg"))
}

func TestViewPage_EscapesNames(t *testing.T) {
	data := ViewPageData{
		View: gallery.View{
			Current:  `<b>"x".jpg`,
			Prev:     "a.jpg",
			Next:     "c.jpg",
			Position: 1,
			Total:    3,
		},
		Metadata: exifmeta.DefaultRecord(),
	}

	var buf bytes.Buffer
	require.NoError(t, ViewPage(data).Render(context.Background(), &buf))
	html := buf.String()

	assert.NotContains(t, html, `<b>"x"`)
	assert.Contains(t, html, "&lt;b&gt;&#34;x&#34;.jpg")
	assert.Contains(t, html, "2 / 3")
	assert.Contains(t, html, `href="/static/gallery.css"`)
	assert.Contains(t, html, `src="/static/gallery.js"`)
}

func TestGalleryPage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, GalleryPage([]string{"a.jpg", "b.png"}).Render(context.Background(), &buf))

	assert.Contains(t, buf.String(), `<a href="/view/a.jpg"><img class="photo-thumbnail" loading="lazy" src="/photos/a.jpg" alt="a.jpg"></a>`)
	assert.Contains(t, buf.String(), `src="/photos/b.png"`)
	assert.NotContains(t, buf.String(), NoImagesMessage)
}

func TestGalleryPage_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, GalleryPage(nil).Render(context.Background(), &buf))

	assert.Contains(t, buf.String(), NoImagesMessage)
	assert.NotContains(t, buf.String(), "photo-row")
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("closed")
	}
	w.n--
	return len(p), nil
}

func TestRender_ReturnsWriteError(t *testing.T) {
	err := GalleryPage([]string{"a.jpg"}).Render(context.Background(), &failingWriter{n: 3})
	assert.EqualError(t, err, "closed")
}
