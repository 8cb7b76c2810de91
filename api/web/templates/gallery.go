package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// NoImagesMessage is shown whenever the photo directory has nothing to offer.
const NoImagesMessage = "No images found in the photos directory."

// GalleryPage renders every image as a thumbnail linking to its view page.
func GalleryPage(images []string) templ.Component {
	return layout("Gallery", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &pageWriter{w: w}
		p.print(`<main class="gallery"><h1>Gallery</h1>`)
		if len(images) == 0 {
			p.print(`<p class="empty">`)
			p.text(NoImagesMessage)
			p.print(`</p></main>`)
			return p.err
		}

		p.print(`<div class="photo-row">`)
		for _, name := range images {
			p.print(`<div class="photo-item"><a href="`)
			p.href(ViewURL(name))
			p.print(`"><img class="photo-thumbnail" loading="lazy" src="`)
			p.href(PhotoURL(name))
			p.print(`" alt="`)
			p.text(name)
			p.print(`"></a></div>`)
		}
		p.print(`</div></main>`)
		return p.err
	}))
}
