package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/aouyang1/photogallery/exifmeta"
	"github.com/aouyang1/photogallery/gallery"
)

// ViewPageData is everything the single image page shows.
type ViewPageData struct {
	View     gallery.View
	Metadata exifmeta.Record
}

// ViewPage renders one image with its metadata and prev/next links.
func ViewPage(data ViewPageData) templ.Component {
	return layout(data.View.Current, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		v := data.View
		p := &pageWriter{w: w}

		p.print(`<main class="viewer"><nav class="viewer-nav">`)
		p.print(`<a id="prev-link" class="nav-link" href="`)
		p.href(ViewURL(v.Prev))
		p.print(`">&larr; `)
		p.text(v.Prev)
		p.print(`</a><span class="position">`)
		p.text(fmt.Sprintf("%d / %d", v.Position+1, v.Total))
		p.print(`</span><a id="next-link" class="nav-link" href="`)
		p.href(ViewURL(v.Next))
		p.print(`">`)
		p.text(v.Next)
		p.print(` &rarr;</a></nav>`)

		p.print(`<figure class="photo"><img src="`)
		p.href(PhotoURL(v.Current))
		p.print(`" alt="`)
		p.text(v.Current)
		p.print(`"><figcaption>`)
		p.text(v.Current)
		p.print(`</figcaption></figure>`)

		p.print(`<table class="metadata"><tbody>`)
		for _, f := range data.Metadata.Fields() {
			p.print(`<tr><th>`)
			p.text(f.Label)
			p.print(`</th><td>`)
			p.text(f.Value)
			p.print(`</td></tr>`)
		}
		p.print(`</tbody></table>`)
		p.print(`<p class="all-link"><a href="/gallery">All photos</a></p></main>`)
		return p.err
	}))
}
