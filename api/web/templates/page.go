// Package templates renders the gallery's HTML pages as templ components.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// pageWriter keeps the first write error so markup can be emitted without
// checking every call.
type pageWriter struct {
	w   io.Writer
	err error
}

func (p *pageWriter) print(parts ...string) {
	for _, s := range parts {
		if p.err != nil {
			return
		}
		_, p.err = io.WriteString(p.w, s)
	}
}

func (p *pageWriter) text(s string) {
	p.print(templ.EscapeString(s))
}

func (p *pageWriter) href(u string) {
	p.print(templ.EscapeString(string(templ.URL(u))))
}

func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &pageWriter{w: w}
		p.print(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`)
		p.text(title)
		p.print(`</title><link rel="stylesheet" href="/static/gallery.css"></head><body>`)
		if p.err != nil {
			return p.err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		p.print(`<script src="/static/gallery.js"></script></body></html>`)
		return p.err
	})
}
