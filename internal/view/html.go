// Package view renders the server-side pages and datastar fragments.
package view

import (
	"context"
	"embed"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Static holds the stylesheet and the browser script.
//
//go:embed static
var Static embed.FS

// builder writes markup and keeps the first write error.
type builder struct {
	w   io.Writer
	err error
}

func (b *builder) raw(s string) {
	if b.err == nil {
		_, b.err = io.WriteString(b.w, s)
	}
}

// text writes s HTML-escaped; safe for element content and quoted attributes.
func (b *builder) text(s string) {
	b.raw(templ.EscapeString(s))
}

func (b *builder) int(n int) {
	b.raw(strconv.Itoa(n))
}

func (b *builder) render(ctx context.Context, c templ.Component) {
	if b.err == nil {
		b.err = c.Render(ctx, b.w)
	}
}

func component(fn func(ctx context.Context, b *builder)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &builder{w: w}
		fn(ctx, b)
		return b.err
	})
}
