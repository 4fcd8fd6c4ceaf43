// Package view renders the site's pages as templ components.
//
// Components are written with templ.ComponentFunc directly; every piece of
// text and every attribute goes through templ's escaping.
package view

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
)

// htmlWriter writes markup and keeps the first write error.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

func (hw *htmlWriter) raw(parts ...string) {
	for _, p := range parts {
		if hw.err != nil {
			return
		}
		_, hw.err = io.WriteString(hw.w, p)
	}
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

// open writes a start tag. attrs are name/value pairs; an empty value writes
// a bare attribute name.
func (hw *htmlWriter) open(tag string, attrs ...string) {
	hw.raw("<", tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		name, value := attrs[i], attrs[i+1]
		if value == "" {
			hw.raw(" ", name)
			continue
		}
		hw.raw(" ", name, `="`, templ.EscapeString(value), `"`)
	}
	hw.raw(">")
}

func (hw *htmlWriter) close(tag string) {
	hw.raw("</", tag, ">")
}

// element writes <tag attrs>text</tag>.
func (hw *htmlWriter) element(tag, text string, attrs ...string) {
	hw.open(tag, attrs...)
	hw.text(text)
	hw.close(tag)
}

func (hw *htmlWriter) render(c templ.Component) {
	if hw.err != nil || c == nil {
		return
	}
	hw.err = c.Render(hw.ctx, hw.w)
}

func component(fn func(hw *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newWriter(ctx, w)
		fn(hw)
		return hw.err
	})
}

// safeHref passes a link through templ's URL sanitizer, so that schemes such
// as javascript: never reach an href.
func safeHref(link string) string {
	return string(templ.URL(link))
}

// CategoryPath is the route of a category page.
func CategoryPath(name string) string {
	return "/" + url.PathEscape(name)
}

// withNavOpen adds the open-menu flag to a path.
func withNavOpen(path string) string {
	if strings.Contains(path, "?") {
		return path + "&" + NavParam + "=" + NavOpen
	}
	return path + "?" + NavParam + "=" + NavOpen
}
