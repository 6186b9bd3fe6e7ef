// internal/head/builder.go
//
// The Builder collects everything that should appear inside a page's
// <head> element.  It is scoped to a single request.  Handlers push tags
// into the builder, then the theme's base layout decides where to emit
// each slice.
//
// Features
// --------
//   - SetTitle          – single <title> tag (last call wins).
//   - Meta, Link        – arbitrary tags with deduplication.
//   - Canonical         – convenience for the canonical link.
//   - Alternate         – hreflang alternates for the locale variants of
//     the same page, one per active landing page.
package head

import (
	"html/template"
	"strings"
	"sync"
)

// Builder is not safe for concurrent writes from multiple goroutines, but
// typical use is one goroutine per request, so a simple mutex is enough.
type Builder struct {
	mu sync.Mutex

	title string

	metas []string
	links []string

	seen map[string]struct{}
}

func New() *Builder {
	return &Builder{seen: make(map[string]struct{})}
}

// SetTitle overrides the page <title>.  The last caller wins.
func (b *Builder) SetTitle(t string) {
	b.mu.Lock()
	b.title = t
	b.mu.Unlock()
}

// Title returns a fully formed <title> tag or an empty string.
func (b *Builder) Title() template.HTML {
	if b.title == "" {
		return ""
	}
	return template.HTML("<title>" + template.HTMLEscapeString(b.title) + "</title>")
}

// Description sets the meta description tag.
func (b *Builder) Description(text string) {
	b.Meta(`<meta name="description" content="` +
		template.HTMLEscapeString(text) + `">`)
}

// Canonical records the canonical URL for the page.
func (b *Builder) Canonical(url string) {
	b.Link(`<link rel="canonical" href="` +
		template.HTMLEscapeString(url) + `">`)
}

// Alternate records one hreflang variant of the current page.
func (b *Builder) Alternate(lang, url string) {
	b.Link(`<link rel="alternate" hreflang="` +
		template.HTMLEscapeString(lang) + `" href="` +
		template.HTMLEscapeString(url) + `">`)
}

func (b *Builder) Meta(tag string) { b.add("meta:"+tag, &b.metas, tag) }
func (b *Builder) Link(tag string) { b.add("link:"+tag, &b.links, tag) }

func (b *Builder) add(key string, tgt *[]string, tag string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, dup := b.seen[key]; dup {
		return
	}
	b.seen[key] = struct{}{}
	*tgt = append(*tgt, tag)
}

// Metas and Links are called from the theme's base layout.
func (b *Builder) Metas() template.HTML { return concat(b.metas) }
func (b *Builder) Links() template.HTML { return concat(b.links) }

// concat joins pre-escaped tags without a separator.
func concat(sl []string) template.HTML {
	return template.HTML(strings.Join(sl, ""))
}
