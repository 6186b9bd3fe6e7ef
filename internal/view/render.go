// internal/view/render.go
//
// View engine: template lookup, func-map injection, and an LRU of parsed
// *template.Template* sets.
//
// Templates live under themes/<theme>/templates.  All *.html files in the
// directory are parsed as one set so sub-templates ({{ template "header" . }})
// work out-of-the-box.  execName() lets a page be either a plain file
// ("landing.html", no define block) or a {{ define "landing" }} root.
//
// Style
// -----
// • Oxford commas, two spaces after periods.

package view

import (
	"bytes"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/photoid-app/photoid/internal/cache"
	"github.com/photoid-app/photoid/internal/content"
)

// Engine resolves and renders theme templates.
type Engine struct {
	themeDir string // themes/<name>, absolute or relative to the root

	// The LRU is not internally locked and Get mutates the recency list,
	// so every access from the request goroutines goes through mu.
	mu  sync.Mutex
	lru *cache.LRU[string, *template.Template]

	dev bool // skip the LRU so edits show up without a restart
}

// New builds an engine over one theme directory.
func New(themeDir string, dev bool) *Engine {
	return &Engine{
		themeDir: themeDir,
		lru:      cache.New[string, *template.Template](256),
		dev:      dev,
	}
}

// Render executes the named template set and streams it to w.
func (e *Engine) Render(w http.ResponseWriter, name string, data any) error {
	t, err := e.load(name)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.ExecuteTemplate(w, execName(t, name), data)
}

// RenderToString executes and returns HTML.  Used by handlers that must
// know the render succeeded before committing a status code, so a template
// failure never leaks a partially written page.
func (e *Engine) RenderToString(name string, data any) (template.HTML, error) {
	t, err := e.load(name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, execName(t, name), data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func (e *Engine) load(name string) (*template.Template, error) {
	k := key(e.themeDir, name)
	if !e.dev {
		e.mu.Lock()
		t, ok := e.lru.Get(k)
		e.mu.Unlock()
		if ok {
			return t, nil
		}
	}

	base := filepath.Join(e.themeDir, "templates", name+".html")
	if _, err := os.Stat(base); err != nil {
		return nil, err
	}

	// Parse all *.html in the directory so shared sub-templates resolve.
	pattern := filepath.Join(filepath.Dir(base), "*.html")
	t, err := template.New(name).Funcs(funcMap()).ParseGlob(pattern)
	if err != nil {
		return nil, err
	}

	if !e.dev {
		e.mu.Lock()
		e.lru.Add(k, t)
		e.mu.Unlock()
	}
	return t, nil
}

func key(parts ...string) string { return strings.Join(parts, "::") }

// execName picks the template name to execute: "<name>.html" when the file
// has no define block, otherwise the bare "<name>" root.
func execName(t *template.Template, name string) string {
	if tmpl := t.Lookup(name + ".html"); tmpl != nil {
		return name + ".html"
	}
	return name
}

/*──────────────────────────── func map ─────────────────────────────────────*/

func funcMap() template.FuncMap {
	return template.FuncMap{
		"dict":    dict,
		"get":     contentGet,
		"rawHTML": rawHTML,
	}
}

// dict builds a map in templates: {{ dict "k" 1 "k2" "v" }}.
func dict(kv ...any) map[string]any {
	m := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		m[key] = kv[i+1]
	}
	return m
}

// contentGet reads one element from a resolved content map:
// {{ get .Content "HeroSection" "mainTitle" }}.
func contentGet(m content.Map, component, elementID string) string {
	return m.Get(component, elementID)
}

// rawHTML marks sanitized admin-authored markup as safe for the template
// engine.  Only PassportGuide html_content flows through here, and it is
// sanitized on write.
func rawHTML(s string) template.HTML { return template.HTML(s) }
