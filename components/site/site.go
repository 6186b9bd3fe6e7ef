// components/site/site.go
//
// Public site component.
//
// Routes
// ------
//   GET /                     – geo-aware 302 to a landing page
//   GET /{locale}             – localized landing page
//   GET /{locale}/{product}   – localized product page
//   GET /como-funciona        – static marketing pages, plus
//                               /termos-de-uso and /politica-de-privacidade
//
// The root handler never renders: it resolves the visitor country and asks
// the redirect resolver for a destination slug.  Locale and product pages
// pass the existence gate before rendering; unknown routes fall through to
// the not-found page with status 404.
//
// Style
// -----
// • Oxford commas, two spaces after periods.

package site

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/photoid-app/photoid/internal/catalog"
	"github.com/photoid-app/photoid/internal/content"
	"github.com/photoid-app/photoid/internal/geo"
	"github.com/photoid-app/photoid/internal/georedirect"
	"github.com/photoid-app/photoid/internal/head"
	"github.com/photoid-app/photoid/internal/requestinfo"
	"github.com/photoid-app/photoid/internal/view"
)

// Component serves every public page.
type Component struct {
	db       *sqlx.DB
	content  *content.Resolver
	redirect *georedirect.Resolver
	locator  geo.Locator
	views    *view.Engine
	log      *zap.SugaredLogger
}

// New wires the public site.
func New(db *sqlx.DB, cr *content.Resolver, rr *georedirect.Resolver, loc geo.Locator, views *view.Engine, log *zap.SugaredLogger) *Component {
	if log == nil {
		log = zap.S()
	}
	return &Component{
		db:       db,
		content:  cr,
		redirect: rr,
		locator:  loc,
		views:    views,
		log:      log,
	}
}

// Prefix mounts the site at the root.
func (c *Component) Prefix() string { return "/" }

// staticPages are marketing pages that are not locale-scoped.  Static
// routes win over the /{locale} pattern, so these never shadow a locale.
var staticPages = map[string]string{
	"/como-funciona":           "Como Funciona",
	"/termos-de-uso":           "Termos de Uso",
	"/politica-de-privacidade": "Política de Privacidade",
}

// Routes builds the public router.
func (c *Component) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", c.handleRoot)
	for path, title := range staticPages {
		r.Get(path, c.staticHandler(path, title))
	}
	r.Get("/{locale}", c.handleLanding)
	r.Get("/{locale}/{product}", c.handleProduct)
	r.NotFound(c.notFound)
	return r
}

/*──────────────────────────── handlers ─────────────────────────────────────*/

// handleRoot sends the visitor to a landing page chosen by country.
func (c *Component) handleRoot(w http.ResponseWriter, r *http.Request) {
	country := ""
	if c.locator != nil {
		ip := requestinfo.ClientIP(r)
		if info := requestinfo.FromContext(r.Context()); info != nil && info.Geo.IP != nil {
			ip = info.Geo.IP
		}
		code, err := c.locator.Country(r.Context(), ip)
		if err != nil {
			// Lookup failures land on the home page, never an error page.
			c.log.Warnw("geo lookup failed", "ip", ip, "err", err)
		} else {
			country = code
		}
	}

	slug := c.redirect.Destination(r.Context(), country)
	http.Redirect(w, r, "/"+slug, http.StatusFound)
}

// handleLanding renders one localized landing page.
func (c *Component) handleLanding(w http.ResponseWriter, r *http.Request) {
	locale := chi.URLParam(r, "locale")

	page, err := catalog.PageBySlug(r.Context(), c.db, locale)
	if err != nil {
		if !errors.Is(err, catalog.ErrNotFound) {
			c.log.Errorw("page lookup failed", "locale", locale, "err", err)
		}
		c.notFound(w, r)
		return
	}

	// On resolver errors cm still holds defaults, and the resolver logged.
	cm, _ := c.content.ResolvePage(r.Context(), page.ID, page.Slug)

	products, err := catalog.ActiveProductsByPage(r.Context(), c.db, page.ID)
	if err != nil {
		c.log.Errorw("product listing failed", "locale", locale, "err", err)
		products = nil
	}

	h := head.New()
	h.SetTitle(page.Title)
	h.Description(cm.Get("HeroSection", "mainSubtitle"))
	h.Canonical("/" + page.Slug)

	data := map[string]any{
		"Page":     page,
		"Products": products,
		"Content":  cm,
		"Head":     h,
	}
	if err := c.views.Render(w, "landing", data); err != nil {
		c.log.Errorw("landing render failed", "locale", locale, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// handleProduct renders one localized product page.
func (c *Component) handleProduct(w http.ResponseWriter, r *http.Request) {
	locale := chi.URLParam(r, "locale")
	slug := chi.URLParam(r, "product")

	exists, err := catalog.RouteExists(r.Context(), c.db, locale, slug)
	if err != nil {
		c.log.Errorw("existence gate failed", "locale", locale, "product", slug, "err", err)
		c.notFound(w, r)
		return
	}
	if !exists.PageExists || !exists.ProductExists {
		c.notFound(w, r)
		return
	}

	product, err := catalog.ProductBySlug(r.Context(), c.db, locale, slug)
	switch {
	case err == nil:
	case errors.Is(err, catalog.ErrNotFound) &&
		locale == catalog.HomeLocale && slug == catalog.HomeProduct:
		// The launch route must render even when the seed rows are absent;
		// the gate already vouched for it, so serve the default content.
		product = &catalog.Product{Slug: catalog.HomeProduct, Title: "Foto para Passaporte"}
	default:
		if !errors.Is(err, catalog.ErrNotFound) {
			c.log.Errorw("product lookup failed", "locale", locale, "product", slug, "err", err)
		}
		c.notFound(w, r)
		return
	}

	cm, _ := c.content.ResolveProduct(r.Context(), product.ID, locale, slug)

	h := head.New()
	h.SetTitle(product.Title)
	h.Description(cm.Get("HeroSection", "mainSubtitle"))
	h.Canonical("/" + locale + "/" + slug)

	data := map[string]any{
		"Locale":  locale,
		"Product": product,
		"Content": cm,
		"Head":    h,
	}
	if err := c.views.Render(w, "product", data); err != nil {
		c.log.Errorw("product render failed", "locale", locale, "product", slug, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// staticHandler renders one fixed marketing page.
func (c *Component) staticHandler(path, title string) http.HandlerFunc {
	// "/termos-de-uso" renders themes/<name>/templates/termos-de-uso.html.
	name := strings.TrimPrefix(path, "/")
	return func(w http.ResponseWriter, r *http.Request) {
		h := head.New()
		h.SetTitle(title + " · PhotoID")
		h.Canonical(path)

		// Rendered to a string first so a template failure can still fall
		// through to the 404 page instead of a half-written response.
		body, err := c.views.RenderToString(name, map[string]any{
			"Title": title,
			"Head":  h,
		})
		if err != nil {
			c.log.Errorw("static render failed", "page", name, "err", err)
			c.notFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(body))
	}
}

// notFound renders the themed 404 page.
func (c *Component) notFound(w http.ResponseWriter, r *http.Request) {
	body, err := c.views.RenderToString("notfound", map[string]any{
		"Path": r.URL.Path,
	})
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(body))
}
