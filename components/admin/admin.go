// components/admin/admin.go
//
// Admin JSON API.
//
// Mounted under /admin/api.  Every endpoint speaks JSON; write failures
// log the full error server-side and return one generic error body so
// storage details never leak to the client.
//
// Routes
// ------
//   GET    /pages                                  – list all pages
//   POST   /pages                                  – create page
//   PATCH  /pages/{id}                             – rename / toggle
//   DELETE /pages/{id}                             – delete page + products
//   GET    /products                               – list all products
//   POST   /products                               – create product
//   PATCH  /products/{id}                          – toggle
//   DELETE /products/{id}                          – delete product
//   GET    /schema/{entityType}                    – editable components
//   GET    /customizations/{entityType}/{id}       – stored overrides
//   PUT    /customizations/{entityType}/{id}/{component} – batch save
//   PUT    /customizations/{entityType}/{id}/{component}/{element} – one element
//   DELETE /customizations/{entityType}/{id}/{component} – reset
//   GET    /settings                               – site config map
//   PUT    /settings/{key}                         – set one key
//   GET    /redirects                              – country rules
//   PUT    /redirects                              – upsert rule
//   DELETE /redirects/{code}                       – delete rule
//
// Style
// -----
// • Oxford commas, two spaces after periods.

package admin

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/photoid-app/photoid/internal/catalog"
	"github.com/photoid-app/photoid/internal/content"
	"github.com/photoid-app/photoid/internal/georedirect"
	"github.com/photoid-app/photoid/internal/siteconfig"
)

// Component serves the admin API.
type Component struct {
	db       *sqlx.DB
	writer   *content.Writer
	validate *validator.Validate
	log      *zap.SugaredLogger
}

// New wires the admin API.
func New(db *sqlx.DB, writer *content.Writer, log *zap.SugaredLogger) *Component {
	if log == nil {
		log = zap.S()
	}
	return &Component{
		db:       db,
		writer:   writer,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

// Prefix mounts the API under /admin/api.
func (c *Component) Prefix() string { return "/admin/api" }

// Routes builds the admin router.
func (c *Component) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/pages", c.listPages)
	r.Post("/pages", c.createPage)
	r.Patch("/pages/{id}", c.updatePage)
	r.Delete("/pages/{id}", c.deletePage)

	r.Get("/products", c.listProducts)
	r.Post("/products", c.createProduct)
	r.Patch("/products/{id}", c.updateProduct)
	r.Delete("/products/{id}", c.deleteProduct)

	r.Get("/schema/{entityType}", c.schema)

	r.Get("/customizations/{entityType}/{id}", c.listCustomizations)
	r.Put("/customizations/{entityType}/{id}/{component}", c.saveComponent)
	r.Put("/customizations/{entityType}/{id}/{component}/{element}", c.saveElement)
	r.Delete("/customizations/{entityType}/{id}/{component}", c.resetComponent)

	r.Get("/settings", c.listSettings)
	r.Put("/settings/{key}", c.putSetting)

	r.Get("/redirects", c.listRedirects)
	r.Put("/redirects", c.putRedirect)
	r.Delete("/redirects/{code}", c.deleteRedirect)

	return r
}

/*──────────────────────────── JSON helpers ─────────────────────────────────*/

func respond(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// fail logs the real error and answers with a generic body.
func (c *Component) fail(w http.ResponseWriter, status int, op string, err error) {
	c.log.Errorw("admin api error", "op", op, "err", err)
	respond(w, status, map[string]string{"error": "request failed"})
}

func badRequest(w http.ResponseWriter, msg string) {
	respond(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func entityType(r *http.Request) (content.EntityType, bool) {
	switch chi.URLParam(r, "entityType") {
	case "page":
		return content.EntityPage, true
	case "product":
		return content.EntityProduct, true
	default:
		return "", false
	}
}

/*──────────────────────────────── pages ────────────────────────────────────*/

func (c *Component) listPages(w http.ResponseWriter, r *http.Request) {
	pages, err := catalog.AllPages(r.Context(), c.db)
	if err != nil {
		c.fail(w, http.StatusInternalServerError, "list pages", err)
		return
	}
	if pages == nil {
		pages = []catalog.Page{}
	}
	respond(w, http.StatusOK, pages)
}

type createPageReq struct {
	Slug  string `json:"slug"  validate:"required,min=2,max=64"`
	Title string `json:"title" validate:"required,max=255"`
}

func (c *Component) createPage(w http.ResponseWriter, r *http.Request) {
	var req createPageReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if err := c.validate.Struct(req); err != nil {
		badRequest(w, "invalid page fields")
		return
	}

	page, err := catalog.CreatePage(r.Context(), c.db, req.Slug, req.Title)
	if err != nil {
		c.fail(w, http.StatusInternalServerError, "create page", err)
		return
	}
	respond(w, http.StatusCreated, page)
}

type updatePageReq struct {
	Title    *string `json:"title,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (c *Component) updatePage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updatePageReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if req.Title == nil && req.IsActive == nil {
		badRequest(w, "nothing to update")
		return
	}

	if req.Title != nil {
		if err := catalog.UpdatePageTitle(r.Context(), c.db, id, *req.Title); err != nil {
			c.fail(w, http.StatusInternalServerError, "update page title", err)
			return
		}
	}
	if req.IsActive != nil {
		if err := catalog.SetPageActive(r.Context(), c.db, id, *req.IsActive); err != nil {
			c.fail(w, http.StatusInternalServerError, "toggle page", err)
			return
		}
	}
	respond(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (c *Component) deletePage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := catalog.DeletePage(r.Context(), c.db, id); err != nil {
		c.fail(w, http.StatusInternalServerError, "delete page", err)
		return
	}
	if err := c.writer.DeleteEntity(r.Context(), id, content.EntityPage); err != nil {
		c.fail(w, http.StatusInternalServerError, "delete page customizations", err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "deleted"})
}

/*─────────────────────────────── products ──────────────────────────────────*/

func (c *Component) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := catalog.AllProducts(r.Context(), c.db)
	if err != nil {
		c.fail(w, http.StatusInternalServerError, "list products", err)
		return
	}
	if products == nil {
		products = []catalog.Product{}
	}
	respond(w, http.StatusOK, products)
}

type createProductReq struct {
	PageID string `json:"page_id" validate:"required"`
	Slug   string `json:"slug"    validate:"required,min=2,max=64"`
	Title  string `json:"title"   validate:"required,max=255"`
}

func (c *Component) createProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if err := c.validate.Struct(req); err != nil {
		badRequest(w, "invalid product fields")
		return
	}

	product, err := catalog.CreateProduct(r.Context(), c.db, req.PageID, req.Slug, req.Title)
	if err != nil {
		c.fail(w, http.StatusInternalServerError, "create product", err)
		return
	}
	respond(w, http.StatusCreated, product)
}

type updateProductReq struct {
	IsActive *bool `json:"is_active,omitempty"`
}

func (c *Component) updateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateProductReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if req.IsActive == nil {
		badRequest(w, "nothing to update")
		return
	}

	if err := catalog.SetProductActive(r.Context(), c.db, id, *req.IsActive); err != nil {
		c.fail(w, http.StatusInternalServerError, "toggle product", err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (c *Component) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := catalog.DeleteProduct(r.Context(), c.db, id); err != nil {
		c.fail(w, http.StatusInternalServerError, "delete product", err)
		return
	}
	if err := c.writer.DeleteEntity(r.Context(), id, content.EntityProduct); err != nil {
		c.fail(w, http.StatusInternalServerError, "delete product customizations", err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "deleted"})
}

/*──────────────────────────── content schema ───────────────────────────────*/

func (c *Component) schema(w http.ResponseWriter, r *http.Request) {
	et, ok := entityType(r)
	if !ok {
		badRequest(w, "entity type must be page or product")
		return
	}
	if et == content.EntityProduct {
		respond(w, http.StatusOK, content.ProductComponents())
		return
	}
	respond(w, http.StatusOK, content.Components())
}

/*───────────────────────────── customizations ──────────────────────────────*/

func (c *Component) listCustomizations(w http.ResponseWriter, r *http.Request) {
	et, ok := entityType(r)
	if !ok {
		badRequest(w, "entity type must be page or product")
		return
	}
	id := chi.URLParam(r, "id")

	rows, err := content.ByEntity(r.Context(), c.db, id, et)
	if err != nil {
		c.fail(w, http.StatusInternalServerError, "list customizations", err)
		return
	}
	if rows == nil {
		rows = []content.Customization{}
	}
	respond(w, http.StatusOK, rows)
}

type saveComponentReq struct {
	Changes []content.Change `json:"changes" validate:"required,min=1,dive"`
}

func (c *Component) saveComponent(w http.ResponseWriter, r *http.Request) {
	et, ok := entityType(r)
	if !ok {
		badRequest(w, "entity type must be page or product")
		return
	}
	id := chi.URLParam(r, "id")
	comp := chi.URLParam(r, "component")

	var req saveComponentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if err := c.validate.Struct(req); err != nil {
		badRequest(w, "changes require element ids")
		return
	}

	applied, err := c.writer.SaveComponent(r.Context(), id, et, comp, req.Changes)
	if err != nil {
		c.fail(w, http.StatusInternalServerError, "save component", err)
		return
	}
	respond(w, http.StatusOK, map[string]int{"applied": applied})
}

type saveElementReq struct {
	Value string `json:"value"`
}

// saveElement updates one element without touching the rest of its
// component, for editors that save field by field.
func (c *Component) saveElement(w http.ResponseWriter, r *http.Request) {
	et, ok := entityType(r)
	if !ok {
		badRequest(w, "entity type must be page or product")
		return
	}
	id := chi.URLParam(r, "id")
	comp := chi.URLParam(r, "component")
	element := chi.URLParam(r, "element")

	var req saveElementReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid json")
		return
	}

	change := content.Change{ElementID: element, Value: req.Value}
	if err := c.writer.SaveElement(r.Context(), id, et, comp, change); err != nil {
		c.fail(w, http.StatusInternalServerError, "save element", err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (c *Component) resetComponent(w http.ResponseWriter, r *http.Request) {
	et, ok := entityType(r)
	if !ok {
		badRequest(w, "entity type must be page or product")
		return
	}
	id := chi.URLParam(r, "id")
	comp := chi.URLParam(r, "component")

	if err := c.writer.ResetComponent(r.Context(), id, et, comp); err != nil {
		c.fail(w, http.StatusInternalServerError, "reset component", err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "reset"})
}

/*─────────────────────────────── settings ──────────────────────────────────*/

func (c *Component) listSettings(w http.ResponseWriter, r *http.Request) {
	cfg, err := siteconfig.All(r.Context(), c.db)
	if err != nil {
		c.fail(w, http.StatusInternalServerError, "list settings", err)
		return
	}
	respond(w, http.StatusOK, cfg)
}

type putSettingReq struct {
	Value string `json:"value"`
}

func (c *Component) putSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var req putSettingReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid json")
		return
	}

	if err := siteconfig.Set(r.Context(), c.db, key, req.Value); err != nil {
		c.fail(w, http.StatusInternalServerError, "put setting", err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "saved"})
}

/*─────────────────────────────── redirects ─────────────────────────────────*/

func (c *Component) listRedirects(w http.ResponseWriter, r *http.Request) {
	rules, err := georedirect.All(r.Context(), c.db)
	if err != nil {
		c.fail(w, http.StatusInternalServerError, "list redirects", err)
		return
	}
	if rules == nil {
		rules = []georedirect.CountryRedirect{}
	}
	respond(w, http.StatusOK, rules)
}

func (c *Component) putRedirect(w http.ResponseWriter, r *http.Request) {
	var rule georedirect.CountryRedirect
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if err := c.validate.Struct(rule); err != nil {
		badRequest(w, "country code, name, and page slug are required")
		return
	}

	if err := georedirect.Upsert(r.Context(), c.db, rule); err != nil {
		c.fail(w, http.StatusInternalServerError, "upsert redirect", err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (c *Component) deleteRedirect(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if len(code) != 2 {
		badRequest(w, "country code must be two letters")
		return
	}

	if err := georedirect.Delete(r.Context(), c.db, code); err != nil {
		c.fail(w, http.StatusInternalServerError, "delete redirect", err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "deleted"})
}
