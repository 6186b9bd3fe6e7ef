// internal/catalog/gate.go
//
// Route existence gate.
//
// Before rendering /{locale} or /{locale}/{product} the site confirms the
// page (and, for product routes, the product under that page) exists and is
// active.  The original locale and its default product are special-cased to
// skip the store entirely; they predate the pages table and are assumed to
// always exist.
package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

const (
	// HomeLocale and HomeProduct bypass the existence check.
	HomeLocale  = "pt-br"
	HomeProduct = "foto-passaporte"
)

// Existence reports the outcome of a route check.
type Existence struct {
	PageExists    bool
	ProductExists bool
}

// RouteExists checks locale (and productSlug, when non-empty) against the
// active rows.  Store errors are returned alongside a zero Existence so the
// caller can render not-found rather than raise.
func RouteExists(ctx context.Context, db *sqlx.DB, locale, productSlug string) (Existence, error) {
	if locale == HomeLocale && (productSlug == "" || productSlug == HomeProduct) {
		return Existence{PageExists: true, ProductExists: productSlug != ""}, nil
	}

	var pageID string
	const pageQ = `SELECT id FROM pages WHERE slug = ? AND is_active = TRUE LIMIT 1`
	if err := db.GetContext(ctx, &pageID, pageQ, locale); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Existence{}, nil
		}
		return Existence{}, err
	}

	if productSlug == "" {
		return Existence{PageExists: true}, nil
	}

	var productID string
	const productQ = `
	    SELECT id FROM products
	    WHERE  page_id = ? AND slug = ? AND is_active = TRUE
	    LIMIT  1`
	if err := db.GetContext(ctx, &productID, productQ, pageID, productSlug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Existence{PageExists: true}, nil
		}
		return Existence{PageExists: true}, err
	}

	return Existence{PageExists: true, ProductExists: true}, nil
}
