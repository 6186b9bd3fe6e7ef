// internal/catalog/repository.go
//
// Query helpers for the `pages` and `products` tables.
//
// Context
// -------
// The public site reads through the `active_pages` and `active_products`
// views; the admin API reads the base tables so inactive rows stay visible
// for toggling.  All helpers are thin parameterised queries in the shape of
// (ctx, db, args...); callers own transactions and caching.
package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when a slug lookup matches no active row.
var ErrNotFound = errors.New("catalog: not found")

/*──────────────────────────────── pages ───────────────────────────────────*/

// ActivePages returns every page that is active, oldest first.  Used by the
// public navigation and by admin pickers.
func ActivePages(ctx context.Context, db *sqlx.DB) ([]Page, error) {
	const q = `
	    SELECT id, slug, title, is_active, created_at
	    FROM   active_pages
	    ORDER  BY created_at ASC`
	var rows []Page
	if err := db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}

// AllPages returns every page regardless of state (admin listing).
func AllPages(ctx context.Context, db *sqlx.DB) ([]Page, error) {
	const q = `
	    SELECT id, slug, title, is_active, created_at
	    FROM   pages
	    ORDER  BY created_at ASC`
	var rows []Page
	if err := db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}

// PageBySlug fetches a single active page row, or ErrNotFound.
func PageBySlug(ctx context.Context, db *sqlx.DB, slug string) (*Page, error) {
	const q = `
	    SELECT id, slug, title, is_active, created_at
	    FROM   pages
	    WHERE  slug = ? AND is_active = TRUE
	    LIMIT  1`
	var rec Page
	if err := db.GetContext(ctx, &rec, q, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// pageIDBySlug resolves a slug to its id without the active filter; content
// customizations stay attached to pages that were toggled off.
func pageIDBySlug(ctx context.Context, db *sqlx.DB, slug string) (string, error) {
	const q = `SELECT id FROM pages WHERE slug = ? LIMIT 1`
	var id string
	if err := db.GetContext(ctx, &id, q, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return id, nil
}

// PageIDBySlug is the exported form used by the content resolver.
func PageIDBySlug(ctx context.Context, db *sqlx.DB, slug string) (string, error) {
	return pageIDBySlug(ctx, db, slug)
}

// CreatePage inserts a new active page and returns it.  IDs are UUID
// strings generated here rather than by the store.
func CreatePage(ctx context.Context, db *sqlx.DB, slug, title string) (*Page, error) {
	id := uuid.NewString()
	const q = `
	    INSERT INTO pages (id, slug, title, is_active)
	    VALUES (?, ?, ?, TRUE)`
	if _, err := db.ExecContext(ctx, q, id, slug, title); err != nil {
		return nil, err
	}
	return &Page{ID: id, Slug: slug, Title: title, IsActive: true}, nil
}

// SetPageActive soft-enables or soft-disables a page.
func SetPageActive(ctx context.Context, db *sqlx.DB, id string, active bool) error {
	const q = `UPDATE pages SET is_active = ? WHERE id = ?`
	_, err := db.ExecContext(ctx, q, active, id)
	return err
}

// UpdatePageTitle renames a page.
func UpdatePageTitle(ctx context.Context, db *sqlx.DB, id, title string) error {
	const q = `UPDATE pages SET title = ? WHERE id = ?`
	_, err := db.ExecContext(ctx, q, title, id)
	return err
}

// DeletePage removes a page and the products under it.  Content overrides
// are cleaned up separately through the content writer.
func DeletePage(ctx context.Context, db *sqlx.DB, id string) error {
	if _, err := db.ExecContext(ctx,
		`DELETE FROM products WHERE page_id = ?`, id); err != nil {
		return err
	}
	_, err := db.ExecContext(ctx, `DELETE FROM pages WHERE id = ?`, id)
	return err
}

/*─────────────────────────────── products ─────────────────────────────────*/

// ActiveProductsByPage lists the active products under one page, oldest
// first.  Feeds the document-select navigation.
func ActiveProductsByPage(ctx context.Context, db *sqlx.DB, pageID string) ([]Product, error) {
	const q = `
	    SELECT id, page_id, slug, title, is_active, created_at
	    FROM   active_products
	    WHERE  page_id = ?
	    ORDER  BY created_at ASC`
	var rows []Product
	if err := db.SelectContext(ctx, &rows, q, pageID); err != nil {
		return nil, err
	}
	return rows, nil
}

// AllProducts returns every product regardless of state (admin listing).
func AllProducts(ctx context.Context, db *sqlx.DB) ([]Product, error) {
	const q = `
	    SELECT id, page_id, slug, title, is_active, created_at
	    FROM   products
	    ORDER  BY created_at ASC`
	var rows []Product
	if err := db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}

// ProductBySlug resolves (pageSlug, productSlug) to a product row.  Product
// slugs are only unique within a page, so the page is resolved first; the
// lookup deliberately ignores the active flags because the admin panel must
// reach disabled rows too.
func ProductBySlug(ctx context.Context, db *sqlx.DB, pageSlug, productSlug string) (*Product, error) {
	pageID, err := pageIDBySlug(ctx, db, pageSlug)
	if err != nil {
		return nil, err
	}

	const q = `
	    SELECT id, page_id, slug, title, is_active, created_at
	    FROM   products
	    WHERE  page_id = ? AND slug = ?
	    LIMIT  1`
	var rec Product
	if err := db.GetContext(ctx, &rec, q, pageID, productSlug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// CreateProduct inserts a new active product under pageID and returns it.
func CreateProduct(ctx context.Context, db *sqlx.DB, pageID, slug, title string) (*Product, error) {
	id := uuid.NewString()
	const q = `
	    INSERT INTO products (id, page_id, slug, title, is_active)
	    VALUES (?, ?, ?, ?, TRUE)`
	if _, err := db.ExecContext(ctx, q, id, pageID, slug, title); err != nil {
		return nil, err
	}
	return &Product{ID: id, PageID: pageID, Slug: slug, Title: title, IsActive: true}, nil
}

// SetProductActive soft-enables or soft-disables a product.
func SetProductActive(ctx context.Context, db *sqlx.DB, id string, active bool) error {
	const q = `UPDATE products SET is_active = ? WHERE id = ?`
	_, err := db.ExecContext(ctx, q, active, id)
	return err
}

// DeleteProduct removes one product row.
func DeleteProduct(ctx context.Context, db *sqlx.DB, id string) error {
	const q = `DELETE FROM products WHERE id = ?`
	_, err := db.ExecContext(ctx, q, id)
	return err
}
