package catalog

import "time"

// Page mirrors one row in the persistent `pages` table.  A Page is a
// locale-level site section ("pt-br", "en-us").  Pages are never
// hard-deleted; operators toggle IsActive instead, and the public site only
// reads through the `active_pages` view.
type Page struct {
	ID        string    `db:"id" json:"id"`
	Slug      string    `db:"slug" json:"slug"`
	Title     string    `db:"title" json:"title"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Product mirrors one row in the `products` table.  A Product is a
// document-type sub-route under exactly one Page ("foto-passaporte").
// Product slugs are unique only within their owning page.
type Product struct {
	ID        string    `db:"id" json:"id"`
	PageID    string    `db:"page_id" json:"page_id"`
	Slug      string    `db:"slug" json:"slug"`
	Title     string    `db:"title" json:"title"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
