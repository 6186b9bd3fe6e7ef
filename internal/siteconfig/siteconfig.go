// internal/siteconfig/siteconfig.go
//
// Helpers for the `site_config` key-value table.
//
// Context
// -------
// Admin-editable runtime switches live here rather than in YAML: the
// geo-redirect enable flag and the default international landing page.
// Values are plain strings; booleans are stored as "true"/"false".
//
// Set is a single upsert on the unique `key` column, so concurrent writes
// to the same key cannot race a select-then-insert window.
package siteconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// Well-known keys.
const (
	KeyGeoRedirectEnabled   = "geo_redirect_enabled"
	KeyDefaultInternational = "default_international_page"
)

// ErrNotFound is returned when a key has no row.
var ErrNotFound = errors.New("siteconfig: key not found")

// Get returns the value for one key, or ErrNotFound.
func Get(ctx context.Context, db *sqlx.DB, key string) (string, error) {
	const q = "SELECT value FROM site_config WHERE `key` = ? LIMIT 1"
	var val string
	if err := db.GetContext(ctx, &val, q, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return val, nil
}

// All returns the full key → value map.  Used by the admin settings screen.
func All(ctx context.Context, db *sqlx.DB) (map[string]string, error) {
	const q = "SELECT `key`, value FROM site_config"
	rows := make([]struct {
		Key   string `db:"key"`
		Value string `db:"value"`
	}, 0, 8) // small default cap

	if err := db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}

	cfg := make(map[string]string, len(rows))
	for _, r := range rows {
		cfg[r.Key] = r.Value
	}
	return cfg, nil
}

// Set creates or replaces one key in a single round trip.
func Set(ctx context.Context, db *sqlx.DB, key, value string) error {
	const q = "INSERT INTO site_config (`key`, value) VALUES (?, ?)" +
		" ON DUPLICATE KEY UPDATE value = VALUES(value)"
	_, err := db.ExecContext(ctx, q, key, value)
	return err
}
