// internal/georedirect/store.go
//
// Persistence for the country_redirects table.  One row per ISO 3166-1
// alpha-2 code, unique on country_code, mapping visitors from that country
// to a landing page slug.
package georedirect

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when no rule exists for a country.
var ErrNotFound = errors.New("georedirect: rule not found")

// CountryRedirect maps one country to a landing page.
type CountryRedirect struct {
	ID          string    `db:"id"           json:"id"`
	CountryCode string    `db:"country_code" json:"country_code" validate:"required,len=2"`
	CountryName string    `db:"country_name" json:"country_name" validate:"required"`
	PageSlug    string    `db:"page_slug"    json:"page_slug"    validate:"required"`
	CreatedAt   time.Time `db:"created_at"   json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"   json:"updated_at"`
}

// All returns every rule ordered by country name for the admin listing.
func All(ctx context.Context, db *sqlx.DB) ([]CountryRedirect, error) {
	const q = `
		SELECT id, country_code, country_name, page_slug,
		       created_at, updated_at
		  FROM country_redirects
		 ORDER BY country_name`

	var rows []CountryRedirect
	if err := db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}

// ForCountry returns the rule for one ISO code, or ErrNotFound.  Codes are
// compared upper-case.
func ForCountry(ctx context.Context, db *sqlx.DB, code string) (*CountryRedirect, error) {
	const q = `
		SELECT id, country_code, country_name, page_slug,
		       created_at, updated_at
		  FROM country_redirects
		 WHERE country_code = ?`

	var row CountryRedirect
	err := db.GetContext(ctx, &row, q, strings.ToUpper(code))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Upsert creates or replaces the rule for a country in one statement on the
// country_code unique key.
func Upsert(ctx context.Context, db *sqlx.DB, r CountryRedirect) error {
	const q = `
		INSERT INTO country_redirects (id, country_code, country_name, page_slug)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
		       country_name = VALUES(country_name),
		       page_slug    = VALUES(page_slug)`

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := db.ExecContext(ctx, q,
		r.ID, strings.ToUpper(r.CountryCode), r.CountryName, r.PageSlug)
	return err
}

// Delete removes the rule for one country.  Missing rows are not an error.
func Delete(ctx context.Context, db *sqlx.DB, code string) error {
	_, err := db.ExecContext(ctx,
		`DELETE FROM country_redirects WHERE country_code = ?`,
		strings.ToUpper(code))
	return err
}
