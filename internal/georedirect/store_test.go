package georedirect

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestUpsertNormalizesCode(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO country_redirects")).
		WithArgs(sqlmock.AnyArg(), "PT", "Portugal", "pt-pt").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := Upsert(context.Background(), db, CountryRedirect{
		CountryCode: "pt",
		CountryName: "Portugal",
		PageSlug:    "pt-pt",
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestForCountryNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM country_redirects")).
		WithArgs("DE").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "country_code", "country_name", "page_slug",
			"created_at", "updated_at",
		}))

	_, err := ForCountry(context.Background(), db, "de")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestAllOrdersByName(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY country_name")).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "country_code", "country_name", "page_slug",
			"created_at", "updated_at",
		}).
			AddRow("r1", "DE", "Alemanha", "en-us", now, now).
			AddRow("r2", "PT", "Portugal", "pt-pt", now, now))

	rules, err := All(context.Background(), db)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(rules) != 2 || rules[0].CountryName != "Alemanha" {
		t.Fatalf("rules = %+v", rules)
	}
}

func TestDelete(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM country_redirects WHERE country_code = ?")).
		WithArgs("PT").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := Delete(context.Background(), db, "pt"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}
