package siteconfig

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { raw.Close() })
	return sqlx.NewDb(raw, "mysql"), mock
}

func TestGet(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM site_config WHERE `key` = ? LIMIT 1")).
		WithArgs(KeyGeoRedirectEnabled).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("true"))

	got, err := Get(context.Background(), db, KeyGeoRedirectEnabled)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "true" {
		t.Fatalf("got %q", got)
	}
}

func TestGetMissingKey(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM site_config")).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := Get(context.Background(), db, "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestAll(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `key`, value FROM site_config")).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
			AddRow(KeyGeoRedirectEnabled, "true").
			AddRow(KeyDefaultInternational, "en-us"))

	cfg, err := All(context.Background(), db)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if cfg[KeyGeoRedirectEnabled] != "true" || cfg[KeyDefaultInternational] != "en-us" {
		t.Fatalf("cfg = %v", cfg)
	}
}

func TestSetIsSingleUpsert(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO site_config (`key`, value) VALUES (?, ?) ON DUPLICATE KEY UPDATE value = VALUES(value)")).
		WithArgs(KeyGeoRedirectEnabled, "false").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := Set(context.Background(), db, KeyGeoRedirectEnabled, "false"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
