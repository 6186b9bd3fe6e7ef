package content

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
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

var customizationCols = []string{
	"id", "entity_id", "entity_type", "component", "element_type",
	"element_id", "original_value", "custom_value", "created_at", "updated_at",
}

const selectByEntity = `
		SELECT id, entity_id, entity_type, component, element_type,
		       element_id, original_value, custom_value,
		       created_at, updated_at
		  FROM content_customizations
		 WHERE entity_id = ? AND entity_type = ?
		 ORDER BY created_at`

func TestResolvePageNoOverridesReturnsDefaults(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewResolver(db, time.Minute, zap.NewNop().Sugar())

	mock.ExpectQuery(regexp.QuoteMeta(selectByEntity)).
		WithArgs("page-1", "page").
		WillReturnRows(sqlmock.NewRows(customizationCols))

	got, err := r.ResolvePage(context.Background(), "page-1", "pt-br")
	if err != nil {
		t.Fatalf("ResolvePage: %v", err)
	}

	want := DefaultPageContent()
	if got.Get("HeroSection", "mainTitle") != want.Get("HeroSection", "mainTitle") {
		t.Fatal("defaults not returned verbatim")
	}
	if len(got) != len(want) {
		t.Fatalf("component count %d, want %d", len(got), len(want))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestResolvePageOverlaysStoredValues(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewResolver(db, time.Minute, zap.NewNop().Sugar())

	now := time.Now()
	rows := sqlmock.NewRows(customizationCols).
		AddRow("c1", "page-1", "page", "HeroSection", "text",
			"mainTitle", "Fotos de Documentos Profissionais", "Custom Title", now, now).
		AddRow("c2", "page-1", "page", "ExtraSection", "text",
			"note", "", "added later", now, now)

	mock.ExpectQuery(regexp.QuoteMeta(selectByEntity)).
		WithArgs("page-1", "page").
		WillReturnRows(rows)

	got, err := r.ResolvePage(context.Background(), "page-1", "pt-br")
	if err != nil {
		t.Fatalf("ResolvePage: %v", err)
	}

	if v := got.Get("HeroSection", "mainTitle"); v != "Custom Title" {
		t.Fatalf("override not applied, got %q", v)
	}
	// Untouched elements keep their defaults.
	if v := got.Get("HeroSection", "ctaButton"); v != "Comece Agora" {
		t.Fatalf("sibling default lost, got %q", v)
	}
	// Rows outside the schema still land in the merged map.
	if v := got.Get("ExtraSection", "note"); v != "added later" {
		t.Fatalf("unknown component dropped, got %q", v)
	}
}

func TestResolvePageSecondCallServedFromCache(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewResolver(db, time.Minute, zap.NewNop().Sugar())

	mock.ExpectQuery(regexp.QuoteMeta(selectByEntity)).
		WithArgs("page-1", "page").
		WillReturnRows(sqlmock.NewRows(customizationCols))

	ctx := context.Background()
	if _, err := r.ResolvePage(ctx, "page-1", "pt-br"); err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	if _, err := r.ResolvePage(ctx, "page-1", "pt-br"); err != nil {
		t.Fatalf("second resolve: %v", err)
	}

	// A second query would fail ExpectationsWereMet.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestResolvePageCallersCannotMutateCache(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewResolver(db, time.Minute, zap.NewNop().Sugar())

	mock.ExpectQuery(regexp.QuoteMeta(selectByEntity)).
		WithArgs("page-1", "page").
		WillReturnRows(sqlmock.NewRows(customizationCols))

	ctx := context.Background()
	first, _ := r.ResolvePage(ctx, "page-1", "pt-br")
	first["HeroSection"]["mainTitle"] = "tampered"

	second, _ := r.ResolvePage(ctx, "page-1", "pt-br")
	if second.Get("HeroSection", "mainTitle") == "tampered" {
		t.Fatal("cached map leaked to caller")
	}
}

func TestResolveProductStoreErrorFallsBackToDefaults(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewResolver(db, time.Minute, zap.NewNop().Sugar())

	mock.ExpectQuery(regexp.QuoteMeta(selectByEntity)).
		WithArgs("prod-1", "product").
		WillReturnError(errors.New("conn refused"))

	got, err := r.ResolveProduct(context.Background(), "prod-1", "pt-br", "foto-passaporte")
	if err == nil {
		t.Fatal("expected error to surface")
	}
	if got == nil {
		t.Fatal("expected defaults alongside the error")
	}
	if got.Get("HeroSection", "mainTitle") != "Foto para Passaporte" {
		t.Fatal("fallback is not the product default registry")
	}
}

func TestProductAndPageCacheKeysAreDistinct(t *testing.T) {
	if pageKey("pt-br") == productKey("pt-br", "pt-br") {
		t.Fatal("key spaces collide")
	}
	if productKey("pt-br", "foto-rg") == productKey("en-us", "foto-rg") {
		t.Fatal("locale must be part of the product key")
	}
}
