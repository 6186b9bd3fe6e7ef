package catalog

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestRouteExistsHomeLocaleSkipsStore(t *testing.T) {
	db, mock := newMockDB(t)

	got, err := RouteExists(context.Background(), db, HomeLocale, "")
	if err != nil {
		t.Fatalf("RouteExists: %v", err)
	}
	if !got.PageExists || got.ProductExists {
		t.Fatalf("got %+v", got)
	}

	got, err = RouteExists(context.Background(), db, HomeLocale, HomeProduct)
	if err != nil {
		t.Fatalf("RouteExists: %v", err)
	}
	if !got.PageExists || !got.ProductExists {
		t.Fatalf("got %+v", got)
	}

	// No queries may have run for the special-cased routes.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestRouteExistsUnknownLocale(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM pages")).
		WithArgs("xx-yy").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := RouteExists(context.Background(), db, "xx-yy", "")
	if err != nil {
		t.Fatalf("RouteExists: %v", err)
	}
	if got.PageExists {
		t.Fatal("missing locale reported as existing")
	}
}

func TestRouteExistsPageWithoutProduct(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM pages")).
		WithArgs("en-us").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("p2"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM products")).
		WithArgs("p2", "foto-inexistente").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := RouteExists(context.Background(), db, "en-us", "foto-inexistente")
	if err != nil {
		t.Fatalf("RouteExists: %v", err)
	}
	if !got.PageExists || got.ProductExists {
		t.Fatalf("got %+v", got)
	}
}

func TestRouteExistsBothActive(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM pages")).
		WithArgs("en-us").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("p2"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM products")).
		WithArgs("p2", "passport-photo").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("pr9"))

	got, err := RouteExists(context.Background(), db, "en-us", "passport-photo")
	if err != nil {
		t.Fatalf("RouteExists: %v", err)
	}
	if !got.PageExists || !got.ProductExists {
		t.Fatalf("got %+v", got)
	}
}

func TestRouteExistsStoreError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM pages")).
		WithArgs("en-us").
		WillReturnError(errors.New("conn refused"))

	got, err := RouteExists(context.Background(), db, "en-us", "")
	if err == nil {
		t.Fatal("expected store error to surface")
	}
	if got.PageExists {
		t.Fatal("existence claimed despite error")
	}
}
