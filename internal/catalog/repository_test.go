package catalog

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

var pageCols = []string{"id", "slug", "title", "is_active", "created_at"}
var productCols = []string{"id", "page_id", "slug", "title", "is_active", "created_at"}

func TestActivePagesReadsView(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM   active_pages")).
		WillReturnRows(sqlmock.NewRows(pageCols).
			AddRow("p1", "pt-br", "PhotoID Brasil", true, now).
			AddRow("p2", "en-us", "PhotoID", true, now))

	pages, err := ActivePages(context.Background(), db)
	if err != nil {
		t.Fatalf("ActivePages: %v", err)
	}
	if len(pages) != 2 || pages[0].Slug != "pt-br" {
		t.Fatalf("pages = %+v", pages)
	}
}

func TestPageBySlugNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM   pages")).
		WithArgs("xx-yy").
		WillReturnRows(sqlmock.NewRows(pageCols))

	_, err := PageBySlug(context.Background(), db, "xx-yy")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCreatePageGeneratesID(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO pages")).
		WithArgs(sqlmock.AnyArg(), "en-gb", "PhotoID UK").
		WillReturnResult(sqlmock.NewResult(0, 1))

	page, err := CreatePage(context.Background(), db, "en-gb", "PhotoID UK")
	if err != nil {
		t.Fatalf("CreatePage: %v", err)
	}
	if page.ID == "" {
		t.Fatal("page ID not generated")
	}
	if !page.IsActive {
		t.Fatal("new pages should start active")
	}
}

func TestProductBySlugResolvesPageFirst(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM pages WHERE slug = ?")).
		WithArgs("pt-br").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("p1"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM   products")).
		WithArgs("p1", "foto-rg").
		WillReturnRows(sqlmock.NewRows(productCols).
			AddRow("pr1", "p1", "foto-rg", "Foto RG", true, now))

	product, err := ProductBySlug(context.Background(), db, "pt-br", "foto-rg")
	if err != nil {
		t.Fatalf("ProductBySlug: %v", err)
	}
	if product.ID != "pr1" || product.PageID != "p1" {
		t.Fatalf("product = %+v", product)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestProductBySlugUnknownPage(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM pages WHERE slug = ?")).
		WithArgs("xx-yy").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := ProductBySlug(context.Background(), db, "xx-yy", "foto-rg")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSetPageActive(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE pages SET is_active = ?")).
		WithArgs(false, "p1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := SetPageActive(context.Background(), db, "p1", false); err != nil {
		t.Fatalf("SetPageActive: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
