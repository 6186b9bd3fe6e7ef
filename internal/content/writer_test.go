package content

import (
	"context"
	"database/sql/driver"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"go.uber.org/zap"
)

func TestSaveComponentUpsertsChangedElement(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewResolver(db, time.Minute, zap.NewNop().Sugar())
	w := NewWriter(db, r)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO content_customizations")).
		WithArgs(sqlmock.AnyArg(), "page-1", "page", "HeroSection", "text",
			"mainTitle", "Fotos de Documentos Profissionais", "New Title").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	n, err := w.SaveComponent(context.Background(), "page-1", EntityPage,
		"HeroSection", []Change{{ElementID: "mainTitle", Value: "New Title"}})
	if err != nil {
		t.Fatalf("SaveComponent: %v", err)
	}
	if n != 1 {
		t.Fatalf("applied %d changes, want 1", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSaveComponentDefaultValueDeletesOverride(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewResolver(db, time.Minute, zap.NewNop().Sugar())
	w := NewWriter(db, r)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM content_customizations")).
		WithArgs("page-1", "page", "HeroSection", "mainTitle").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	def, _ := DefaultValue(EntityPage, "HeroSection", "mainTitle")
	_, err := w.SaveComponent(context.Background(), "page-1", EntityPage,
		"HeroSection", []Change{{ElementID: "mainTitle", Value: def}})
	if err != nil {
		t.Fatalf("SaveComponent: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSaveComponentBatchRunsInOneTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewResolver(db, time.Minute, zap.NewNop().Sugar())
	w := NewWriter(db, r)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO content_customizations")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO content_customizations")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	n, err := w.SaveComponent(context.Background(), "page-1", EntityPage,
		"Header", []Change{
			{ElementID: "ctaButtonText", Value: "Start"},
			{ElementID: "ctaButtonLink", Value: "/go"},
		})
	if err != nil {
		t.Fatalf("SaveComponent: %v", err)
	}
	if n != 2 {
		t.Fatalf("applied %d changes, want 2", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSaveComponentSanitizesHTMLElements(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewResolver(db, time.Minute, zap.NewNop().Sugar())
	w := NewWriter(db, r)

	var stored string
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO content_customizations")).
		WithArgs(sqlmock.AnyArg(), "prod-1", "product", "PassportGuide", "html",
			"html_content", sqlmock.AnyArg(), valueRecorder{&stored}).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err := w.SaveComponent(context.Background(), "prod-1", EntityProduct,
		"PassportGuide", []Change{{
			ElementID: "html_content",
			Value:     `<p class="lead">ok</p><script>alert(1)</script>`,
		}})
	if err != nil {
		t.Fatalf("SaveComponent: %v", err)
	}
	if strings.Contains(stored, "<script") {
		t.Fatalf("script tag survived sanitization: %q", stored)
	}
	if !strings.Contains(stored, `<p class="lead">ok</p>`) {
		t.Fatalf("benign markup stripped: %q", stored)
	}
}

func TestSaveComponentInvalidatesCache(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewResolver(db, time.Minute, zap.NewNop().Sugar())
	w := NewWriter(db, r)

	r.Cache().Set(pageKey("pt-br"), Map{})

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO content_customizations")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err := w.SaveComponent(context.Background(), "page-1", EntityPage,
		"Header", []Change{{ElementID: "ctaButtonText", Value: "Go"}})
	if err != nil {
		t.Fatalf("SaveComponent: %v", err)
	}
	if r.Cache().Len() != 0 {
		t.Fatal("save did not invalidate the cache")
	}
}

// valueRecorder captures the matched argument for later assertions.
type valueRecorder struct{ dst *string }

func (v valueRecorder) Match(x driver.Value) bool {
	if s, ok := x.(string); ok {
		*v.dst = s
	}
	return true
}
