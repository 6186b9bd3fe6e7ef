package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLegacyRedirects(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := LegacyRedirects(next)

	cases := []struct {
		path string
		want string
	}{
		{"/foto-passaporte", "/pt-br/foto-passaporte"},
		{"/foto-rg", "/pt-br/foto-rg"},
		{"/foto-passaporte-bebe", "/pt-br/foto-passaporte-bebe"},
		{"/foto-cnh", "/pt-br/foto-cnh"},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

		if rec.Code != http.StatusPermanentRedirect {
			t.Fatalf("%s: status %d, want 308", tc.path, rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != tc.want {
			t.Fatalf("%s: Location %q, want %q", tc.path, loc, tc.want)
		}
	}
}

func TestLegacyRedirectsPreservesQuery(t *testing.T) {
	h := LegacyRedirects(http.NotFoundHandler())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/foto-rg?utm_source=ad", nil))

	if loc := rec.Header().Get("Location"); loc != "/pt-br/foto-rg?utm_source=ad" {
		t.Fatalf("Location %q", loc)
	}
}

func TestLegacyRedirectsPassThrough(t *testing.T) {
	called := false
	h := LegacyRedirects(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/pt-br", nil))

	if !called {
		t.Fatal("non-legacy path did not reach next handler")
	}
}

func TestSecurityHeadersSetOnce(t *testing.T) {
	h := Security(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-Frame-Options", "SAMEORIGIN")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rec.Header().Get("X-Frame-Options"); got != "SAMEORIGIN" {
		t.Fatalf("handler value overwritten: %q", got)
	}
	if rec.Header().Get("Content-Security-Policy") == "" {
		t.Fatal("CSP header missing")
	}
}

func TestForceHTTPSRedirectsPlainHTTP(t *testing.T) {
	h := ForceHTTPS(http.NotFoundHandler())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "http://photoid.example/pt-br?x=1", nil)
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusPermanentRedirect {
		t.Fatalf("status %d, want 308", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "https://photoid.example/pt-br?x=1" {
		t.Fatalf("Location %q", loc)
	}
}

func TestForceHTTPSSkipsLocalhostAndProxiedTLS(t *testing.T) {
	called := 0
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called++ })
	h := ForceHTTPS(next)

	req := httptest.NewRequest(http.MethodGet, "http://localhost:8080/", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodGet, "http://photoid.example/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if called != 2 {
		t.Fatalf("next called %d times, want 2", called)
	}
}
