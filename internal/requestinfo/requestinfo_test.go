package requestinfo

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avct/uasurfer"
)

const chromeMacUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

func TestEnrichAttachesRequestInfo(t *testing.T) {
	var got *RequestInfo
	h := Enrich(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/pt-br", nil)
	req.Header.Set("User-Agent", chromeMacUA)
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9,en;q=0.8")
	req.RemoteAddr = "203.0.113.7:55123"
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got == nil {
		t.Fatal("RequestInfo missing from context")
	}
	if got.UA.Browser != "Chrome" {
		t.Errorf("browser = %q, want Chrome", got.UA.Browser)
	}
	if got.UA.PrimaryLang != "pt-br" {
		t.Errorf("lang = %q, want pt-br", got.UA.PrimaryLang)
	}
	if got.Geo.IP.String() != "203.0.113.7" {
		t.Errorf("ip = %v, want 203.0.113.7", got.Geo.IP)
	}
	if got.URL.Path != "/pt-br" {
		t.Errorf("path = %q", got.URL.Path)
	}
}

func TestFromContextWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if FromContext(req.Context()) != nil {
		t.Fatal("expected nil without Enrich")
	}
}

func TestClientIPPrecedence(t *testing.T) {
	cases := []struct {
		name   string
		hdr    map[string]string
		remote string
		want   string
	}{
		{"xff first", map[string]string{"X-Forwarded-For": "198.51.100.9, 10.0.0.1"}, "10.0.0.2:80", "198.51.100.9"},
		{"xff skips garbage", map[string]string{"X-Forwarded-For": "not-an-ip, 198.51.100.9"}, "10.0.0.2:80", "198.51.100.9"},
		{"x-real-ip", map[string]string{"X-Real-Ip": "198.51.100.10"}, "10.0.0.2:80", "198.51.100.10"},
		{"remote addr", nil, "203.0.113.4:1234", "203.0.113.4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remote
			for k, v := range tc.hdr {
				req.Header.Set(k, v)
			}
			if got := ClientIP(req); got == nil || got.String() != tc.want {
				t.Fatalf("got %v, want %s", got, tc.want)
			}
		})
	}
}

func TestTrimVersion(t *testing.T) {
	cases := []struct {
		in   uasurfer.Version
		want string
	}{
		{uasurfer.Version{Major: 124}, "124"},
		{uasurfer.Version{Major: 14, Minor: 5}, "14.5"},
		{uasurfer.Version{Major: 1, Minor: 2, Patch: 3}, "1.2.3"},
		{uasurfer.Version{}, "0"},
	}
	for _, tc := range cases {
		if got := trimVersion(tc.in); got != tc.want {
			t.Errorf("trimVersion(%+v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
