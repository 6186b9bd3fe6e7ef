// internal/middleware/legacy.go
//
// Legacy flat-route redirects.
//
// The site once served products at the root ("/foto-passaporte") before
// locales moved into the path.  Those URLs are still indexed and linked,
// so each one permanently redirects to its locale-prefixed successor.
// The table is fixed at compile time; new products are born under a
// locale and never need an entry.
package middleware

import "net/http"

var legacyRoutes = map[string]string{
	"/foto-passaporte":      "/pt-br/foto-passaporte",
	"/foto-rg":              "/pt-br/foto-rg",
	"/foto-passaporte-bebe": "/pt-br/foto-passaporte-bebe",
	"/foto-cnh":             "/pt-br/foto-cnh",
}

// LegacyRedirects issues 308s for pre-locale product URLs and forwards
// everything else untouched.
func LegacyRedirects(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if target, ok := legacyRoutes[r.URL.Path]; ok {
			if q := r.URL.RawQuery; q != "" {
				target += "?" + q
			}
			http.Redirect(w, r, target, http.StatusPermanentRedirect)
			return
		}
		next.ServeHTTP(w, r)
	})
}
