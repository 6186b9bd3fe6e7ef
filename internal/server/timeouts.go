// internal/server/timeouts.go
//
// Hardened *http.Server constructor.
//
// Every PhotoID response is either a small server-rendered page or an
// admin JSON body, so the limits can be tight:
//
//   • ReadTimeout   – abort slow-loris headers (10 s)
//   • WriteTimeout  – a render plus one content resolution fits easily (15 s)
//   • IdleTimeout   – close keep-alives on idle clients (60 s)
//
// cmd/web wraps the handler (ForceHTTPS and the middleware chain) before
// passing it here; this file owns only the server tunables.

package server

import (
	"net/http"
	"time"
)

// New constructs an *http.Server with the timeout defaults above.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
