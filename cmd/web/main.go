// cmd/web/main.go
//
// PhotoID – HTTP entry point.
//
// Startup
// -------
//
//  1. Start the daily rotating logger (tees to console when running in a
//     TTY).
//
//  2. Load the layered configuration (conf/global.yaml, PHOTOID_* env,
//     Vault-backed secrets).
//
//  3. Open the MySQL pool and log the active-page count as an early
//     sanity check.
//
//  4. Build the geo locator, content resolver and writer, redirect
//     resolver, and view engine.
//
//  5. Register components (admin API, public site), mount them on the
//     chi router behind the middleware chain, and expose /metrics.
//
//  6. Serve, optionally behind the ForceHTTPS wrapper, until SIGINT or
//     SIGTERM, then drain connections.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/photoid-app/photoid/components/admin"
	"github.com/photoid-app/photoid/components/site"
	"github.com/photoid-app/photoid/internal/component"
	"github.com/photoid-app/photoid/internal/config"
	"github.com/photoid-app/photoid/internal/content"
	"github.com/photoid-app/photoid/internal/database"
	"github.com/photoid-app/photoid/internal/geo"
	"github.com/photoid-app/photoid/internal/georedirect"
	"github.com/photoid-app/photoid/internal/logger"
	"github.com/photoid-app/photoid/internal/middleware"
	"github.com/photoid-app/photoid/internal/requestinfo"
	"github.com/photoid-app/photoid/internal/server"
	"github.com/photoid-app/photoid/internal/view"
)

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func main() {
	rootDir, _ := os.Getwd()
	sugar, err := logger.New(rootDir, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}
	defer sugar.Sync()

	//
	// ── 1.  Configuration ───────────────────────────────────────────────
	//
	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		sugar.Fatalf("load config: %v", err)
	}

	//
	// ── 2.  Database ────────────────────────────────────────────────────
	//
	sugar.Info("connecting to DB …")
	db, err := database.Open(cfg.Database.ResolvedDSN())
	if err != nil {
		sugar.Fatalf("connect DB: %v", err)
	}
	defer db.Close()
	sugar.Info("DB online")

	var activePages int
	_ = db.Get(&activePages, `SELECT COUNT(*) FROM active_pages`)
	sugar.Infof("%d active landing page(s) found", activePages)

	//
	// ── 3.  Domain wiring ───────────────────────────────────────────────
	//
	locator, err := geo.NewFromConfig(cfg.Geo)
	if err != nil {
		sugar.Fatalf("geo locator: %v", err)
	}

	ttl := time.Duration(cfg.Content.CacheTTLMin) * time.Minute
	resolver := content.NewResolver(db, ttl, sugar)
	writer := content.NewWriter(db, resolver)

	redirects := georedirect.NewResolver(db,
		cfg.Redirect.HomeSlug, cfg.Redirect.HomeCountry,
		cfg.Redirect.InternationalSlug, sugar)

	themeDir := filepath.Join(cfg.Paths.Root, cfg.Theme.Dir, cfg.Theme.Name)
	views := view.New(themeDir, false)

	//
	// ── 4.  Components and router ───────────────────────────────────────
	//
	component.Register(admin.New(db, writer, sugar))
	component.Register(site.New(db, resolver, redirects, locator, views, sugar))

	r := chi.NewRouter()
	r.Use(middleware.LegacyRedirects)
	r.Use(middleware.Security)
	r.Use(requestinfo.Enrich)
	r.Handle("/metrics", promhttp.Handler())
	for _, c := range component.All() {
		r.Mount(c.Prefix(), c.Routes())
	}

	var handler http.Handler = r
	if cfg.HTTP.ForceHTTPS {
		handler = middleware.ForceHTTPS(handler)
	}

	//
	// ── 5.  Serve until signalled ───────────────────────────────────────
	//
	srv := server.New(cfg.HTTP.ListenAddr, handler)

	errCh := make(chan error, 1)
	go func() {
		sugar.Infof("listening on %s", cfg.HTTP.ListenAddr)
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			sugar.Fatalf("serve: %v", err)
		}
	case sig := <-stop:
		sugar.Infof("received %s, draining", sig)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorf("shutdown: %v", err)
		}
	}
}
