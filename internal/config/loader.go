// internal/config/loader.go
//
// Configuration loader and hot-reloader.
//
/*
Context
--------
`Load()` builds one immutable `Config` struct from three layers (highest
precedence last):

  1. Optional `.env` file — `<root>/conf/.env`.
  2. `conf/global.yaml`.
  3. Environment variables prefixed `PHOTOID_`, where `__` maps to “.”
     (e.g., `PHOTOID_HTTP__LISTEN_ADDR → http.listen_addr`).

After merging, the tree is unmarshalled into strongly-typed structs,
defaulted, passed through the Vault secret resolver, validated, enriched
with the runtime root path, and cached in an `atomic.Pointer` for
lock-free reads.  `Reload()` simply calls `Load()` again and swaps the
pointer.

Instrumentation
---------------
  • DEBUG spans — root discovery, YAML read, env overlay.
  • ERROR spans — YAML parse, env overlay, unmarshal, validation failures.
  • INFO  span  — final “config loaded” with key highlights.
  • Logs use the global *sugared* logger (`zap.S()`) so early boot issues
    surface even before the file logger is installed (bootstrap console).

Notes
-----
  • `rootDir()` climbs the cwd tree until it finds `conf/global.yaml`;
    this lets `go run ./cmd/web` work from any sub-directory.
  • Oxford commas, two spaces after periods.
*/
package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

var current atomic.Pointer[Config]

/*──────────────────────────── root discovery ───────────────────────────────*/

// rootDir resolves PHOTOID_ROOT or climbs directories until conf/global.yaml
// is found.  Falls back to executable heuristic for production layout.
func rootDir() string {
	if r := os.Getenv("PHOTOID_ROOT"); r != "" {
		return r
	}

	wd, _ := os.Getwd()
	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, "conf", "global.yaml")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached filesystem root
			break
		}
		dir = parent
	}

	exe, _ := os.Executable()
	if filepath.Base(filepath.Dir(exe)) == "bin" {
		return filepath.Dir(filepath.Dir(exe))
	}
	return wd
}

/*─────────────────────────────── loader ───────────────────────────────────*/

// Load reads .env, YAML, env overrides, resolves secrets, validates, and
// caches Config.
func Load(ctx context.Context) (*Config, error) {
	root := rootDir()
	zap.S().Debugw("config root resolved", "root", root)

	// .env (optional, no error if missing)
	_ = godotenv.Load(filepath.Join(root, "conf", ".env"))

	k := koanf.New(".")

	yamlPath := filepath.Join(root, "conf", "global.yaml")
	if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
		zap.S().Errorw("config yaml load failed", "file", yamlPath, "err", err)
		return nil, err
	}
	zap.S().Debugw("config yaml loaded", "file", yamlPath)

	// Env overrides: PHOTOID_HTTP__LISTEN_ADDR → http.listen_addr
	if err := k.Load(env.Provider("PHOTOID_", ".", func(s string) string {
		return strings.ToLower(strings.ReplaceAll(s, "__", "."))
	}), nil); err != nil {
		zap.S().Errorw("config env overlay failed", "err", err)
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		zap.S().Errorw("config unmarshal failed", "err", err)
		return nil, err
	}

	applyDefaults(&cfg)

	if err := resolveSecrets(ctx, &cfg); err != nil {
		zap.S().Errorw("config secret resolution failed", "err", err)
		return nil, err
	}

	cfg.Paths.Root = root
	if err := validateStruct(&cfg); err != nil {
		zap.S().Errorw("config validation failed", "err", err)
		return nil, err
	}

	current.Store(&cfg)
	zap.S().Infow("config loaded",
		"listen_addr", cfg.HTTP.ListenAddr,
		"force_https", cfg.HTTP.ForceHTTPS,
		"geo_provider", cfg.Geo.Provider,
		"root", cfg.Paths.Root,
	)
	return &cfg, nil
}

/*──────────────────────────── defaults ────────────────────────────────────*/

// applyDefaults fills fields the YAML may omit.  The redirect block carries
// the product decision that used to live as magic strings in the original
// site: pt-br is home, BR is the home country, en-us catches the rest.
func applyDefaults(cfg *Config) {
	if cfg.HTTP.ListenAddr == "" {
		cfg.HTTP.ListenAddr = ":8080"
	}
	if cfg.Geo.Provider == "" {
		cfg.Geo.Provider = "off"
	}
	if cfg.Geo.IPInfoURL == "" {
		cfg.Geo.IPInfoURL = "https://ipinfo.io"
	}
	if cfg.Geo.TimeoutMS == 0 {
		cfg.Geo.TimeoutMS = 5000
	}
	if cfg.Content.CacheTTLMin == 0 {
		cfg.Content.CacheTTLMin = 5
	}
	if cfg.Redirect.HomeSlug == "" {
		cfg.Redirect.HomeSlug = "pt-br"
	}
	if cfg.Redirect.HomeCountry == "" {
		cfg.Redirect.HomeCountry = "BR"
	}
	if cfg.Redirect.InternationalSlug == "" {
		cfg.Redirect.InternationalSlug = "en-us"
	}
	if cfg.Theme.Name == "" {
		cfg.Theme.Name = "default"
	}
	if cfg.Theme.Dir == "" {
		cfg.Theme.Dir = "themes"
	}
}

/*──────────────────────────── helpers ─────────────────────────────────────*/

func Get() *Config { return current.Load() }

func Reload(ctx context.Context) error { _, err := Load(ctx); return err }
