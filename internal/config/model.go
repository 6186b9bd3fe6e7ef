// internal/config/model.go
//
// Typed configuration model for PhotoID.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `conf/.env`                      – dotenv values,
//   • `conf/global.yaml`                        – primary static file,
//   • `PHOTOID_`-prefixed environment overrides – highest precedence.
//
// Any value whose string begins with the prefix `vault:` is resolved
// through the Vault client *after* unmarshalling, so downstream code never
// sees Vault URIs—only plain strings.
//
// Validation happens immediately after the secret pass; the app fails fast
// if required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`—Koanf ignores `yaml` tags
//     unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.
//   • Oxford commas, two spaces after periods.  No em-dash.

package config

import (
	"fmt"
	"strings"
)

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
	ForceHTTPS bool   `koanf:"force_https"`
}

//
// Database section
//

// Database holds the DSN template and its secret.
//
// The *template* (`DSN`) is kept in YAML so operators can tweak host, port,
// or flags without touching Vault.  When the template contains a `%s` verb
// the *secret* portion (`Password`) is substituted at runtime, keeping
// credentials out of flat files and git history.
type Database struct {
	DSN      string `koanf:"dsn"      validate:"required"`
	Password string `koanf:"password"`
}

// ResolvedDSN substitutes the password into the DSN template when the
// template carries a %s verb; otherwise the template is used verbatim.
func (d Database) ResolvedDSN() string {
	if strings.Contains(d.DSN, "%s") {
		return fmt.Sprintf(d.DSN, d.Password)
	}
	return d.DSN
}

//
// Geo section
//

// Geo selects and parameterises the IP geolocation backend.
//
//   - provider "ipinfo"  – remote JSON lookup with a service token.
//   - provider "maxmind" – local GeoLite2 database file.
//   - provider "off"     – no lookups; every visitor hits the home branch.
type Geo struct {
	Provider    string `koanf:"provider"     validate:"required,oneof=ipinfo maxmind off"`
	IPInfoURL   string `koanf:"ipinfo_url"   validate:"omitempty,url"`
	IPInfoToken string `koanf:"ipinfo_token"`
	MMDBPath    string `koanf:"mmdb_path"`
	TimeoutMS   int    `koanf:"timeout_ms"   validate:"gte=0"`
}

//
// Content section
//

// Content tunes the resolved-content cache.
type Content struct {
	CacheTTLMin int `koanf:"cache_ttl_min" validate:"gte=0"`
}

//
// Redirect section
//

// Redirect names the fallback slugs of the geo-redirect decision so the
// precedence rule (per-country row > default_international_page key >
// these values) is configuration rather than literals in code.
type Redirect struct {
	HomeSlug          string `koanf:"home_slug"          validate:"required"`
	HomeCountry       string `koanf:"home_country"       validate:"required,len=2"`
	InternationalSlug string `koanf:"international_slug" validate:"required"`
}

//
// Theme section
//

// Theme points the view engine at a template directory.
type Theme struct {
	Name string `koanf:"name" validate:"required"`
	Dir  string `koanf:"dir"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime—never set in YAML or env.  The loader
// discovers `Root` (repo root or PHOTOID_ROOT override) so later code can
// build absolute file paths.
type Paths struct {
	Root string // PHOTOID_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP     HTTP     `koanf:"http"`
	Database Database `koanf:"database"`
	Geo      Geo      `koanf:"geo"`
	Content  Content  `koanf:"content"`
	Redirect Redirect `koanf:"redirect"`
	Theme    Theme    `koanf:"theme"`
	Paths    Paths    `koanf:"-"` // not loaded from config files
}
