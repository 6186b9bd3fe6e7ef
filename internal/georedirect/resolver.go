// internal/georedirect/resolver.go
//
// Root-path redirect decision.
//
// A request to "/" carries at most a resolved visitor country; Destination
// turns that into a landing page slug.  Branches, in order:
//
//   1. redirects disabled (or the flag unreadable)  -> home slug
//   2. no country resolved                          -> home slug
//   3. explicit rule for the country                -> rule's page slug
//   4. country is the home country                  -> home slug
//   5. anything else                                -> international default
//
// Branch 5 prefers the default_international_page site setting and falls
// back to the configured international slug when the setting is absent.
// Every decision increments the branch-labelled counter.
package georedirect

import (
	"context"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/photoid-app/photoid/internal/metrics"
	"github.com/photoid-app/photoid/internal/siteconfig"
)

// Resolver decides the landing page for untargeted root requests.
type Resolver struct {
	db            *sqlx.DB
	home          string
	homeCountry   string
	international string
	log           *zap.SugaredLogger
}

// NewResolver builds a resolver from the redirect configuration.
func NewResolver(db *sqlx.DB, homeSlug, homeCountry, internationalSlug string, log *zap.SugaredLogger) *Resolver {
	if log == nil {
		log = zap.S()
	}
	return &Resolver{
		db:            db,
		home:          homeSlug,
		homeCountry:   strings.ToUpper(homeCountry),
		international: internationalSlug,
		log:           log,
	}
}

// Destination returns the landing page slug for a visitor country.  country
// may be empty when geo lookup failed or is off.  Destination never fails:
// storage problems degrade to the home slug.
func (r *Resolver) Destination(ctx context.Context, country string) string {
	enabled, err := siteconfig.Get(ctx, r.db, siteconfig.KeyGeoRedirectEnabled)
	if err != nil && !errors.Is(err, siteconfig.ErrNotFound) {
		r.log.Errorw("geo redirect flag unreadable", "err", err)
		metrics.RedirectDecisions.WithLabelValues("disabled").Inc()
		return r.home
	}
	if enabled != "true" {
		metrics.RedirectDecisions.WithLabelValues("disabled").Inc()
		return r.home
	}

	country = strings.ToUpper(strings.TrimSpace(country))
	if country == "" {
		metrics.RedirectDecisions.WithLabelValues("no_country").Inc()
		return r.home
	}

	rule, err := ForCountry(ctx, r.db, country)
	switch {
	case err == nil:
		metrics.RedirectDecisions.WithLabelValues("country_rule").Inc()
		return rule.PageSlug
	case !errors.Is(err, ErrNotFound):
		r.log.Errorw("country rule lookup failed", "country", country, "err", err)
		metrics.RedirectDecisions.WithLabelValues("disabled").Inc()
		return r.home
	}

	if country == r.homeCountry {
		metrics.RedirectDecisions.WithLabelValues("home_country").Inc()
		return r.home
	}

	metrics.RedirectDecisions.WithLabelValues("international").Inc()
	if slug, err := siteconfig.Get(ctx, r.db, siteconfig.KeyDefaultInternational); err == nil && slug != "" {
		return slug
	}
	return r.international
}
