// internal/geo/locator.go
//
// Visitor country resolution.
//
// The root redirect only needs an ISO country code for the client IP.  Two
// providers are supported: an ipinfo-style HTTP service and a local MaxMind
// database.  "off" yields a locator that always reports no country, which
// the redirect resolver treats as its no-country branch.
package geo

import (
	"context"
	"fmt"
	"net"

	"github.com/photoid-app/photoid/internal/config"
)

// Locator resolves an IP to an upper-case ISO 3166-1 alpha-2 code.  An
// empty code with a nil error means the provider had no answer.
type Locator interface {
	Country(ctx context.Context, ip net.IP) (string, error)
}

// NewFromConfig builds the locator selected by the geo configuration.
func NewFromConfig(cfg config.Geo) (Locator, error) {
	switch cfg.Provider {
	case "ipinfo":
		return newIPInfo(cfg), nil
	case "maxmind":
		return newMaxMind(cfg.MMDBPath)
	case "off", "":
		return noopLocator{}, nil
	default:
		return nil, fmt.Errorf("geo: unknown provider %q", cfg.Provider)
	}
}

type noopLocator struct{}

func (noopLocator) Country(context.Context, net.IP) (string, error) { return "", nil }
