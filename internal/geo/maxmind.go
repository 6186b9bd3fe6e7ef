// internal/geo/maxmind.go
//
// Local MaxMind GeoLite2 country lookup.  No network round trip per
// request; the .mmdb file is mapped once at startup.
package geo

import (
	"context"
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"

	"github.com/photoid-app/photoid/internal/metrics"
)

type maxMindLocator struct {
	reader *geoip2.Reader
}

func newMaxMind(path string) (*maxMindLocator, error) {
	if path == "" {
		return nil, fmt.Errorf("geo: maxmind provider requires mmdb_path")
	}
	r, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geo: open %s: %w", path, err)
	}
	return &maxMindLocator{reader: r}, nil
}

func (l *maxMindLocator) Country(_ context.Context, ip net.IP) (string, error) {
	if ip == nil || ip.IsLoopback() || ip.IsPrivate() {
		return "", nil
	}
	rec, err := l.reader.Country(ip)
	if err != nil {
		metrics.GeoLookupErrors.Inc()
		return "", err
	}
	return rec.Country.IsoCode, nil
}

// Close releases the mapped database.
func (l *maxMindLocator) Close() error { return l.reader.Close() }
