// internal/geo/ipinfo.go
//
// HTTP country lookup against an ipinfo.io-compatible endpoint.
//
// The service answers GET <base>/<ip>?token=... with a JSON document whose
// "country" field is the ISO code.  Lookups share one pooled http.Client
// with a hard timeout so a slow provider cannot stall the redirect path.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/photoid-app/photoid/internal/config"
	"github.com/photoid-app/photoid/internal/metrics"
)

type ipInfoLocator struct {
	base   string
	token  string
	client *http.Client
}

func newIPInfo(cfg config.Geo) *ipInfoLocator {
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ipInfoLocator{
		base:   strings.TrimSuffix(cfg.IPInfoURL, "/"),
		token:  cfg.IPInfoToken,
		client: &http.Client{Timeout: timeout},
	}
}

func (l *ipInfoLocator) Country(ctx context.Context, ip net.IP) (string, error) {
	if ip == nil || ip.IsLoopback() || ip.IsPrivate() {
		return "", nil
	}

	endpoint := l.base + "/" + ip.String()
	if l.token != "" {
		endpoint += "?token=" + url.QueryEscape(l.token)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		metrics.GeoLookupErrors.Inc()
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.GeoLookupErrors.Inc()
		return "", fmt.Errorf("geo: ipinfo returned %s", resp.Status)
	}

	var body struct {
		Country string `json:"country"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		metrics.GeoLookupErrors.Inc()
		return "", fmt.Errorf("geo: decode ipinfo response: %w", err)
	}
	return strings.ToUpper(body.Country), nil
}
