package geocode

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"postcode-distance/internal/domain"
	"postcode-distance/internal/platform/logger"
	"postcode-distance/internal/platform/metrics"
	"postcode-distance/internal/platform/obs"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "http://api.postcodes.io"
	DefaultTimeout = 10 * time.Second
)

// PostcodesIOResolver implements PostcodeResolver against the postcodes.io
// lookup API (GET {base}/postcodes/{postcode}).
//
// Exactly one request is made per call; there is no retry and no cache.
// The resolver is safe for concurrent use.
type PostcodesIOResolver struct {
	session *http.Client
	baseURL string
}

// NewPostcodesIOResolver builds a resolver for baseURL, or DefaultBaseURL when
// empty. A non-positive timeout falls back to DefaultTimeout so a lookup can
// never hang indefinitely.
func NewPostcodesIOResolver(baseURL string, timeout time.Duration) (*PostcodesIOResolver, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse postcodes.io base url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("postcodes.io base url %q must be http or https", baseURL)
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &PostcodesIOResolver{
		session: &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}, nil
}

// Resolve looks up postcode and reports whether coordinates were found.
// Every failure is logged at debug level and collapsed to ok == false.
func (p *PostcodesIOResolver) Resolve(ctx context.Context, postcode string) (domain.Coordinates, bool) {
	start := time.Now()
	key := domain.NormalizePostcode(postcode)

	coords, err := p.lookup(ctx, key)
	metrics.LookupDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.LookupsTotal.WithLabelValues("unresolved").Inc()
		log := logger.Get()
		log.Debug().
			Str("postcode", postcode).
			Str("key", key).
			Err(err).
			Msg("postcode lookup failed")
		return domain.Coordinates{}, false
	}

	metrics.LookupsTotal.WithLabelValues("resolved").Inc()
	return coords, true
}

func (p *PostcodesIOResolver) lookup(ctx context.Context, key string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "postcodes.lookup")(&err)

	if key == "" {
		return domain.Coordinates{}, errors.New("postcode must be non-empty")
	}

	endpoint := p.baseURL + "/postcodes/" + url.PathEscape(key)

	req, err := p.newRequest(ctx, http.MethodGet, endpoint)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("lookup %q: %w", key, err)
	}

	body, err := p.do(req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("lookup %q: %w", key, err)
	}

	coords, err := decodeLookup(body)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("lookup %q: %w", key, err)
	}

	return coords, nil
}
