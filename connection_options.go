package arangocorex

import (
	"crypto/tls"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

type ConnectionOptions struct {
	Logger *zap.Logger

	// Endpoint is a convenience for configurations with a single base
	// URL; it is folded into Endpoints during normalization.
	Endpoint  string
	Endpoints []string

	// DatabaseName selects the database every non-absolute request is
	// scoped to.  DisableDatabaseScoping drops the /_db prefix
	// entirely.
	DatabaseName           string
	DisableDatabaseScoping bool

	// ArangoVersion is the protocol version sent on every request and
	// used to derive the major server version.
	ArangoVersion int

	// Headers are merged into every request at the lowest precedence.
	Headers map[string]string

	MaxSockets        int
	DisableKeepAlives bool
	IdleTimeout       time.Duration
	ConnectTimeout    time.Duration
	TLSConfig         *tls.Config

	// Transport overrides the shared HTTP transport.  When set, the
	// pool capacity options above are not applied; the caller owns the
	// socket behavior.
	Transport http.RoundTripper
}

var DefaultConnectionOptions = ConnectionOptions{
	Endpoints:     []string{"http://localhost:8529"},
	DatabaseName:  "_system",
	ArangoVersion: 30400,
	MaxSockets:    3,
	IdleTimeout:   30 * time.Second,
}

// mergeConnectionOptions layers caller overrides on top of the
// defaults.  Unset fields fall back; booleans pass through so their
// zero value is the default behavior.
func mergeConnectionOptions(defaults ConnectionOptions, opts ConnectionOptions) ConnectionOptions {
	merged := opts

	if merged.Endpoint == "" && len(merged.Endpoints) == 0 {
		merged.Endpoints = defaults.Endpoints
	}
	if merged.DatabaseName == "" {
		merged.DatabaseName = defaults.DatabaseName
	}
	if merged.ArangoVersion == 0 {
		merged.ArangoVersion = defaults.ArangoVersion
	}
	if merged.MaxSockets == 0 {
		merged.MaxSockets = defaults.MaxSockets
	}
	if merged.IdleTimeout == 0 {
		merged.IdleTimeout = defaults.IdleTimeout
	}

	return merged
}

// normalizeEndpoints validates the configured base URLs and reduces
// them to a deduplicated list with no trailing slashes.  The merge
// step guarantees at least one endpoint is present.
func normalizeEndpoints(opts ConnectionOptions) ([]string, error) {
	configured := opts.Endpoints
	if opts.Endpoint != "" {
		configured = append([]string{opts.Endpoint}, configured...)
	}

	var endpoints []string
	for _, endpoint := range configured {
		parsed, err := url.Parse(endpoint)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse endpoint %q", endpoint)
		}

		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return nil, invalidArgumentError{
				Message: "unsupported endpoint scheme " + parsed.Scheme,
			}
		}

		normalized := strings.TrimRight(endpoint, "/")
		if !slices.Contains(endpoints, normalized) {
			endpoints = append(endpoints, normalized)
		}
	}

	return endpoints, nil
}
