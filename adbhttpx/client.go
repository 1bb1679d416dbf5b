package adbhttpx

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
)

// Client performs a single HTTP exchange against one configured
// endpoint.  Socket reuse, TLS and timeouts all belong to the
// underlying RoundTripper.
type Client struct {
	Endpoint  string
	Transport http.RoundTripper
}

func (c Client) GetHttpClient() *http.Client {
	return &http.Client{
		Transport: c.Transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			// All that we're doing here is setting auth on any redirects.
			// For that reason we can just pull it off the oldest (first) request.
			if len(via) >= 10 {
				// Just duplicate the default behaviour for maximum redirects.
				return errors.New("stopped after 10 redirects")
			}

			oldest := via[0]
			auth := oldest.Header.Get("Authorization")
			if auth != "" {
				req.Header.Set("Authorization", auth)
			}

			return nil
		},
	}
}

func (c Client) NewRequest(ctx context.Context, req *PreparedRequest) (*http.Request, error) {
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	uri := c.Endpoint + req.PathAndQuery
	hreq, err := http.NewRequestWithContext(ctx, req.Method, uri, body)
	if err != nil {
		return nil, err
	}

	hreq.Header = req.Headers.Clone()
	hreq.ContentLength = req.ContentLength

	return hreq, nil
}

// Do performs the exchange described by req.  Transport-level failures
// are surfaced as a ConnectError.
func (c Client) Do(ctx context.Context, req *PreparedRequest) (*http.Response, error) {
	hreq, err := c.NewRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.GetHttpClient().Do(hreq)
	if err != nil {
		return nil, ConnectError{Cause: err}
	}

	return resp, nil
}
