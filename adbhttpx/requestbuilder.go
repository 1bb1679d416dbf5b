package adbhttpx

import (
	"net/http"
	"strconv"
)

// RequestBuilder turns request descriptors into wire requests.  One
// builder exists per connection, carrying the connection-level pieces
// every request shares.
type RequestBuilder struct {
	DatabasePrefix string
	ArangoVersion  int
	DefaultHeaders map[string]string
}

func (b RequestBuilder) Prepare(req *Request) (*PreparedRequest, error) {
	uri, err := BuildRequestURI(req, b.DatabasePrefix)
	if err != nil {
		return nil, err
	}

	body, contentType, err := EncodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	headers := make(http.Header)
	for key, val := range req.Headers {
		headers.Set(key, val)
	}

	// The descriptor's own content type wins over the encoder's choice.
	if headers.Get("Content-Type") == "" {
		headers.Set("Content-Type", contentType)
	}

	// Connection-level default headers only fill keys the descriptor
	// did not set itself.
	for key, val := range b.DefaultHeaders {
		if headers.Get(key) == "" {
			headers.Set(key, val)
		}
	}

	if b.ArangoVersion > 0 && headers.Get("X-Arango-Version") == "" {
		headers.Set("X-Arango-Version", strconv.Itoa(b.ArangoVersion))
	}

	method := req.Method
	if method == "" {
		method = "GET"
	}

	return &PreparedRequest{
		Method:        method,
		PathAndQuery:  uri.String(),
		Headers:       headers,
		Body:          body,
		ContentLength: int64(len(body)),
		ExpectBinary:  req.ExpectBinary,
		HostIndex:     req.HostIndex,
	}, nil
}
