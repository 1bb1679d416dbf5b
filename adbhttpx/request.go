package adbhttpx

import "net/http"

// Request describes a single logical operation against the database
// before it has been turned into a wire request.  It is produced by the
// route-builder layer above this package and consumed once.
type Request struct {
	Method       string
	Path         string
	BasePath     string
	AbsolutePath bool
	Query        Query
	Headers      map[string]string
	Body         Body
	ExpectBinary bool

	// HostIndex optionally pins the request to one of the configured
	// endpoints.  Nil means the dispatcher is free to choose.
	HostIndex *int
}

// PreparedRequest is the wire form of a Request: the path and query are
// composed, the body is encoded, and all headers are merged.  It is
// endpoint-independent so the dispatcher can hand it to any client.
type PreparedRequest struct {
	Method        string
	PathAndQuery  string
	Headers       http.Header
	Body          []byte
	ContentLength int64
	ExpectBinary  bool
	HostIndex     *int
}
