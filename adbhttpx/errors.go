package adbhttpx

import (
	"errors"
	"fmt"
)

var (
	ErrConnectError = errors.New("http connect failed")
)

// ConnectError wraps a transport-level failure: the exchange never
// produced a usable response.
type ConnectError struct {
	Cause error
}

func (e ConnectError) Error() string {
	return fmt.Sprintf("%s: %s", ErrConnectError, e.Cause)
}

func (e ConnectError) Unwrap() error {
	return ErrConnectError
}

// BodyParseError indicates a response advertised a JSON body which did
// not parse.  The raw response is attached for diagnostics.
type BodyParseError struct {
	Cause    error
	Response *Response
}

func (e BodyParseError) Error() string {
	return fmt.Sprintf("failed to parse response body: %s", e.Cause)
}

func (e BodyParseError) Unwrap() error {
	return e.Cause
}

// ArangoError is an application-level failure reported by the server
// through the error envelope, independent of the HTTP status code.
type ArangoError struct {
	Code     int
	ErrorNum int
	Message  string
	Response *Response
}

func (e ArangoError) Error() string {
	return fmt.Sprintf("arango error: %s (code: %d, errorNum: %d)",
		e.Message, e.Code, e.ErrorNum)
}

// HTTPError is a non-success status without an error envelope.
type HTTPError struct {
	StatusCode int
	Response   *Response
}

func (e HTTPError) Error() string {
	return fmt.Sprintf("server error: unexpected response status (status: %d)", e.StatusCode)
}
