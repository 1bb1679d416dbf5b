package adbhttpx

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// Response is a completed and interpreted exchange.  Body holds the
// parsed JSON value when the content type indicated JSON; RawBody is
// always the bytes as received.
type Response struct {
	Status  int
	Headers http.Header
	Host    string
	RawBody []byte
	Body    interface{}
}

func hasJsonContentType(headers http.Header) bool {
	contentType := strings.ToLower(headers.Get("Content-Type"))
	return strings.Contains(contentType, "json") ||
		strings.Contains(contentType, "javascript")
}

type errorEnvelope struct {
	Code     int
	ErrorNum int
	Message  string
}

// errorEnvelopeFromBody recognizes the four-field error shape the
// server uses for application-level failures.  Extra fields are
// ignored; all four required fields must be present with their
// expected types.
func errorEnvelopeFromBody(body interface{}) (errorEnvelope, bool) {
	obj, ok := body.(map[string]interface{})
	if !ok {
		return errorEnvelope{}, false
	}

	isError, ok := obj["error"].(bool)
	if !ok || !isError {
		return errorEnvelope{}, false
	}

	code, ok := obj["code"].(float64)
	if !ok {
		return errorEnvelope{}, false
	}

	errorNum, ok := obj["errorNum"].(float64)
	if !ok {
		return errorEnvelope{}, false
	}

	message, ok := obj["errorMessage"].(string)
	if !ok {
		return errorEnvelope{}, false
	}

	return errorEnvelope{
		Code:     int(code),
		ErrorNum: int(errorNum),
		Message:  message,
	}, true
}

// ReadResponse consumes a raw HTTP response and classifies it into a
// success value, an ArangoError, an HTTPError or a transport-level
// parse failure.  The endpoint that served the exchange is attached
// before classification so every outcome carries it.
func ReadResponse(hresp *http.Response, endpoint string, expectBinary bool) (*Response, error) {
	defer hresp.Body.Close()

	rawBody, err := io.ReadAll(hresp.Body)
	if err != nil {
		return nil, ConnectError{Cause: err}
	}

	resp := &Response{
		Status:  hresp.StatusCode,
		Headers: hresp.Header,
		Host:    endpoint,
		RawBody: rawBody,
	}

	var parsedBody interface{}
	if hasJsonContentType(hresp.Header) && len(rawBody) > 0 {
		if err := json.Unmarshal(rawBody, &parsedBody); err != nil {
			// Binary payloads are not expected to carry structured
			// bodies even when the content type claims otherwise.
			if !expectBinary {
				return nil, BodyParseError{Cause: err, Response: resp}
			}
			parsedBody = nil
		}
	}
	resp.Body = parsedBody

	if env, ok := errorEnvelopeFromBody(parsedBody); ok {
		return nil, ArangoError{
			Code:     env.Code,
			ErrorNum: env.ErrorNum,
			Message:  env.Message,
			Response: resp,
		}
	}

	if resp.Status >= 400 {
		return nil, HTTPError{
			StatusCode: resp.Status,
			Response:   resp,
		}
	}

	if expectBinary {
		// Binary responses keep the raw bytes rather than any parsed
		// value.
		resp.Body = nil
	}

	return resp, nil
}
