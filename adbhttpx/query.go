package adbhttpx

import (
	"net/url"
	"sort"
	"strings"

	"github.com/google/go-querystring/query"
)

// Query is the tagged union of the query-string shapes a request can
// carry.  Encoding happens once, when the request is prepared.
type Query interface {
	EncodeQuery() (string, error)
}

// RawQuery is a pre-built query string which is passed through without
// any re-encoding.
type RawQuery string

func (q RawQuery) EncodeQuery() (string, error) {
	return string(q), nil
}

// ValuesQuery encodes a key-value mapping with standard
// percent-encoding.  Keys are emitted in sorted order so the output is
// deterministic.
type ValuesQuery url.Values

func (q ValuesQuery) EncodeQuery() (string, error) {
	return encodeQueryValues(url.Values(q)), nil
}

// StructQuery encodes a struct with `url` field tags, the same way
// typed operation options are declared elsewhere in the driver.
type StructQuery struct {
	Value interface{}
}

func (q StructQuery) EncodeQuery() (string, error) {
	vals, err := query.Values(q.Value)
	if err != nil {
		return "", err
	}

	return encodeQueryValues(vals), nil
}

func encodeQueryValues(vals url.Values) string {
	keys := make([]string, 0, len(vals))
	for key := range vals {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, key := range keys {
		for _, val := range vals[key] {
			if sb.Len() > 0 {
				sb.WriteByte('&')
			}
			sb.WriteString(queryEscape(key))
			sb.WriteByte('=')
			sb.WriteString(queryEscape(val))
		}
	}

	return sb.String()
}

// queryEscape percent-encodes a query component.  url.QueryEscape emits
// `+` for spaces, which the server does not decode in all positions, so
// we rewrite them to `%20`.
func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
