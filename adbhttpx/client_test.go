package adbhttpx

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestClientDo(t *testing.T) {
	var captured *http.Request
	transport := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		captured = req
		return &http.Response{
			StatusCode: 200,
			Header:     make(http.Header),
			Body:       http.NoBody,
			Request:    req,
		}, nil
	})

	prepared, err := RequestBuilder{DatabasePrefix: "/_db/mydb"}.Prepare(&Request{
		Method: "POST",
		Path:   "/_api/version",
		Body:   JsonBody{Value: map[string]interface{}{"a": 1}},
	})
	require.NoError(t, err)

	resp, err := Client{
		Endpoint:  "http://localhost:8529",
		Transport: transport,
	}.Do(context.Background(), prepared)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	require.NotNil(t, captured)
	assert.Equal(t, "http://localhost:8529/_db/mydb/_api/version", captured.URL.String())
	assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))
	assert.Equal(t, int64(7), captured.ContentLength)
}

func TestClientDoConnectError(t *testing.T) {
	transport := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	prepared, err := RequestBuilder{}.Prepare(&Request{Path: "/x"})
	require.NoError(t, err)

	_, err = Client{
		Endpoint:  "http://localhost:8529",
		Transport: transport,
	}.Do(context.Background(), prepared)
	require.ErrorIs(t, err, ErrConnectError)
}
