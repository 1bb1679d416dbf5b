package adbhttpx

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRequestURIDatabasePrefix(t *testing.T) {
	uri, err := BuildRequestURI(&Request{Path: "/x"}, "/_db/mydb")
	require.NoError(t, err)
	assert.Equal(t, "/_db/mydb/x", uri.Pathname)
	assert.Equal(t, "", uri.Search)
}

func TestBuildRequestURIBasePath(t *testing.T) {
	uri, err := BuildRequestURI(&Request{Path: "/x", BasePath: "/_api"}, "/_db/mydb")
	require.NoError(t, err)
	assert.Equal(t, "/_db/mydb/_api/x", uri.Pathname)
}

func TestBuildRequestURIAbsolutePath(t *testing.T) {
	uri, err := BuildRequestURI(&Request{
		Path:         "/x",
		BasePath:     "/_api",
		AbsolutePath: true,
	}, "/_db/mydb")
	require.NoError(t, err)
	assert.Equal(t, "/x", uri.Pathname)
}

func TestBuildRequestURINoDatabasePrefix(t *testing.T) {
	uri, err := BuildRequestURI(&Request{Path: "/x"}, "")
	require.NoError(t, err)
	assert.Equal(t, "/x", uri.Pathname)
}

func TestBuildRequestURIValuesQuery(t *testing.T) {
	uri, err := BuildRequestURI(&Request{
		Path: "/x",
		Query: ValuesQuery(url.Values{
			"a": []string{"1"},
			"b": []string{"c d"},
		}),
	}, "")
	require.NoError(t, err)
	assert.Equal(t, "?a=1&b=c%20d", uri.Search)
}

func TestBuildRequestURIRawQuery(t *testing.T) {
	uri, err := BuildRequestURI(&Request{
		Path:  "/x",
		Query: RawQuery("a=1&b=2"),
	}, "")
	require.NoError(t, err)
	assert.Equal(t, "?a=1&b=2", uri.Search)
}

func TestBuildRequestURIEmptyRawQuery(t *testing.T) {
	uri, err := BuildRequestURI(&Request{
		Path:  "/x",
		Query: RawQuery(""),
	}, "")
	require.NoError(t, err)
	assert.Equal(t, "", uri.Search)
}

func TestBuildRequestURIStructQuery(t *testing.T) {
	type listOptions struct {
		Limit  int    `url:"limit"`
		Search string `url:"search"`
	}

	uri, err := BuildRequestURI(&Request{
		Path: "/x",
		Query: StructQuery{Value: listOptions{
			Limit:  10,
			Search: "c d",
		}},
	}, "")
	require.NoError(t, err)
	assert.Equal(t, "?limit=10&search=c%20d", uri.Search)
}
