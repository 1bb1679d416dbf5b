package arangocorex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeConnectionOptionsDefaults(t *testing.T) {
	merged := mergeConnectionOptions(DefaultConnectionOptions, ConnectionOptions{})

	assert.Equal(t, []string{"http://localhost:8529"}, merged.Endpoints)
	assert.Equal(t, "_system", merged.DatabaseName)
	assert.Equal(t, 30400, merged.ArangoVersion)
	assert.Equal(t, 3, merged.MaxSockets)
	assert.Equal(t, 30*time.Second, merged.IdleTimeout)
}

func TestMergeConnectionOptionsOverrides(t *testing.T) {
	merged := mergeConnectionOptions(DefaultConnectionOptions, ConnectionOptions{
		Endpoints:     []string{"http://db1:8529"},
		DatabaseName:  "mydb",
		ArangoVersion: 30000,
		MaxSockets:    8,
	})

	assert.Equal(t, []string{"http://db1:8529"}, merged.Endpoints)
	assert.Equal(t, "mydb", merged.DatabaseName)
	assert.Equal(t, 30000, merged.ArangoVersion)
	assert.Equal(t, 8, merged.MaxSockets)
}

func TestNormalizeEndpointsSingle(t *testing.T) {
	endpoints, err := normalizeEndpoints(ConnectionOptions{
		Endpoint: "http://db1:8529/",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"http://db1:8529"}, endpoints)
}

func TestNormalizeEndpointsDedupe(t *testing.T) {
	endpoints, err := normalizeEndpoints(ConnectionOptions{
		Endpoints: []string{
			"http://db1:8529",
			"http://db2:8529",
			"http://db1:8529/",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"http://db1:8529", "http://db2:8529"}, endpoints)
}

func TestNormalizeEndpointsBadScheme(t *testing.T) {
	_, err := normalizeEndpoints(ConnectionOptions{
		Endpoints: []string{"tcp://db1:8529"},
	})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNormalizeEndpointsParseFailure(t *testing.T) {
	_, err := normalizeEndpoints(ConnectionOptions{
		Endpoints: []string{":not-a-url"},
	})
	require.Error(t, err)
}
