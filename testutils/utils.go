package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func MakeTestLogger(t *testing.T) *zap.Logger {
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	return logger
}
