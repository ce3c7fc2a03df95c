package helpers

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	t.Parallel()

	t.Run("provided handler is kept", func(t *testing.T) {
		var buf bytes.Buffer
		h := slog.NewTextHandler(&buf, nil)

		gotHandler, logger := SetupLogger(h, "postfix", "Evaluator")
		require.Equal(t, h, gotHandler)
		require.NotNil(t, logger)

		logger.Info("hello", "key", "value")
		require.Contains(t, buf.String(), "Evaluator.key=value")
	})

	t.Run("empty component name skips grouping", func(t *testing.T) {
		var buf bytes.Buffer
		h := slog.NewTextHandler(&buf, nil)

		_, logger := SetupLogger(h, "postfix", "")
		logger.Info("hello", "key", "value")
		require.Contains(t, buf.String(), " key=value")
	})

	t.Run("nil handler falls back to default", func(t *testing.T) {
		gotHandler, logger := SetupLogger(nil, "postfix", "Runner")
		require.NotNil(t, gotHandler)
		require.NotNil(t, logger)
	})
}
