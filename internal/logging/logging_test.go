package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/wikiquiz/internal/config"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "wikiquiz.log")

	logger, cleanup, err := New(config.LogConfig{File: path, Level: "info"})
	require.NoError(t, err)

	logger.Debug("hidden detail")
	logger.Info("quiz generated", zap.String("title", "Dog"))
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "quiz generated")
	assert.Contains(t, out, "Dog")
	assert.NotContains(t, out, "hidden detail")
}

func TestNew_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wikiquiz.log")

	for _, msg := range []string{"first run", "second run"} {
		logger, cleanup, err := New(config.LogConfig{File: path, Level: "debug"})
		require.NoError(t, err)
		logger.Info(msg)
		cleanup()
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first run")
	assert.Contains(t, string(data), "second run")
}

func TestNew_Stderr(t *testing.T) {
	logger, cleanup, err := New(config.LogConfig{File: Stderr, Level: "error"})
	require.NoError(t, err)
	defer cleanup()
	assert.NotNil(t, logger)
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{File: Stderr, Level: "verbose"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { Nop().Info("discarded") })
}
