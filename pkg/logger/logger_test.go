package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipebook.log")

	log, err := New(Config{Level: "info", Format: "json", OutputPaths: []string{path}})
	require.NoError(t, err)

	log.Info("Recipe added")
	log.Debug("hidden")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"Recipe added"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNewFallsBackToWarnLevel(t *testing.T) {
	log, err := New(Config{Level: "loud", Format: "console", OutputPaths: []string{filepath.Join(t.TempDir(), "out.log")}})
	require.NoError(t, err)

	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
}

func TestNewRejectsUnopenablePath(t *testing.T) {
	_, err := New(Config{OutputPaths: []string{filepath.Join(t.TempDir(), "missing", "dir", "out.log")}})
	assert.Error(t, err)
}
