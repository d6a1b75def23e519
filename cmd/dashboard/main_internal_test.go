package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/Houeta/shelf-watch/internal/config"
	"github.com/Houeta/shelf-watch/internal/fetcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSource(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	src, closeSrc, err := newSource(t.Context(), logger, config.Source{Kind: config.SourceDir, Location: t.TempDir()})
	require.NoError(t, err)
	closeSrc()
	assert.IsType(t, &fetcher.Dir{}, src)

	src, _, err = newSource(t.Context(), logger, config.Source{Kind: config.SourceURL, Location: "https://example.test/data"})
	require.NoError(t, err)
	assert.IsType(t, &fetcher.HTTP{}, src)

	_, _, err = newSource(t.Context(), logger, config.Source{Kind: "ftp"})
	require.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	testCases := []struct {
		env      string
		logDebug bool
		logInfo  bool
	}{
		{env: envLocal, logDebug: true, logInfo: true},
		{env: envDev, logInfo: true},
		{env: envProd},
	}

	for _, tc := range testCases {
		t.Run(tc.env, func(t *testing.T) {
			var buf bytes.Buffer
			log := setupLogger(tc.env, &buf)

			assert.Equal(t, tc.logDebug, log.Enabled(t.Context(), slog.LevelDebug))
			assert.Equal(t, tc.logInfo, log.Enabled(t.Context(), slog.LevelInfo))
			assert.True(t, log.Enabled(t.Context(), slog.LevelWarn))
		})
	}

	var buf bytes.Buffer
	setupLogger("bogus", &buf)
	assert.Contains(t, buf.String(), "available_envs")
}

func TestLogOutput(t *testing.T) {
	assert.Equal(t, os.Stdout, logOutput(""))

	file := filepath.Join(t.TempDir(), "app.log")
	out := logOutput(file)

	_, err := out.Write([]byte("hello\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}
