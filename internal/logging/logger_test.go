// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creachadair/jlazy/internal/logging"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		level    string
		expected log.Level
	}{
		{"debug level", "debug", log.DebugLevel},
		{"info level", "info", log.InfoLevel},
		{"warn level", "warn", log.WarnLevel},
		{"warning level", "warning", log.WarnLevel},
		{"error level", "error", log.ErrorLevel},
		{"invalid defaults to info", "invalid", log.InfoLevel},
		{"empty defaults to info", "", log.InfoLevel},
		{"case insensitive DEBUG", "DEBUG", log.DebugLevel},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			logger := logging.New(tc.level)
			require.NotNil(t, logger)
			assert.Equal(t, tc.expected, logger.GetLevel())
		})
	}
}

func TestValidLevel(t *testing.T) {
	t.Parallel()
	for _, level := range []string{"debug", "INFO", "warn", "warning", "error"} {
		assert.True(t, logging.ValidLevel(level), "level %q", level)
	}
	for _, level := range []string{"", "trace", "fatal!"} {
		assert.False(t, logging.ValidLevel(level), "level %q", level)
	}
}

func TestNewWriter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := logging.NewWriter(&buf, "warn")
	logger.Info("hidden")
	logger.Warn("shown", logging.FieldPath, "$.a")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "path=$.a")
}

func TestSetLevel(t *testing.T) {
	// Not parallel because it modifies global state.
	original := logging.Default()
	defer logging.SetDefault(original)

	logging.SetDefault(logging.New("info"))
	logging.SetLevel("debug")
	assert.Equal(t, log.DebugLevel, logging.Default().GetLevel())

	logging.SetLevel("error")
	assert.Equal(t, log.ErrorLevel, logging.Default().GetLevel())
}

func TestContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewWriter(&buf, "debug")
	ctx := logging.WithLogger(context.Background(), logger)
	assert.Same(t, logger, logging.FromContext(ctx))
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))

	fctx := logging.WithFields(ctx, logging.FieldFile, "doc.json")
	logging.FromContext(fctx).Debug("with fields")
	logging.FromContext(ctx).Debug("without fields")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "with fields")
	assert.Contains(t, lines[0], "file=doc.json")
	assert.NotContains(t, lines[1], "file=")
}
