package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stylepreview/internal/ports"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"part": "BUTTON/PUSHBUTTON", "phase": "render"})
	log.Info(context.Background(), "rendering preview")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "rendering preview", entry["message"])
	require.Equal(t, "BUTTON/PUSHBUTTON", entry["part"])
	require.Equal(t, "render", entry["phase"])
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "infrastructure", entry["layer"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug(context.Background(), "this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf, Component: "renderer", Layer: "application"})
	require.NoError(t, err)

	ctx := ports.WithCorrelationID(context.Background(), "abc123")
	child := log.With("part", "EDIT")
	child.Error(ctx, "failed", "error", errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "EDIT", entry["part"])
	require.Equal(t, "renderer", entry["component"])
	require.Equal(t, "application", entry["layer"])
	require.Equal(t, "abc123", entry["correlation_id"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.Info(context.Background(), "ignored")
		log.With("a", 1).Warn(context.Background(), "ignored")
	})
	require.Nil(t, log.WithFields(map[string]any{"a": 1}))
}
