package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewJSONLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := newJSONLogger("server", &buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "server", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewJSONLogger_Fields")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewLogger_NotNil(t *testing.T) {
	require.NotNil(t, NewLogger("worker"))
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("discarded")

	assert.Empty(t, buf.String())
}

func TestChildLoggers(t *testing.T) {
	var buf bytes.Buffer
	parent := newJSONLogger("server", &buf)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	parent.WithUserID(42).WithComponent("periodic_sync").Info().Msg("tagged")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "server", entry["role"])
	assert.EqualValues(t, 42, entry["user_id"])
	assert.Equal(t, "periodic_sync", entry["component"])

	buf.Reset()
	parent.Info().Msg("untagged")
	assert.NotContains(t, decodeEntry(t, &buf), "user_id")
}

func TestFromContext(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "abc").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")
	assert.Equal(t, "abc", decodeEntry(t, &buf)["trace_id"])
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "req").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")
	assert.Equal(t, "req", decodeEntry(t, &buf)["trace_id"])
}

func TestNewConsoleLogger_Levels(t *testing.T) {
	var quiet bytes.Buffer
	l := NewConsoleLogger("cli", &quiet, false)
	l.Debug().Msg("hidden")
	l.Info().Msg("shown")

	assert.NotContains(t, quiet.String(), "hidden")
	assert.Contains(t, quiet.String(), "shown")

	var verbose bytes.Buffer
	l = NewConsoleLogger("cli", &verbose, true)
	l.Debug().Msg("visible")
	assert.Contains(t, verbose.String(), "visible")
}
