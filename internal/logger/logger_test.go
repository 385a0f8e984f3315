// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("campus-found-server")
	l.Logger = l.Output(&buf)

	l.Info().Int64("item_id", 9).Msg("item reported")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "campus-found-server", entry["role"])
	assert.Equal(t, "item reported", entry["message"])
	assert.EqualValues(t, 9, entry["item_id"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
}

func TestNewLogger_GlobalSettings(t *testing.T) {
	NewLogger("campus-found-server")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_DoesNotLeakFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("campus-found-server")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "abc")
	})

	child.Info().Msg("child")
	entry := decodeEntry(t, &buf)
	assert.Equal(t, "campus-found-server", entry["role"])
	assert.Equal(t, "abc", entry["trace_id"])

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, decodeEntry(t, &buf), "trace_id")
}

func TestFromContext(t *testing.T) {
	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).With().Str("trace_id", "t-1").Logger()

		FromContext(zl.WithContext(context.Background())).Info().Msg("claim requested")

		assert.Equal(t, "t-1", decodeEntry(t, &buf)["trace_id"])
	})

	t.Run("empty context", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "t-2").Logger()
	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("list items")

	assert.Equal(t, "t-2", decodeEntry(t, &buf)["trace_id"])
	assert.NotNil(t, FromRequest(httptest.NewRequest(http.MethodGet, "/", nil)))
}

func TestNewConsoleLogger_WritesHumanReadable(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger("campus-found-smoke", &buf)

	l.Info().Msg("step passed")

	out := buf.String()
	assert.Contains(t, out, "step passed")
	assert.Contains(t, out, "campus-found-smoke")
	assert.False(t, json.Valid(buf.Bytes()))
}
