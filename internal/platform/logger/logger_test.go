package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdLogger_TextFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Output: &buf, App: "pet-adoption"})

	l.Info("skipped", nil)
	l.Warn("login failed", map[string]any{"username": "admin"})

	out := strings.TrimSpace(buf.String())
	assert.NotContains(t, out, "skipped")
	assert.Contains(t, out, "app=pet-adoption")
	assert.Contains(t, out, "level=warn")
	assert.Contains(t, out, "username=admin")
}

func TestStdLogger_JSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatJSON, Output: &buf}).
		With(map[string]any{"request_id": "abc"})

	l.Debug("pet created", map[string]any{"pet_id": "p-1"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc", entry["request_id"])
	assert.Equal(t, "p-1", entry["pet_id"])
	assert.Equal(t, "debug", entry["level"])
}

func TestParseLevelAndFormat(t *testing.T) {
	assert.Equal(t, Warn, ParseLevel(" WARNING "))
	assert.Equal(t, Info, ParseLevel("nonsense"))
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat(""))
}

func TestFromContext_FallsBackToNop(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	l := New(Options{Output: &buf})
	ctx := WithContext(context.Background(), l)
	FromContext(ctx).Info("hello", nil)
	assert.Contains(t, buf.String(), "msg=hello")
}
