package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SlogText(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "debug", Output: &buf})
	require.NoError(t, err)

	log.Debug(context.Background(), "hello", "k", "v")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "k=v")
}

func TestNew_SlogJSON_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "warn", Format: "json", Output: &buf})
	require.NoError(t, err)

	log.Info(context.Background(), "dropped")
	log.Warn(context.Background(), "kept", "n", 1)

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"msg":"kept"`)
	assert.Contains(t, out, `"n":1`)
}

func TestNew_Zap(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Backend: "zap", Format: "json", Level: "info", Output: &buf})
	require.NoError(t, err)

	log.With("req_id", "42").Info(context.Background(), "zap-line", "k", "v")
	log.Debug(context.Background(), "too-low")

	out := buf.String()
	assert.Contains(t, out, `"msg":"zap-line"`)
	assert.Contains(t, out, `"req_id":"42"`)
	assert.Contains(t, out, `"k":"v"`)
	assert.NotContains(t, out, "too-low")
}

func TestNew_UnknownBackend(t *testing.T) {
	_, err := New(Options{Backend: "logrus"})
	require.Error(t, err)
}

func TestDiscard_DoesNotPanic(t *testing.T) {
	l := Discard()
	l.Error(context.Background(), "nothing")
	l.With("a", 1).Info(context.Background(), "nothing")
}
