package logger_adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"findhome-bot/internal/core/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type post struct {
	tag  string
	data map[string]interface{}
}

type fakePoster struct {
	posts []post
}

func (f *fakePoster) Post(tag string, message interface{}) error {
	f.posts = append(f.posts, post{tag: tag, data: message.(map[string]interface{})})
	return nil
}

func TestFluentLoggerAdapter_FiltersByLevelAndMergesFields(t *testing.T) {
	poster := &fakePoster{}
	adapter, err := NewFluentLoggerAdapter(poster, slog.LevelInfo)
	require.NoError(t, err)

	logger := adapter.WithFields(port.Fields{"component": "test", "session_id": "s1"})
	logger.Debug("hidden", nil)
	logger.Info("shown", port.Fields{"session_id": "s2"})
	logger.Error("failed", errors.New("boom"), nil)

	require.Len(t, poster.posts, 2)

	info := poster.posts[0]
	assert.Equal(t, "info", info.tag)
	assert.Equal(t, "shown", info.data["message"])
	assert.Equal(t, "test", info.data["component"])
	assert.Equal(t, "s2", info.data["session_id"])
	assert.NotEmpty(t, info.data["timestamp"])

	failed := poster.posts[1]
	assert.Equal(t, "error", failed.tag)
	assert.Equal(t, "boom", failed.data["error"])
}

func TestNewFluentLoggerAdapter_RequiresClient(t *testing.T) {
	_, err := NewFluentLoggerAdapter(nil, slog.LevelInfo)
	assert.Error(t, err)
}

func TestSlogAdapter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelDebug, IsJSON: true}).
		WithFields(port.Fields{"trace_id": "t1"})

	logger.Error("fetch failed", errors.New("timeout"), port.Fields{"city": "Toronto"})

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "fetch failed", record["msg"])
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "t1", record["trace_id"])
	assert.Equal(t, "Toronto", record["city"])
	assert.Equal(t, "timeout", record["error"])
}

func TestSlogAdapter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelWarn})

	logger.Info("quiet", nil)
	assert.Zero(t, buf.Len())

	logger.Warn("loud", nil)
	assert.Contains(t, buf.String(), "loud")
}

func TestMultiLoggerAdapter_FansOut(t *testing.T) {
	first, second := &fakePoster{}, &fakePoster{}
	a, err := NewFluentLoggerAdapter(first, slog.LevelDebug)
	require.NoError(t, err)
	b, err := NewFluentLoggerAdapter(second, slog.LevelDebug)
	require.NoError(t, err)

	multi, err := NewMultiloggerAdapter(a, b)
	require.NoError(t, err)

	multi.WithFields(port.Fields{"k": "v"}).Warn("both", nil)

	require.Len(t, first.posts, 1)
	require.Len(t, second.posts, 1)
	assert.Equal(t, "v", second.posts[0].data["k"])

	_, err = NewMultiloggerAdapter()
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, ok := ParseLevel(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	got, ok := ParseLevel("verbose")
	assert.False(t, ok)
	assert.Equal(t, slog.LevelInfo, got)
}
