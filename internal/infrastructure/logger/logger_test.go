package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel(" warn "))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
}

func TestNew(t *testing.T) {
	log, err := New("debug", true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_CustomOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log, err := New("warn", true, path)
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("kept")
	require.NoError(t, log.Sync())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"kept"`)
	assert.NotContains(t, string(raw), "dropped")
}

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "héllo", TruncateForLog("  héllo  ", 10))
	assert.Equal(t, "hé...", TruncateForLog("héllo", 2))
	assert.Equal(t, "", TruncateForLog("hello", 0))
}
