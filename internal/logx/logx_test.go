package logx_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/logx"
)

func TestNew_ConsoleLevel(t *testing.T) {
	var buf bytes.Buffer
	log, level := logx.NewWithConsole("gridpath", config.LogConfig{Level: "WARN"}, &buf)
	require.Equal(t, zapcore.WarnLevel, level.Level())

	log.Info("hidden")
	log.Warn("shown", zap.String("algorithm", "astar"))
	require.NoError(t, log.Sync())

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "shown")
	require.Contains(t, out, "gridpath")

	level.SetLevel(zapcore.DebugLevel)
	log.Debug("now visible")
	require.Contains(t, buf.String(), "now visible")
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	_, level := logx.NewWithConsole("gridpath", config.LogConfig{Level: "chatty"}, &bytes.Buffer{})
	require.Equal(t, zapcore.InfoLevel, level.Level())
}

func TestNew_FileIsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gridpath.log")
	var console bytes.Buffer
	log, _ := logx.NewWithConsole("gridpath", config.LogConfig{Level: "debug", FileDir: path, MaxSize: 1}, &console)

	log.Debug("search finished", zap.Int("cost", 31))
	require.NoError(t, log.Sync())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(raw))
	require.NotContains(t, line, "\x1b[")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	require.Equal(t, "DEBUG", entry["level"])
	require.Equal(t, "search finished", entry["msg"])
	require.Equal(t, "gridpath", entry["logger"])
	require.EqualValues(t, 31, entry["cost"])

	require.Contains(t, console.String(), "search finished")
}
