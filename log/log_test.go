package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLoggerInvalidLevel(t *testing.T) {
	_, _, err := NewLogger(Config{
		Environment: EnvironmentDevelopment,
		Level:       "loud",
	})
	require.Error(t, err)
}

func TestLoggerWritesToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "genesis.log")
	zapLogger, level, err := NewLogger(Config{
		Environment: EnvironmentProduction,
		Level:       "info",
		Outputs:     []string{out},
	})
	require.NoError(t, err)
	require.Equal(t, "info", level.String())

	l := &Logger{x: zapLogger}
	l.WithFields("module", "test").Infof("leaf count %d", 3)
	l.Debug("not written at info level")
	require.NoError(t, zapLogger.Sync())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "leaf count 3")
	require.Contains(t, string(data), `"module":"test"`)
	require.NotContains(t, string(data), "not written")
}

func TestDefaultLogger(t *testing.T) {
	require.NotNil(t, GetDefaultLogger())
	l := WithFields("module", "tree")
	require.NotNil(t, l)
	l.Debugf("root %s", "0x00")
}
