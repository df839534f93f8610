package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		present []string
		absent  []string
	}{
		{
			name:    "debug logs everything",
			level:   LevelDebug,
			present: []string{"DEBUG: d", "INFO: i", "WARN: w", "ERROR: e"},
		},
		{
			name:    "warn drops debug and info",
			level:   LevelWarn,
			present: []string{"WARN: w", "ERROR: e"},
			absent:  []string{"DEBUG", "INFO"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "gnote.log")
			logger, err := New(path, tt.level)
			require.NoError(t, err)

			logger.Debug("d")
			logger.Info("i")
			logger.Warn("w")
			logger.Error("e")
			require.NoError(t, logger.Close())

			content := readLog(t, path)
			for _, s := range tt.present {
				require.Contains(t, content, s)
			}
			for _, s := range tt.absent {
				require.NotContains(t, content, s)
			}
		})
	}
}

func TestLogger_Permissions(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	path := filepath.Join(dir, "gnote.log")

	logger, err := New(path, LevelInfo)
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, logger.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	info, err = os.Stat(dir)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestLogger_FixesExistingPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gnote.log")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0644))

	logger, err := New(path, LevelInfo)
	require.NoError(t, err)
	logger.Info("new")
	require.NoError(t, logger.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
	content := readLog(t, path)
	require.Contains(t, content, "old\n")
	require.Contains(t, content, "INFO: new")
}

func TestLogger_Named(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gnote.log")
	logger, err := New(path, LevelDebug)
	require.NoError(t, err)

	logger.Named("notestore").Warn("retry %d", 2)
	require.NoError(t, logger.Close())

	require.Contains(t, readLog(t, path), "WARN: notestore: retry 2")
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gnote.log")

	l, err := Open(path, false, "debug")
	require.NoError(t, err)
	require.IsType(t, NopLogger{}, l)
	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))

	l, err = Open(path, true, "error")
	require.NoError(t, err)
	fl, ok := l.(*Logger)
	require.True(t, ok)
	require.Equal(t, LevelError, fl.minLevel)
	require.NoError(t, l.Close())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"Warning", LevelWarn},
		{"error", LevelError},
		{" error ", LevelError},
		{"verbose", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(99).String())
}

func TestLogger_NilSafe(t *testing.T) {
	var logger *Logger
	require.NoError(t, logger.Close())
	logger.Debug("x")
	logger.Error("x")
}

func TestDefault(t *testing.T) {
	saved := Default()
	t.Cleanup(func() { SetDefault(saved) })

	path := filepath.Join(t.TempDir(), "gnote.log")
	logger, err := New(path, LevelDebug)
	require.NoError(t, err)

	SetDefault(logger)
	Info("through default %s", "logger")
	require.NoError(t, logger.Close())
	require.Contains(t, readLog(t, path), "INFO: through default logger")

	SetDefault(nil)
	require.IsType(t, NopLogger{}, Default())
	Error("dropped")
}
