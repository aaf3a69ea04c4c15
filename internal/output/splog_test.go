package output

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestSplogConsole(t *testing.T) {
	t.Run("prints bare messages and hides debug by default", func(t *testing.T) {
		var buf bytes.Buffer
		splog, err := NewSplogWithOptions(Options{Writer: &buf})
		require.NoError(t, err)

		splog.Info("checking out %s branch...", "develop")
		splog.Debug("hidden")
		splog.Tip("run %s", "gitflow continue")

		require.Equal(t, "checking out develop branch...\n💡 run gitflow continue\n", buf.String())
	})

	t.Run("debug mode shows debug messages", func(t *testing.T) {
		var buf bytes.Buffer
		splog, err := NewSplogWithOptions(Options{Writer: &buf, Debug: true})
		require.NoError(t, err)

		splog.Debug("step %d", 1)
		require.Equal(t, "step 1\n", buf.String())
	})

	t.Run("quiet suppresses everything but errors", func(t *testing.T) {
		var buf bytes.Buffer
		splog, err := NewSplogWithOptions(Options{Writer: &buf})
		require.NoError(t, err)

		splog.SetQuiet(true)
		splog.Info("nothing")
		splog.Warn("still nothing")
		splog.Newline()
		require.Empty(t, buf.String())

		splog.Error("%v", errors.New("push failed"))
		require.Equal(t, "❌ push failed\n", buf.String())
	})

	t.Run("a literal percent survives without args", func(t *testing.T) {
		var buf bytes.Buffer
		splog, err := NewSplogWithOptions(Options{Writer: &buf})
		require.NoError(t, err)

		splog.Info("100% done")
		require.Equal(t, "100% done\n", buf.String())
	})
}

func TestSplogFile(t *testing.T) {
	var buf bytes.Buffer
	logFile := filepath.Join(t.TempDir(), "logs", "gitflow.log")

	splog, err := NewSplogWithOptions(Options{
		Writer:  &buf,
		LogFile: logFile,
		RunID:   "run-1234",
	})
	require.NoError(t, err)
	require.Equal(t, "run-1234", splog.RunID())

	splog.Info("merge successful...")
	splog.Debug("only in the file")
	require.NoError(t, splog.Close())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	content := string(data)

	require.Contains(t, content, "merge successful...")
	require.Contains(t, content, "only in the file")
	require.Contains(t, content, "run=run-1234")
	require.Contains(t, content, "level=DEBUG")
	require.NotContains(t, buf.String(), "only in the file")
}

func TestSplogColorKeepsFilePlain(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.Ascii) })

	var buf bytes.Buffer
	logFile := filepath.Join(t.TempDir(), "gitflow.log")
	splog, err := NewSplogWithOptions(Options{Writer: &buf, LogFile: logFile, Color: true})
	require.NoError(t, err)

	splog.Info("checking out %s branch...", "develop")
	require.NoError(t, splog.Close())

	require.Contains(t, buf.String(), "\x1b[")
	require.Contains(t, buf.String(), "develop")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.NotContains(t, string(data), "\x1b[")
	require.NotContains(t, string(data), displayKey)
	require.Contains(t, string(data), "checking out develop branch...")
}

func TestNewSplogGeneratesRunID(t *testing.T) {
	a, err := NewSplogWithOptions(Options{Writer: &bytes.Buffer{}})
	require.NoError(t, err)
	b, err := NewSplogWithOptions(Options{Writer: &bytes.Buffer{}})
	require.NoError(t, err)
	require.Len(t, a.RunID(), 36)
	require.NotEqual(t, a.RunID(), b.RunID())
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("GITFLOW_LOG_FILE", "/tmp/custom.log")
	require.Equal(t, "/tmp/custom.log", GetLogFilePath())

	t.Setenv("GITFLOW_LOG_FILE", "off")
	require.Empty(t, GetLogFilePath())

	home := t.TempDir()
	t.Setenv("GITFLOW_LOG_FILE", "")
	t.Setenv("HOME", home)
	require.Equal(t, filepath.Join(home, ".gitflow", "logs", "gitflow.log"), GetLogFilePath())
}

func TestCreateLumberjackLogger(t *testing.T) {
	t.Setenv("GITFLOW_LOG_MAX_SIZE", "5")
	t.Setenv("GITFLOW_LOG_MAX_BACKUPS", "0")
	t.Setenv("GITFLOW_LOG_MAX_AGE", "nope")

	logger := createLumberjackLogger("/tmp/x.log")
	require.Equal(t, 5, logger.MaxSize)
	require.Equal(t, 0, logger.MaxBackups)
	require.Equal(t, 30, logger.MaxAge)
}
