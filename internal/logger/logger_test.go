package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesConsoleAndFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "log.log")
	var console bytes.Buffer

	log, closeLog, err := New(Options{File: logFile, Console: &console})
	require.NoError(t, err)

	named := log.Named("ExcelToJson")
	named.Info("Records found: 2")
	named.Warn("Notes sheet has no records...")
	named.Debug("not shown at info level")
	require.NoError(t, closeLog())

	want := "ExcelToJson:INFO - Records found: 2\n" +
		"ExcelToJson:WARNING - Notes sheet has no records...\n"
	assert.Equal(t, want, console.String())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Equal(t, want, string(data))
}

func TestNew_TruncatesLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "log.log")
	require.NoError(t, os.WriteFile(logFile, []byte("stale line from an earlier run\n"), 0o644))

	log, closeLog, err := New(Options{File: logFile})
	require.NoError(t, err)
	log.Named("ExcelToJson").Info("started")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Equal(t, "ExcelToJson:INFO - started\n", string(data))
}

func TestNew_UnknownLevel(t *testing.T) {
	_, _, err := New(Options{Level: "verbose"})
	assert.Error(t, err)
}

func TestNew_LevelFilter(t *testing.T) {
	var console bytes.Buffer
	log, _, err := New(Options{Level: "warning", Console: &console})
	require.NoError(t, err)

	log.Info("hidden")
	log.Error("shown")
	assert.Equal(t, ":ERROR - shown\n", console.String())
}

func TestLineEncoder_Fields(t *testing.T) {
	var console bytes.Buffer
	log, _, err := New(Options{Console: &console})
	require.NoError(t, err)

	log.Named("ExcelToJson").
		With(zap.String("sheet", "Italian")).
		Error("Cannot locate file 'menu.xlsx'", zap.Error(errors.New("no such file")), zap.Int("attempt", 1))

	assert.Equal(t,
		"ExcelToJson:ERROR - Cannot locate file 'menu.xlsx' attempt=1 error=no such file sheet=Italian\n",
		console.String())
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "INFO", LevelName(zapcore.InfoLevel))
	assert.Equal(t, "WARNING", LevelName(zapcore.WarnLevel))
	assert.Equal(t, "ERROR", LevelName(zapcore.ErrorLevel))
}
