package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nconklindev/menuconv/internal/converter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunConversion_MissingInput(t *testing.T) {
	chdir(t, t.TempDir())
	var console bytes.Buffer

	err := runConversion(&console)

	var logged loggedError
	require.True(t, errors.As(err, &logged))
	assert.ErrorIs(t, err, converter.ErrOpenWorkbook)

	_, statErr := os.Stat(filepath.Join("output", "results.json"))
	assert.True(t, os.IsNotExist(statErr))

	logData, readErr := os.ReadFile(filepath.Join("logs", "log.log"))
	require.NoError(t, readErr)
	assert.Contains(t, string(logData), "ExcelToJson:INFO - *****ExcelToJson converter started*****\n")
	assert.Contains(t, string(logData), "ExcelToJson:ERROR - Cannot locate file 'Restaurant Menu Nutrients.xlsx'")
	assert.Equal(t, string(logData), console.String(), "console mirrors the log file")
}

func TestRunConversion_BadConfigIsNotLogged(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("menuconv.yaml", []byte("logging:\n  level: loud\n"), 0o644))

	err := runConversion(nil)

	require.Error(t, err)
	var logged loggedError
	assert.False(t, errors.As(err, &logged))
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
