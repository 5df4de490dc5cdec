package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func requireUsageError(t *testing.T, err error) *ExitError {
	t.Helper()
	require.Error(t, err)
	exitErr, ok := err.(*ExitError)
	require.True(t, ok, "expected an *ExitError, got %T", err)
	assert.Equal(t, 2, exitErr.Code)
	return exitErr
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_MissingDescriptionIsUsageError(t *testing.T) {
	out := &bytes.Buffer{}

	_, _, err := Parse([]string{}, out)

	exitErr := requireUsageError(t, err)
	assert.Contains(t, exitErr.Message, "structure description file is required")
	assert.Contains(t, out.String(), "Usage:", "usage text accompanies the error")
}

func TestParse_DescriptionValidation(t *testing.T) {
	t.Run("nonexistent file", func(t *testing.T) {
		_, _, err := Parse([]string{filepath.Join(t.TempDir(), "missing.json")}, &bytes.Buffer{})
		exitErr := requireUsageError(t, err)
		assert.Contains(t, exitErr.Message, "does not exist")
	})

	t.Run("unrecognized extension", func(t *testing.T) {
		path := writeTemp(t, "structure.txt", "{}")
		_, _, err := Parse([]string{path}, &bytes.Buffer{})
		exitErr := requireUsageError(t, err)
		assert.Contains(t, exitErr.Message, "not a recognized description format")
	})

	t.Run("directory instead of file", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "structure.json")
		require.NoError(t, os.Mkdir(dir, 0o755))
		_, _, err := Parse([]string{dir}, &bytes.Buffer{})
		exitErr := requireUsageError(t, err)
		assert.Contains(t, exitErr.Message, "not a regular file")
	})
}

func TestParse_DestinationValidation(t *testing.T) {
	desc := writeTemp(t, "structure.json", "{}")

	t.Run("nonexistent destination", func(t *testing.T) {
		_, _, err := Parse([]string{"-d", filepath.Join(t.TempDir(), "gone"), desc}, &bytes.Buffer{})
		exitErr := requireUsageError(t, err)
		assert.Contains(t, exitErr.Message, "does not exist")
	})

	t.Run("destination is a file", func(t *testing.T) {
		notADir := writeTemp(t, "blocker", "x")
		_, _, err := Parse([]string{"-d", notADir, desc}, &bytes.Buffer{})
		exitErr := requireUsageError(t, err)
		assert.Contains(t, exitErr.Message, "not a directory")
	})

	t.Run("existing destination accepted", func(t *testing.T) {
		dest := t.TempDir()
		cfg, shouldExit, err := Parse([]string{"-d", dest, desc}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.False(t, shouldExit)
		assert.Equal(t, dest, cfg.Destination)
		assert.Equal(t, desc, cfg.DescriptionPath)
		assert.Equal(t, "python3", cfg.Interpreter)
	})
}

func TestParse_EnvOnlyMode(t *testing.T) {
	t.Run("no description needed", func(t *testing.T) {
		cfg, shouldExit, err := Parse([]string{"-env-only", "-d", t.TempDir()}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.False(t, shouldExit)
		assert.True(t, cfg.EnvOnly)
		assert.Empty(t, cfg.DescriptionPath)
	})

	t.Run("description and env-only conflict", func(t *testing.T) {
		desc := writeTemp(t, "s.json", "{}")
		_, _, err := Parse([]string{"-env-only", "-d", t.TempDir(), desc}, &bytes.Buffer{})
		exitErr := requireUsageError(t, err)
		assert.Contains(t, exitErr.Message, "mutually exclusive")
	})
}

func TestParse_InterpreterPrecedence(t *testing.T) {
	desc := writeTemp(t, "s.json", "{}")
	dest := t.TempDir()

	t.Run("environment variable seeds the default", func(t *testing.T) {
		t.Setenv("SCAFFOLDGO_INTERPRETER", "python3.11")
		cfg, _, err := Parse([]string{"-d", dest, desc}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "python3.11", cfg.Interpreter)
	})

	t.Run("explicit flag wins over environment", func(t *testing.T) {
		t.Setenv("SCAFFOLDGO_INTERPRETER", "python3.11")
		cfg, _, err := Parse([]string{"-interpreter", "pypy3", "-d", dest, desc}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "pypy3", cfg.Interpreter)
	})
}

func TestParse_SettingsFile(t *testing.T) {
	desc := writeTemp(t, "s.json", "{}")
	dest := t.TempDir()
	setsPath := writeTemp(t, "scaffold.hcl", `
		interpreter = "python3.12"
		venv_dir    = "env"
	`)

	t.Run("settings supply defaults", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-settings", setsPath, "-d", dest, desc}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "python3.12", cfg.Interpreter)
		assert.Equal(t, "env", cfg.EnvDir)
	})

	t.Run("flags win over settings", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-settings", setsPath, "-interpreter", "python3", "-d", dest, desc}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "python3", cfg.Interpreter)
	})

	t.Run("malformed settings file is fatal", func(t *testing.T) {
		bad := writeTemp(t, "scaffold.hcl", "interpreter = ")
		_, _, err := Parse([]string{"-settings", bad, "-d", dest, desc}, &bytes.Buffer{})
		requireUsageError(t, err)
	})
}

func TestParse_LogFlags(t *testing.T) {
	desc := writeTemp(t, "s.json", "{}")
	dest := t.TempDir()

	t.Run("invalid log-format", func(t *testing.T) {
		_, _, err := Parse([]string{"-log-format", "xml", "-d", dest, desc}, &bytes.Buffer{})
		exitErr := requireUsageError(t, err)
		assert.Contains(t, exitErr.Message, "invalid log-format")
	})

	t.Run("invalid log-level", func(t *testing.T) {
		_, _, err := Parse([]string{"-log-level", "loud", "-d", dest, desc}, &bytes.Buffer{})
		exitErr := requireUsageError(t, err)
		assert.Contains(t, exitErr.Message, "invalid log-level")
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-d", dest, desc}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, _, err := Parse([]string{"--definitely-not-a-flag"}, &bytes.Buffer{})
		requireUsageError(t, err)
	})
}
