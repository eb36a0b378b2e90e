package initializer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/amirasaad/banking/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger_WritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := setupLogger(&buf, &config.Log{Format: "json", Prefix: "[banking]"})

	logger.Info("Login successful", "user", "jdoe")
	logger.Debug("hidden at info level")

	out := buf.String()
	assert.Contains(t, out, "Login successful")
	assert.Contains(t, out, `"user":"jdoe"`)
	assert.NotContains(t, out, "hidden at info level")
}

func TestSetupLogger_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := setupLogger(&buf, &config.Log{Level: -4, Format: "text"})

	logger.Debug("shell started")
	assert.Contains(t, buf.String(), "shell started")
}

func TestOpenLogFile_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "banking_app.log")

	f, err := openLogFile(path)
	require.NoError(t, err)
	_, err = f.WriteString("line\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line\n", string(data))
}

func TestInitializeDependencies_BadDatabaseConfig(t *testing.T) {
	cfg := &config.App{
		Env: "test",
		Log: &config.Log{File: filepath.Join(t.TempDir(), "app.log")},
		DB:  &config.DB{},
	}

	deps, err := InitializeDependencies(t.Context(), cfg)
	assert.Error(t, err)
	assert.Nil(t, deps)
}
