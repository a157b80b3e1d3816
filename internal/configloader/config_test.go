package configloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"arkhive.dev/applauncher/internal/configloader"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// Test default configuration loading
func TestLoadDefaultConfiguration(t *testing.T) {
	configuration, err := configloader.LoadConfiguration("unexistent", "")
	if err != nil {
		t.Fatal(err)
	}
	if configuration.LogLevel != "error" {
		t.Errorf("Default log level is \"%s\", not \"%s\"", configuration.LogLevel, "error")
	}
}

// Test environment variables configuration loading
func TestLoadEnvironmentVariablesConfiguration(t *testing.T) {
	t.Setenv("UNEXISTENT_LOG_LEVEL", "debug")

	configuration, err := configloader.LoadConfiguration("unexistent", "")
	if err != nil {
		t.Fatal(err)
	}
	if configuration.LogLevel != "debug" {
		t.Errorf("Log level is \"%s\", not \"%s\"", configuration.LogLevel, "debug")
	}
}

// Unprefixed variables belong to the launched program
func TestIgnoreUnprefixedEnvironmentVariables(t *testing.T) {
	t.Setenv("LOG_LEVEL", "trace")

	configuration, err := configloader.LoadConfiguration("unexistent", "")
	assert.NoError(t, err)
	assert.Equal(t, "error", configuration.LogLevel)
}

func TestLoadConfigurationFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launcher.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL: info\n"), 0644))

	configuration, err := configloader.LoadConfiguration("unexistent", path)
	assert.NoError(t, err)
	assert.Equal(t, "info", configuration.LogLevel)
	assert.Equal(t, logrus.InfoLevel, configuration.Level())
}

func TestLoadMissingConfigurationFile(t *testing.T) {
	configuration, err := configloader.LoadConfiguration("unexistent", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, "error", configuration.LogLevel)
}

func TestLoadMalformedConfigurationFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launcher.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL: [unterminated\n"), 0644))

	_, err := configloader.LoadConfiguration("unexistent", path)
	assert.Error(t, err)
}

func TestInvalidLevelFallsBack(t *testing.T) {
	configuration := configloader.Config{LogLevel: "loud"}
	assert.Equal(t, logrus.ErrorLevel, configuration.Level())
}

func TestSystemSearchPathsExcludeWorkingDirectory(t *testing.T) {
	searchPaths := configloader.SystemSearchPaths("applauncher")
	assert.Equal(t, []string{
		filepath.Join(string(filepath.Separator), "etc", "applauncher"),
		filepath.Join("$HOME", ".applauncher"),
	}, searchPaths)
	assert.NotContains(t, searchPaths, ".")
}

// A config.yaml in the working directory is read only when "." is searched
func TestLoadConfigurationFromIgnoresWorkingDirectory(t *testing.T) {
	workingDirectory := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(workingDirectory, "config.yaml"), []byte("LOG_LEVEL: debug\n"), 0644))
	originalDirectory, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err = os.Chdir(workingDirectory); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(originalDirectory) })
	t.Setenv("HOME", t.TempDir())

	configuration, err := configloader.LoadConfigurationFrom("unexistent", "", configloader.SystemSearchPaths("unexistent"))
	assert.NoError(t, err)
	assert.Equal(t, "error", configuration.LogLevel)

	configuration, err = configloader.LoadConfiguration("unexistent", "")
	assert.NoError(t, err)
	assert.Equal(t, "debug", configuration.LogLevel)
}

func TestLoadConfigurationFromSearchPath(t *testing.T) {
	searchPath := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(searchPath, "config.yaml"), []byte("LOG_LEVEL: warn\n"), 0644))

	configuration, err := configloader.LoadConfigurationFrom("unexistent", "", []string{searchPath})
	assert.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, configuration.Level())
}

// A malformed file still yields defaults and environment
func TestLoadMalformedConfigurationKeepsEnvironment(t *testing.T) {
	searchPath := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(searchPath, "config.yaml"), []byte("LOG_LEVEL: [oops\n"), 0644))
	t.Setenv("UNEXISTENT_LOG_LEVEL", "info")

	configuration, err := configloader.LoadConfigurationFrom("unexistent", "", []string{searchPath})
	assert.Error(t, err)
	assert.Equal(t, "info", configuration.LogLevel)
}
