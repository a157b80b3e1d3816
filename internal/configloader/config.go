package configloader

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Structure to bind application parameters
type Config struct {
	LogLevel string `mapstructure:"LOG_LEVEL"` // logrus library log level to be assigned
}

// Initialize default parameters values
func initDefaultConfiguration(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "error")
}

// SystemSearchPaths lists the machine and user configuration folders of an
// application: /etc/*appName* and $HOME/.*appName*.
func SystemSearchPaths(applicationName string) []string {
	// Read the volume root path
	root := filepath.VolumeName(".")
	if root == "" {
		root = string(filepath.Separator)
	}
	return []string{
		filepath.Join(root, "etc", applicationName),
		filepath.Join("$HOME", "."+applicationName),
	}
}

// Load configuration from file and environment. Without a file path, config.yaml
// is searched in the system folders and in the current folder.
func LoadConfiguration(applicationName string, configurationFilePath string) (Config, error) {
	return LoadConfigurationFrom(applicationName, configurationFilePath, append(SystemSearchPaths(applicationName), "."))
}

// Load configuration searching config.yaml only in searchPaths. Environment keys
// are prefixed with the upper-cased application name, e.g. APPLAUNCHER_LOG_LEVEL.
// A malformed file is returned as error together with the configuration built
// from defaults and environment.
func LoadConfigurationFrom(applicationName string, configurationFilePath string, searchPaths []string) (config Config, err error) {
	v := viper.New()
	initDefaultConfiguration(v)

	if configurationFilePath == "" {
		for _, searchPath := range searchPaths {
			v.AddConfigPath(searchPath)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	} else {
		// Set the configuration file path
		v.SetConfigFile(configurationFilePath)
	}

	// Get configuration from environment variables, if set
	v.SetEnvPrefix(envPrefix(applicationName))
	v.AutomaticEnv()

	// Get configuration from configuration file, if set
	var configError error
	if configError = v.ReadInConfig(); configError != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(configError, &notFound) || errors.Is(configError, fs.ErrNotExist) {
			logrus.Debug(configError.Error())
			configError = nil
		}
	}
	if err = v.Unmarshal(&config); err != nil {
		return
	}
	err = configError

	return
}

// Level parses the configured level, falling back to error on bad input.
func (config Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level %q, using %s", config.LogLevel, logrus.ErrorLevel)
		return logrus.ErrorLevel
	}
	return level
}

func envPrefix(applicationName string) string {
	return strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(applicationName))
}
