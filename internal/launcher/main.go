package launcher

import (
	"io"
	"os"

	"arkhive.dev/applauncher/internal/configloader"
)

// Name of the launcher application. Used to load the configuration.
const APPLICATION_NAME = "applauncher"

// NewConfiguredLauncher returns a system Launcher whose log level comes from
// /etc/applauncher, $HOME/.applauncher and APPLAUNCHER_* variables. The
// working directory belongs to the launched program and is never searched.
// Configuration errors are only reported at debug level.
func NewConfiguredLauncher(policy ArgPolicy, stderr io.Writer) *Launcher {
	configuration, err := configloader.LoadConfigurationFrom(APPLICATION_NAME, "", configloader.SystemSearchPaths(APPLICATION_NAME))
	logger := NewLogger(stderr, configuration.Level())
	if err != nil {
		logger.WithError(err).Debug("Ignoring launcher configuration")
	}
	instance := NewLauncher(policy, logger)
	instance.Stderr = stderr
	return instance
}

// Main runs a launcher with the given policy and exits. It returns only when
// the process could not be replaced.
func Main(policy ArgPolicy) {
	os.Exit(NewConfiguredLauncher(policy, os.Stderr).Run(os.Args))
}
