package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Exit statuses of a launch that did not replace the process.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Launcher hands control to the program at TargetRelativePath next to its
// own executable.
type Launcher struct {
	Policy       ArgPolicy
	RelativePath string
	Capacity     int

	Locator  Locator
	Replacer Replacer
	Environ  func() []string

	// Stderr receives diagnostics that are printed whatever the log level.
	Stderr io.Writer
	Logger *logrus.Logger
}

// NewLauncher returns a Launcher wired to the operating system.
func NewLauncher(policy ArgPolicy, logger *logrus.Logger) *Launcher {
	if logger == nil {
		logger = NewLogger(os.Stderr, logrus.ErrorLevel)
	}
	return &Launcher{
		Policy:       policy,
		RelativePath: TargetRelativePath,
		Capacity:     MaxPathSize,
		Locator:      SystemLocator{},
		Replacer:     SystemReplacer{},
		Environ:      os.Environ,
		Stderr:       os.Stderr,
		Logger:       logger,
	}
}

// NewLogger builds the text logger used by the launcher commands.
func NewLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return logger
}

// Run locates the launcher, resolves the target and replaces the process.
// On the real system a successful launch never returns. The returned value is
// the exit status the caller should terminate with.
func (l *Launcher) Run(args []string) int {
	self, err := LocateSelf(l.Locator, l.Capacity)
	if err != nil {
		var resolutionError *PathResolutionError
		if errors.As(err, &resolutionError) {
			fmt.Fprintf(l.Stderr, "Buffer too small; need size %d\n", resolutionError.Required)
		} else {
			fmt.Fprintf(l.Stderr, "Error locating launcher: %v\n", err)
		}
		return ExitFailure
	}
	l.Logger.WithField("path", self).Debug("Located launcher")

	target, err := ResolveTarget(self, l.RelativePath, l.Capacity)
	if err != nil {
		fmt.Fprintf(l.Stderr, "Error resolving target: %v\n", err)
		return ExitFailure
	}
	argv := BuildArgv(l.Policy, target, args)
	l.Logger.WithFields(logrus.Fields{
		"target": target,
		"policy": l.Policy.String(),
		"argc":   len(argv),
	}).Debug("Replacing process")

	if err = l.Replacer.Replace(target, argv, l.Environ()); err != nil {
		cause := err
		var execError *ExecError
		if errors.As(err, &execError) {
			cause = execError.Err
		}
		fmt.Fprintf(l.Stderr, "Error launching process: %v\n", cause)
		return ExitFailure
	}
	return ExitSuccess
}
