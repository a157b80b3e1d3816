package launcher

import (
	"os"
	"strings"
)

const (
	// MaxPathSize is the capacity of the path buffer, terminating NUL included.
	MaxPathSize = 1024
	// TargetRelativePath locates the real program from the launcher's directory.
	TargetRelativePath = "../Libraries/main"
)

// Locator reports the absolute path of the running executable.
type Locator interface {
	Executable() (string, error)
}

// LocatorFunc adapts a plain function to the Locator interface.
type LocatorFunc func() (string, error)

func (f LocatorFunc) Executable() (string, error) {
	return f()
}

// SystemLocator asks the operating system for the current executable.
type SystemLocator struct{}

func (SystemLocator) Executable() (string, error) {
	return os.Executable()
}

// LocateSelf returns the launcher's own path, failing with a
// *PathResolutionError when it needs more than capacity bytes.
func LocateSelf(locator Locator, capacity int) (string, error) {
	self, err := locator.Executable()
	if err != nil {
		return "", err
	}
	if required := len(self) + 1; required > capacity {
		return "", &PathResolutionError{Required: required, Capacity: capacity}
	}
	return self, nil
}

// ResolveTarget joins the directory of self with rel. The directory follows
// dirname(3) and the result is not cleaned, so "../" segments are kept.
func ResolveTarget(self, rel string, capacity int) (string, error) {
	target := dirname(self) + "/" + rel
	if len(target)+1 > capacity {
		return "", &PathTooLongError{Path: target, Capacity: capacity}
	}
	return target, nil
}

func dirname(path string) string {
	if path == "" {
		return "."
	}
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		return "/"
	}
	index := strings.LastIndex(trimmed, "/")
	if index < 0 {
		return "."
	}
	if parent := strings.TrimRight(trimmed[:index], "/"); parent != "" {
		return parent
	}
	return "/"
}
