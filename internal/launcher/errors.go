package launcher

import "fmt"

// PathResolutionError is returned when the launcher's own path does not fit
// the fixed path buffer.
type PathResolutionError struct {
	Required int
	Capacity int
}

func (e *PathResolutionError) Error() string {
	return fmt.Sprintf("buffer too small; need size %d", e.Required)
}

// PathTooLongError is returned when the joined target path does not fit the
// fixed path buffer.
type PathTooLongError struct {
	Path     string
	Capacity int
}

func (e *PathTooLongError) Error() string {
	return fmt.Sprintf("target path is %d bytes, limit is %d: %s", len(e.Path)+1, e.Capacity, e.Path)
}

// ExecError wraps the operating system error returned by a failed process
// replacement.
type ExecError struct {
	Path string
	Err  error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("exec %s: %v", e.Path, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
