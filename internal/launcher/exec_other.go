//go:build !unix

package launcher

import "errors"

var errUnsupported = errors.New("process replacement is not supported on this platform")

// SystemReplacer always fails outside unix systems.
type SystemReplacer struct{}

func (SystemReplacer) Replace(path string, _ []string, _ []string) error {
	return &ExecError{Path: path, Err: errUnsupported}
}
