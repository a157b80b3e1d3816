//go:build unix

package launcher

import (
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"
)

// SystemReplacer replaces the process with execve(2). A path without a slash
// is searched on PATH first, like execvp(3).
type SystemReplacer struct{}

func (SystemReplacer) Replace(path string, argv []string, env []string) error {
	binary := path
	if !strings.Contains(path, "/") {
		found, err := exec.LookPath(path)
		if err != nil {
			return &ExecError{Path: path, Err: err}
		}
		binary = found
	}
	if err := unix.Exec(binary, argv, env); err != nil {
		return &ExecError{Path: binary, Err: err}
	}
	return nil
}
