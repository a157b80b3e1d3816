// Package bundle assembles and checks the application bundle layout the
// launcher expects: the stub in Contents/MacOS and the real program in
// Contents/Libraries.
package bundle

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"arkhive.dev/applauncher/internal/launcher"
	"github.com/sirupsen/logrus"
)

var ErrBundleExists = errors.New("bundle already exists")

// Build assembles <outDir>/<Name>.app from the recipe.
func Build(recipe Recipe, outDir string, force bool) (layout Layout, err error) {
	layout = NewLayout(filepath.Join(outDir, recipe.Name+".app"), recipe.Executable)

	if _, err = os.Stat(layout.Root); err == nil {
		if !force {
			return layout, fmt.Errorf("%s: %w", layout.Root, ErrBundleExists)
		}
		logrus.Infof("Removing existing bundle %s", layout.Root)
		if err = os.RemoveAll(layout.Root); err != nil {
			return
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return
	}

	for _, directory := range []string{filepath.Dir(layout.Launcher), filepath.Dir(layout.Target)} {
		if err = os.MkdirAll(directory, 0755); err != nil {
			return
		}
	}
	logrus.Debugf("Copying launcher %s to %s", recipe.Launcher, layout.Launcher)
	if err = copyExecutable(recipe.Launcher, layout.Launcher); err != nil {
		return
	}
	logrus.Debugf("Copying main %s to %s", recipe.Main, layout.Target)
	if err = copyExecutable(recipe.Main, layout.Target); err != nil {
		return
	}
	if err = writeInfoPlist(layout.InfoPlist, InfoPlist(recipe)); err != nil {
		return
	}
	logrus.Infof("Bundle %s assembled", layout.Root)
	return
}

func copyExecutable(source, destination string) (err error) {
	var input *os.File
	if input, err = os.Open(source); err != nil {
		return
	}
	defer input.Close()

	var output *os.File
	if output, err = os.OpenFile(destination, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0755); err != nil {
		return
	}
	if _, err = io.Copy(output, input); err != nil {
		output.Close()
		return fmt.Errorf("cannot copy %s: %w", source, err)
	}
	if err = output.Close(); err != nil {
		return
	}
	return os.Chmod(destination, 0755)
}

// Problem is a defect found by Verify.
type Problem struct {
	Path    string
	Message string
}

func (problem Problem) String() string {
	return problem.Path + ": " + problem.Message
}

// Verify checks that the launcher inside appPath will find an executable
// target. A nil problem list means the bundle is usable.
func Verify(appPath string) (problems []Problem, err error) {
	layout := NewLayout(appPath, "")
	var info map[string]interface{}
	if info, err = readInfoPlist(layout.InfoPlist); err != nil {
		return
	}
	executable, _ := info["CFBundleExecutable"].(string)
	if executable == "" {
		problems = append(problems, Problem{layout.InfoPlist, "CFBundleExecutable is not set"})
		return
	}
	layout = NewLayout(appPath, executable)

	self, err := filepath.Abs(layout.Launcher)
	if err != nil {
		return
	}
	problems = append(problems, checkExecutable(self)...)

	if _, locateError := launcher.LocateSelf(launcher.LocatorFunc(func() (string, error) { return self, nil }), launcher.MaxPathSize); locateError != nil {
		problems = append(problems, Problem{self, locateError.Error()})
	}
	target, resolveError := launcher.ResolveTarget(self, launcher.TargetRelativePath, launcher.MaxPathSize)
	if resolveError != nil {
		problems = append(problems, Problem{self, resolveError.Error()})
		return problems, nil
	}
	problems = append(problems, checkExecutable(target)...)
	return problems, nil
}

func checkExecutable(path string) []Problem {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return []Problem{{path, "missing"}}
	case err != nil:
		return []Problem{{path, err.Error()}}
	case info.IsDir():
		return []Problem{{path, "is a directory"}}
	}
	if info.Mode().Perm()&0111 == 0 {
		return []Problem{{path, "not executable"}}
	}
	return nil
}
