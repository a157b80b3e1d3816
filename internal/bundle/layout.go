package bundle

import (
	"path/filepath"

	"arkhive.dev/applauncher/internal/launcher"
)

// Layout holds the paths of an assembled bundle.
type Layout struct {
	Root       string // <out>/<Name>.app
	Contents   string
	Launcher   string // Contents/MacOS/<executable>
	Target     string // where the launcher will look for the real program
	InfoPlist  string
	Executable string
}

// NewLayout derives bundle paths. Target follows launcher.TargetRelativePath
// so the stub and the bundle agree on where the program lives.
func NewLayout(appPath string, executable string) Layout {
	contents := filepath.Join(appPath, "Contents")
	launcherPath := filepath.Join(contents, "MacOS", executable)
	return Layout{
		Root:       appPath,
		Contents:   contents,
		Launcher:   launcherPath,
		Target:     filepath.Join(filepath.Dir(launcherPath), filepath.FromSlash(launcher.TargetRelativePath)),
		InfoPlist:  filepath.Join(contents, "Info.plist"),
		Executable: executable,
	}
}
