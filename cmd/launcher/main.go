// Command launcher replaces itself with ../Libraries/main, forwarding its
// arguments.
package main

import "arkhive.dev/applauncher/internal/launcher"

func main() {
	launcher.Main(launcher.ForwardOriginal)
}
