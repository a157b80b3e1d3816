// Command bundle-launcher replaces itself with ../Libraries/main. The program
// receives only its own path as argument.
package main

import "arkhive.dev/applauncher/internal/launcher"

func main() {
	launcher.Main(launcher.SingleSelfPathOnly)
}
