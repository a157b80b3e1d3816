/*
Package applauncher holds the launcher stubs placed in macOS application
bundles and the tooling that assembles those bundles.

The project has two main source packages:
`cmd`: The launcher stubs and the bundler tool.
`internal`: Private application and library code.

A launcher lives in `Contents/MacOS` and replaces itself with the program at
`Contents/Libraries/main`. `cmd/launcher` forwards its arguments to the
program, `cmd/bundle-launcher` passes only the program path.
*/
package applauncher
