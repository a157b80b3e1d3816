package launcher

// Replacer substitutes the current process image. Replace returns only when
// the replacement failed.
type Replacer interface {
	Replace(path string, argv []string, env []string) error
}

// ReplacerFunc adapts a plain function to the Replacer interface.
type ReplacerFunc func(path string, argv []string, env []string) error

func (f ReplacerFunc) Replace(path string, argv []string, env []string) error {
	return f(path, argv, env)
}
