package launcher

import "fmt"

// ArgPolicy selects which argument vector the target program receives.
type ArgPolicy int

const (
	// ForwardOriginal passes the caller's arguments through, with slot 0
	// rewritten to the resolved target path.
	ForwardOriginal ArgPolicy = iota
	// SingleSelfPathOnly drops the caller's arguments. The target receives
	// only its own path.
	SingleSelfPathOnly
)

func (policy ArgPolicy) String() string {
	switch policy {
	case ForwardOriginal:
		return "forward"
	case SingleSelfPathOnly:
		return "single"
	}
	return fmt.Sprintf("ArgPolicy(%d)", int(policy))
}

// ParseArgPolicy accepts the names returned by ArgPolicy.String.
func ParseArgPolicy(name string) (ArgPolicy, error) {
	switch name {
	case "forward":
		return ForwardOriginal, nil
	case "single":
		return SingleSelfPathOnly, nil
	}
	return 0, fmt.Errorf("unknown argument policy %q", name)
}

// BuildArgv returns the argument vector for the target. The original slice is
// never modified.
func BuildArgv(policy ArgPolicy, target string, original []string) []string {
	if policy == SingleSelfPathOnly || len(original) <= 1 {
		return []string{target}
	}
	argv := make([]string, len(original))
	argv[0] = target
	copy(argv[1:], original[1:])
	return argv
}
