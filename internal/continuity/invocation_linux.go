//go:build linux

package continuity

import (
	"fmt"
	"os"
	"strings"
)

// cmdlinePath is the kernel's record of this process's argument
// vector, NUL-separated.
const cmdlinePath = "/proc/self/cmdline"

func readInvocation() (InvocationVector, error) {
	raw, err := os.ReadFile(cmdlinePath)
	if err != nil {
		return nil, fmt.Errorf("continuity: reading %s: %w", cmdlinePath, err)
	}

	trimmed := strings.TrimSuffix(string(raw), "\x00")
	if trimmed == "" {
		return nil, fmt.Errorf("continuity: empty argument vector in %s", cmdlinePath)
	}

	// Interior NULs delimit arguments; empty arguments are preserved.
	return InvocationVector(strings.Split(trimmed, "\x00")), nil
}
