//go:build !linux

package continuity

import (
	"fmt"
	"os"
)

// Platforms without a procfs argument-vector record fall back to the
// runtime's copy of argv, with the executable path resolved by the OS.
func readInvocation() (InvocationVector, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("continuity: resolving executable path: %w", err)
	}

	vec := make(InvocationVector, 0, len(os.Args))
	vec = append(vec, exe)
	vec = append(vec, os.Args[1:]...)
	return vec, nil
}
