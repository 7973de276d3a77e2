// Package continuity rebuilds the program from source and launches a
// replacement instance that preserves the original invocation. Nothing
// here terminates the running process: after a successful spawn two
// instances run until the caller separately decides to exit.
package continuity

import "sync"

// InvocationVector is the immutable argument vector captured at
// process start: executable path followed by the original arguments.
type InvocationVector []string

var (
	invocationOnce sync.Once
	invocation     InvocationVector
	invocationErr  error
)

// CaptureInvocation reads the OS record of the current process's
// argument vector. The first call computes and caches the vector;
// subsequent calls return the cached value unchanged. Callers receive
// a defensive copy.
func CaptureInvocation() (InvocationVector, error) {
	invocationOnce.Do(func() {
		invocation, invocationErr = readInvocation()
	})
	if invocationErr != nil {
		return nil, invocationErr
	}
	out := make(InvocationVector, len(invocation))
	copy(out, invocation)
	return out, nil
}
