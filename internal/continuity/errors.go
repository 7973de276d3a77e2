package continuity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyInvocation is returned by Spawn when the invocation vector
// has no executable.
var ErrEmptyInvocation = errors.New("continuity: empty invocation vector")

// BuildError reports a failed recompilation. Recoverable: the running
// process continues on the old code.
type BuildError struct {
	Tool        string
	Collections []string
	Output      string
	Err         error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("continuity: %s build of %s failed: %v",
		e.Tool, strings.Join(e.Collections, " "), e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// ExecutableNotFoundError reports an unresolvable executable path.
// Recoverable: the caller process is unaffected.
type ExecutableNotFoundError struct {
	Path string
	Err  error
}

func (e *ExecutableNotFoundError) Error() string {
	return fmt.Sprintf("continuity: executable %q not found: %v", e.Path, e.Err)
}

func (e *ExecutableNotFoundError) Unwrap() error { return e.Err }

// SpawnError reports an OS-level process creation failure such as
// resource exhaustion or permission denial. Recoverable: the caller
// process is unaffected.
type SpawnError struct {
	Path string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("continuity: spawning %q failed: %v", e.Path, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }
