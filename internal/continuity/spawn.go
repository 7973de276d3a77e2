package continuity

import (
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/khardy/RWind/internal/diag"
)

// ChildProcessHandle references a spawned replacement instance. The
// caller owns it and is responsible for reaping or detaching the
// child. The stream fields are the inherited standard streams.
type ChildProcessHandle struct {
	PID     int
	Process *os.Process
	Stdin   *os.File
	Stdout  *os.File
	Stderr  *os.File
}

// Detach releases the handle without waiting for the child.
func (h *ChildProcessHandle) Detach() error {
	return h.Process.Release()
}

// Spawn creates a new OS process from invocation[0] with the remaining
// elements as arguments, inheriting the caller's standard streams. It
// returns as soon as process creation completes: no wait, and no
// cancellation once issued. Failures leave the caller running and
// unaffected: an unresolvable path yields *ExecutableNotFoundError,
// an OS-level start failure *SpawnError.
func Spawn(sink *diag.Sink, invocation InvocationVector) (*ChildProcessHandle, error) {
	if len(invocation) == 0 {
		return nil, ErrEmptyInvocation
	}

	path, err := exec.LookPath(invocation[0])
	if err != nil {
		return nil, &ExecutableNotFoundError{Path: invocation[0], Err: err}
	}

	cmd := exec.Command(path, invocation[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{Path: path, Err: err}
	}

	sink.Debugf("spawned %s as pid %d", quoteInvocation(invocation), cmd.Process.Pid)

	return &ChildProcessHandle{
		PID:     cmd.Process.Pid,
		Process: cmd.Process,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}, nil
}

func quoteInvocation(invocation InvocationVector) string {
	quoted := lo.Map(invocation, func(arg string, _ int) string {
		return strconv.Quote(arg)
	})
	return strings.Join(quoted, " ")
}
