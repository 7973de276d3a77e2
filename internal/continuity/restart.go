package continuity

import (
	"context"

	"github.com/khardy/RWind/internal/diag"
)

// RestartOptions controls the respawn flow.
type RestartOptions struct {
	// Invocation overrides the captured invocation vector when non-empty.
	Invocation InvocationVector

	// Rebuilder, when set together with Recompile, rebuilds the source
	// before spawning.
	Rebuilder *Rebuilder
	Recompile bool

	// Collections are the source collections handed to the Rebuilder.
	Collections []string
}

// Restart launches a replacement instance: capture the original
// invocation, optionally recompile, then spawn. A failed recompile
// aborts before any spawn and the current code keeps running. The
// parent is never terminated here; its exit is the caller's separate
// decision.
func Restart(ctx context.Context, sink *diag.Sink, opts RestartOptions) (*ChildProcessHandle, error) {
	invocation := opts.Invocation
	if len(invocation) == 0 {
		captured, err := CaptureInvocation()
		if err != nil {
			return nil, err
		}
		invocation = captured
	}

	if opts.Recompile && opts.Rebuilder != nil {
		if err := opts.Rebuilder.Recompile(ctx, opts.Collections...); err != nil {
			return nil, err
		}
	}

	return Spawn(sink, invocation)
}
