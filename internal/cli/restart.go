package cli

import (
	"context"
	"fmt"

	"github.com/khardy/RWind/internal/continuity"
)

// RestartCmd rebuilds the source and spawns a replacement instance.
// The current process is left running; two instances exist until the
// caller decides otherwise.
type RestartCmd struct {
	NoRecompile bool     `help:"Spawn the replacement without rebuilding first."`
	Invocation  []string `arg:"" optional:"" help:"Invocation override: executable followed by arguments."`
}

// Run executes the restart command.
func (c *RestartCmd) Run(globals *Globals) error {
	opts := continuity.RestartOptions{
		Invocation:  continuity.InvocationVector(c.Invocation),
		Recompile:   globals.Config.Restart.Recompile && !c.NoRecompile,
		Collections: globals.Config.Build.Collections,
	}
	if opts.Recompile {
		opts.Rebuilder = newRebuilder(globals)
	}

	handle, err := continuity.Restart(context.Background(), globals.Sink.Named("continuity"), opts)
	if err != nil {
		return outputError(globals, "RESTART_FAILED", err.Error())
	}

	fmt.Fprintf(globals.Stdout, "spawned replacement pid %d\n", handle.PID)
	return handle.Detach()
}
