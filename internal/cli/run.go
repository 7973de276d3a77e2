package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/khardy/RWind/internal/continuity"
	"github.com/khardy/RWind/internal/display"
)

// RunCmd connects to the display server and runs the window manager.
type RunCmd struct{}

// Run executes the run command: open one session, configure it,
// install the error interceptor, then hold the process where the event
// loop runs. Only the initial connection failure is fatal; every later
// failure is reported and the process stays live.
func (c *RunCmd) Run(globals *Globals) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sess, err := c.newSession(globals)
	if err != nil {
		return outputError(globals, "BAD_DISPLAY", err.Error())
	}

	if err := sess.Open(ctx); err != nil {
		// Fatal by convention: without a server handle there is nothing
		// to manage.
		return outputError(globals, "CONNECT_FAILED", err.Error())
	}
	defer sess.Close()

	if err := sess.Configure(globals.Debug); err != nil {
		return outputError(globals, "CONFIGURE_FAILED", err.Error())
	}

	interceptor := display.NewInterceptor(globals.Sink.Named("xerror"))
	if err := sess.InstallErrorHandler(interceptor.Handler()); err != nil {
		return outputError(globals, "HANDLER_FAILED", err.Error())
	}

	globals.Sink.Debugf("session %s ready on %s (synchronous=%t)", sess.ID(), sess.Endpoint(), sess.Synchronous())

	return c.waitForSignals(ctx, globals)
}

func (c *RunCmd) newSession(globals *Globals) (*display.Session, error) {
	opts := []display.SessionOption{}
	if globals.Display != "" {
		ep, err := display.ResolveEndpoint(globals.Display)
		if err != nil {
			return nil, err
		}
		opts = append(opts, display.WithEndpoint(ep))
	}
	return display.NewSession(globals.Sink.Named("display"), opts...), nil
}

// waitForSignals blocks in place of the event loop. SIGHUP triggers
// the continuity flow: recompile, spawn a replacement, then exit by
// this command's own decision. SIGINT/SIGTERM shut down.
func (c *RunCmd) waitForSignals(ctx context.Context, globals *Globals) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigCh)

	for sig := range sigCh {
		if sig != syscall.SIGHUP {
			globals.Sink.Debugf("received %s, shutting down", sig)
			return nil
		}

		opts := continuity.RestartOptions{
			Recompile:   globals.Config.Restart.Recompile,
			Collections: globals.Config.Build.Collections,
		}
		if opts.Recompile {
			opts.Rebuilder = newRebuilder(globals)
		}

		handle, err := continuity.Restart(ctx, globals.Sink.Named("continuity"), opts)
		if err != nil {
			// Recoverable: keep running on the current code.
			reportError(globals, "RESTART_FAILED", err.Error())
			continue
		}

		fmt.Fprintf(globals.Stdout, "replacement instance running as pid %d\n", handle.PID)
		if err := handle.Detach(); err != nil {
			reportError(globals, "DETACH_FAILED", err.Error())
		}
		return nil
	}
	return nil
}
