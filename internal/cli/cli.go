// Package cli wires the rwind commands together: the long-running
// window manager entry point plus the one-shot continuity and
// configuration commands.
package cli

import (
	"io"
	"os"

	"github.com/khardy/RWind/internal/config"
	"github.com/khardy/RWind/internal/continuity"
	"github.com/khardy/RWind/internal/diag"
)

// CLI is the top-level kong command tree.
type CLI struct {
	Debug   bool   `help:"Enable debug diagnostics and synchronous protocol mode." default:"${config_debug}"`
	Display string `help:"Display endpoint (unix:/path, :N, host:N). Overrides $DISPLAY." default:"${config_display}"`

	Run       RunCmd       `cmd:"" default:"1" help:"Connect to the display server and run the window manager."`
	Restart   RestartCmd   `cmd:"" help:"Rebuild the source and spawn a replacement instance."`
	Recompile RecompileCmd `cmd:"" help:"Rebuild the configured source collections."`
	Config    ConfigCmd    `cmd:"" help:"Inspect configuration."`
	Version   VersionCmd   `cmd:"" help:"Print version information."`
}

// Globals carries shared command state: flag values with config
// fallbacks, output streams, and the diagnostic sink.
type Globals struct {
	Debug   bool
	Display string
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *config.Config
	Sink    *diag.Sink
}

// NewGlobalsWithConfig builds Globals from parsed flags and loaded
// configuration.
func NewGlobalsWithConfig(c *CLI, cfg *config.Config) *Globals {
	return &Globals{
		Debug:   c.Debug,
		Display: c.Display,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  cfg,
		Sink:    diag.NewSink("rwind", c.Debug),
	}
}

// newRebuilder constructs the configured source rebuilder.
func newRebuilder(globals *Globals) *continuity.Rebuilder {
	opts := []continuity.RebuilderOption{}
	if globals.Config.Build.Dir != "" {
		opts = append(opts, continuity.WithDir(globals.Config.Build.Dir))
	}
	return continuity.NewRebuilder(globals.Config.Build.Tool, globals.Sink.Named("continuity"), opts...)
}
