package cli

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/khardy/RWind/internal/config"
)

// ConfigCmd groups configuration inspection commands.
type ConfigCmd struct {
	Show ConfigShowCmd `cmd:"" help:"Print the effective configuration."`
	Path ConfigPathCmd `cmd:"" help:"Print the discovered config file path."`
}

// ConfigShowCmd prints the effective configuration.
type ConfigShowCmd struct{}

// Run executes the config show command.
func (c *ConfigShowCmd) Run(globals *Globals) error {
	cfg := globals.Config

	fmt.Fprintln(globals.Stdout, "Current Configuration:")
	fmt.Fprintf(globals.Stdout, "  debug: %t\n", cfg.Debug)
	fmt.Fprintf(globals.Stdout, "  display: %s\n", lo.CoalesceOrEmpty(cfg.Display, "(from $DISPLAY)"))
	fmt.Fprintln(globals.Stdout, "Build:")
	fmt.Fprintf(globals.Stdout, "  tool: %s\n", cfg.Build.Tool)
	fmt.Fprintf(globals.Stdout, "  dir: %s\n", lo.CoalesceOrEmpty(cfg.Build.Dir, "(current directory)"))
	fmt.Fprintf(globals.Stdout, "  collections: %s\n", strings.Join(cfg.Build.Collections, " "))
	fmt.Fprintln(globals.Stdout, "Restart:")
	fmt.Fprintf(globals.Stdout, "  recompile: %t\n", cfg.Restart.Recompile)
	return nil
}

// ConfigPathCmd prints the discovered config file path.
type ConfigPathCmd struct{}

// Run executes the config path command.
func (c *ConfigPathCmd) Run(globals *Globals) error {
	path := config.ConfigFile()
	if path == "" {
		fmt.Fprintln(globals.Stdout, "No configuration file found")
		return nil
	}
	fmt.Fprintf(globals.Stdout, "Config file: %s\n", path)
	return nil
}
