package cli

import "fmt"

// Version information, set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
)

// VersionCmd prints version information.
type VersionCmd struct{}

// Run executes the version command.
func (c *VersionCmd) Run(globals *Globals) error {
	fmt.Fprintf(globals.Stdout, "rwind %s (%s)\n", Version, Commit)
	return nil
}
