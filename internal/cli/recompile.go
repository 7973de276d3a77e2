package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/khardy/RWind/internal/continuity"
)

// RecompileCmd rebuilds the configured source collections without
// spawning anything.
type RecompileCmd struct {
	Collections []string `arg:"" optional:"" help:"Source collections to rebuild (defaults from config)."`
}

// Run executes the recompile command.
func (c *RecompileCmd) Run(globals *Globals) error {
	collections := c.Collections
	if len(collections) == 0 {
		collections = globals.Config.Build.Collections
	}

	r := newRebuilder(globals)
	if err := r.Recompile(context.Background(), collections...); err != nil {
		var buildErr *continuity.BuildError
		if errors.As(err, &buildErr) && buildErr.Output != "" {
			fmt.Fprint(globals.Stderr, buildErr.Output)
		}
		return outputError(globals, "BUILD_FAILED", err.Error())
	}

	fmt.Fprintf(globals.Stdout, "recompiled %s\n", strings.Join(collections, " "))
	return nil
}
