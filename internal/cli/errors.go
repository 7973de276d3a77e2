package cli

import (
	"errors"
	"fmt"
)

// outputError normalizes error emission across commands.
func outputError(globals *Globals, code, message string) error {
	fmt.Fprintf(globals.Stderr, "Error [%s]: %s\n", code, message)
	return errors.New(message)
}

// reportError emits a recoverable failure without turning it into a
// command error; the process stays live.
func reportError(globals *Globals, code, message string) {
	fmt.Fprintf(globals.Stderr, "Error [%s]: %s\n", code, message)
}
