package continuity

import (
	"context"
	"os/exec"
	"strings"

	"github.com/benbjohnson/clock"

	"github.com/khardy/RWind/internal/diag"
)

// defaultCollections is built when the caller names none.
var defaultCollections = []string{"./..."}

// Rebuilder invokes the host build tool against named source
// collections. Recompilation is synchronous and unbounded; callers
// wanting responsiveness schedule it off any latency-sensitive loop.
type Rebuilder struct {
	tool  string
	args  []string
	dir   string
	sink  *diag.Sink
	clock clock.Clock
}

// RebuilderOption configures a Rebuilder.
type RebuilderOption func(*Rebuilder)

// WithBuildArgs overrides the base arguments passed before the
// collections (default "build").
func WithBuildArgs(args ...string) RebuilderOption {
	return func(r *Rebuilder) {
		r.args = args
	}
}

// WithDir sets the working directory for the build tool.
func WithDir(dir string) RebuilderOption {
	return func(r *Rebuilder) {
		r.dir = dir
	}
}

// WithClock substitutes the clock, used by tests.
func WithClock(c clock.Clock) RebuilderOption {
	return func(r *Rebuilder) {
		r.clock = c
	}
}

// NewRebuilder builds a Rebuilder around the given tool. An empty tool
// selects the Go toolchain.
func NewRebuilder(tool string, sink *diag.Sink, opts ...RebuilderOption) *Rebuilder {
	if tool == "" {
		tool = "go"
	}
	r := &Rebuilder{
		tool:  tool,
		args:  []string{"build"},
		sink:  sink,
		clock: clock.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Recompile rebuilds the named source collections. On failure the
// cause is logged and a *BuildError returned; the running process
// keeps executing its current code. On success the caller may proceed
// to spawn a replacement.
func (r *Rebuilder) Recompile(ctx context.Context, collections ...string) error {
	if len(collections) == 0 {
		collections = defaultCollections
	}

	start := r.clock.Now()
	cmd := exec.CommandContext(ctx, r.tool, append(append([]string(nil), r.args...), collections...)...)
	cmd.Dir = r.dir

	out, err := cmd.CombinedOutput()
	if err != nil {
		buildErr := &BuildError{
			Tool:        r.tool,
			Collections: collections,
			Output:      string(out),
			Err:         err,
		}
		r.sink.Errorf("recompile failed after %s: %v\n%s",
			r.clock.Since(start), err, strings.TrimSpace(string(out)))
		return buildErr
	}

	r.sink.Debugf("recompiled %s in %s", strings.Join(collections, " "), r.clock.Since(start))
	return nil
}
