package continuity

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khardy/RWind/internal/diag"
)

// writeStubTool writes an executable script that records its arguments
// and exits with the given status.
func writeStubTool(t *testing.T, dir, name, script string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestRebuilderRecompile(t *testing.T) {
	t.Run("success returns nil and logs the collections", func(t *testing.T) {
		dir := t.TempDir()
		tool := writeStubTool(t, dir, "buildtool", "#!/bin/sh\nexit 0\n")

		var buf bytes.Buffer
		sink := diag.NewSink("continuity", true, diag.WithWriter(&buf))
		r := NewRebuilder(tool, sink, WithClock(clock.NewMock()))

		err := r.Recompile(context.Background(), "./cmd/...", "./internal/...")
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "recompiled ./cmd/... ./internal/...")
	})

	t.Run("failure returns a build error with the cause logged", func(t *testing.T) {
		dir := t.TempDir()
		tool := writeStubTool(t, dir, "buildtool",
			"#!/bin/sh\necho 'collection does not compile' >&2\nexit 1\n")

		var buf bytes.Buffer
		sink := diag.NewSink("continuity", true, diag.WithWriter(&buf))
		r := NewRebuilder(tool, sink)

		err := r.Recompile(context.Background(), "./...")

		var buildErr *BuildError
		require.ErrorAs(t, err, &buildErr)
		assert.Equal(t, tool, buildErr.Tool)
		assert.Equal(t, []string{"./..."}, buildErr.Collections)
		assert.Contains(t, buildErr.Output, "collection does not compile")
		assert.Contains(t, buf.String(), "recompile failed")
		assert.Contains(t, buf.String(), "collection does not compile")
	})

	t.Run("defaults to building everything", func(t *testing.T) {
		dir := t.TempDir()
		argsFile := filepath.Join(dir, "args")
		tool := writeStubTool(t, dir, "buildtool",
			"#!/bin/sh\necho \"$@\" > "+argsFile+"\nexit 0\n")

		r := NewRebuilder(tool, diag.NewSink("continuity", false))
		require.NoError(t, r.Recompile(context.Background()))

		args, err := os.ReadFile(argsFile)
		require.NoError(t, err)
		assert.Equal(t, "build ./...\n", string(args))
	})

	t.Run("base args are overridable", func(t *testing.T) {
		dir := t.TempDir()
		argsFile := filepath.Join(dir, "args")
		tool := writeStubTool(t, dir, "buildtool",
			"#!/bin/sh\necho \"$@\" > "+argsFile+"\nexit 0\n")

		r := NewRebuilder(tool, diag.NewSink("continuity", false),
			WithBuildArgs("install", "-v"))
		require.NoError(t, r.Recompile(context.Background(), "./cmd/rwind"))

		args, err := os.ReadFile(argsFile)
		require.NoError(t, err)
		assert.Equal(t, "install -v ./cmd/rwind\n", string(args))
	})

	t.Run("runs in the configured directory", func(t *testing.T) {
		dir := t.TempDir()
		workDir := t.TempDir()
		cwdFile := filepath.Join(dir, "cwd")
		tool := writeStubTool(t, dir, "buildtool",
			"#!/bin/sh\npwd > "+cwdFile+"\nexit 0\n")

		r := NewRebuilder(tool, diag.NewSink("continuity", false), WithDir(workDir))
		require.NoError(t, r.Recompile(context.Background()))

		cwd, err := os.ReadFile(cwdFile)
		require.NoError(t, err)
		resolved, _ := filepath.EvalSymlinks(workDir)
		got, _ := filepath.EvalSymlinks(string(bytes.TrimSpace(cwd)))
		assert.Equal(t, resolved, got)
	})

	t.Run("missing tool is a build error", func(t *testing.T) {
		r := NewRebuilder("/nonexistent/buildtool", diag.NewSink("continuity", false))
		err := r.Recompile(context.Background())

		var buildErr *BuildError
		assert.ErrorAs(t, err, &buildErr)
	})
}

func TestBuildErrorUnwrap(t *testing.T) {
	inner := errors.New("exit status 1")
	err := &BuildError{Tool: "go", Collections: []string{"./..."}, Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "go build of ./... failed")
}
