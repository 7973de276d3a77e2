package continuity

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khardy/RWind/internal/diag"
)

func TestSpawn(t *testing.T) {
	t.Run("resolvable executable yields a live child handle", func(t *testing.T) {
		dir := t.TempDir()
		exe := writeStubTool(t, dir, "replacement", "#!/bin/sh\nexit 0\n")

		start := time.Now()
		handle, err := Spawn(diag.NewSink("continuity", false), InvocationVector{exe, "--flag", "value"})
		elapsed := time.Since(start)

		require.NoError(t, err)
		require.NotNil(t, handle)
		assert.Positive(t, handle.PID)
		assert.NotEqual(t, os.Getpid(), handle.PID)
		assert.NotNil(t, handle.Process)

		// Creation only: no implicit wait on the child.
		assert.Less(t, elapsed, 5*time.Second)

		// Reaping is the caller's job.
		_, err = handle.Process.Wait()
		assert.NoError(t, err)
	})

	t.Run("inherits the caller's standard streams", func(t *testing.T) {
		dir := t.TempDir()
		exe := writeStubTool(t, dir, "replacement", "#!/bin/sh\nexit 0\n")

		handle, err := Spawn(diag.NewSink("continuity", false), InvocationVector{exe})
		require.NoError(t, err)
		defer handle.Process.Wait()

		assert.Same(t, os.Stdin, handle.Stdin)
		assert.Same(t, os.Stdout, handle.Stdout)
		assert.Same(t, os.Stderr, handle.Stderr)
	})

	t.Run("unresolvable path returns executable not found", func(t *testing.T) {
		handle, err := Spawn(diag.NewSink("continuity", false),
			InvocationVector{"rwind-definitely-not-installed"})

		var notFound *ExecutableNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "rwind-definitely-not-installed", notFound.Path)
		assert.Nil(t, handle)
	})

	t.Run("non-executable file returns spawn or lookup failure", func(t *testing.T) {
		dir := t.TempDir()
		plain := filepath.Join(dir, "not-executable")
		require.NoError(t, os.WriteFile(plain, []byte("data"), 0o644))

		handle, err := Spawn(diag.NewSink("continuity", false), InvocationVector{plain})
		assert.Error(t, err)
		assert.Nil(t, handle)
	})

	t.Run("empty invocation is rejected", func(t *testing.T) {
		handle, err := Spawn(diag.NewSink("continuity", false), nil)
		assert.ErrorIs(t, err, ErrEmptyInvocation)
		assert.Nil(t, handle)
	})

	t.Run("detach releases the handle", func(t *testing.T) {
		dir := t.TempDir()
		exe := writeStubTool(t, dir, "replacement", "#!/bin/sh\nexit 0\n")

		handle, err := Spawn(diag.NewSink("continuity", false), InvocationVector{exe})
		require.NoError(t, err)
		assert.NoError(t, handle.Detach())
	})
}

func TestQuoteInvocation(t *testing.T) {
	assert.Equal(t, `"/usr/bin/rwind" "--debug" "arg with space"`,
		quoteInvocation(InvocationVector{"/usr/bin/rwind", "--debug", "arg with space"}))
}
