package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/sysdeps/pkg/installer"
)

func requirePosix(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestReadStdout(t *testing.T) {
	requirePosix(t)
	ctx := context.Background()

	out, err := ReadStdout(ctx, []string{"sh", "-c", "echo hello; echo ignored >&2"})
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)

	_, err = ReadStdout(ctx, []string{"sh", "-c", "echo broken >&2; exit 3"})
	assert.ErrorContains(t, err, "exit status 3: broken")

	_, err = ReadStdout(ctx, []string{"sysdeps-no-such-binary"})
	assert.ErrorContains(t, err, "locating sysdeps-no-such-binary")

	_, err = ReadStdout(ctx, nil)
	assert.EqualError(t, err, "empty command")
}

func TestExecuteStopsAtFirstFailure(t *testing.T) {
	requirePosix(t)

	var ran []string
	e := NewExecutor(nil, nil, nil)
	e.start = func(ctx context.Context, c installer.Command) *exec.Cmd {
		ran = append(ran, c.String())
		if c[0] == "fail" {
			return exec.CommandContext(ctx, "sh", "-c", "exit 1")
		}
		return exec.CommandContext(ctx, "sh", "-c", "exit 0")
	}

	plan := installer.Plan{
		{"ok", "first"},
		{},
		{"fail", "second"},
		{"ok", "third"},
	}
	err := e.Execute(context.Background(), plan)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, 2, cmdErr.Step)
	assert.Equal(t, installer.Command{"fail", "second"}, cmdErr.Command)
	assert.Contains(t, err.Error(), "step 3 (fail second)")
	assert.Equal(t, []string{"ok first", "fail second"}, ran)
}

func TestExecuteStreamsOutput(t *testing.T) {
	requirePosix(t)

	var stdout bytes.Buffer
	e := NewExecutor(nil, &stdout, nil)
	err := e.Execute(context.Background(), installer.Plan{
		{"sh", "-c", "echo one"},
		{"sh", "-c", "echo two"},
	})
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", stdout.String())
}

func TestExecuteCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := NewExecutor(nil, nil, nil)
	err := e.Execute(ctx, installer.Plan{{"sh", "-c", "true"}})
	assert.True(t, errors.Is(err, context.Canceled))

	assert.NoError(t, e.Execute(ctx, nil))
}
