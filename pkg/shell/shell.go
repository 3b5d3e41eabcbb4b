// pkg/shell/shell.go
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/arc-language/sysdeps/pkg/installer"
)

// ReadStdout runs argv and returns its standard output.
// It is the default installer.Runner.
func ReadStdout(ctx context.Context, argv []string) (string, error) {
	if len(argv) == 0 {
		return "", errors.New("empty command")
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		return "", fmt.Errorf("locating %s: %w", argv[0], err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, argv[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return stdout.String(), fmt.Errorf("running %s: %w: %s", argv[0], err, msg)
		}
		return stdout.String(), fmt.Errorf("running %s: %w", argv[0], err)
	}

	return stdout.String(), nil
}

var _ installer.Runner = ReadStdout

// CommandError reports which step of a plan failed
type CommandError struct {
	Step    int
	Command installer.Command
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Step+1, e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Executor runs plans one command at a time
type Executor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// start builds the process for a command; replaced in tests
	start func(ctx context.Context, c installer.Command) *exec.Cmd
}

// NewExecutor creates an executor wired to the given streams
func NewExecutor(stdin io.Reader, stdout, stderr io.Writer) *Executor {
	return &Executor{Stdin: stdin, Stdout: stdout, Stderr: stderr}
}

// Execute runs each command of plan in order and stops at the first
// failure. Commands already run are not rolled back.
func (e *Executor) Execute(ctx context.Context, plan installer.Plan) error {
	for i, c := range plan {
		if len(c) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return &CommandError{Step: i, Command: c, Err: err}
		}

		cmd := e.command(ctx, c)
		if err := cmd.Run(); err != nil {
			return &CommandError{Step: i, Command: c, Err: err}
		}
	}
	return nil
}

func (e *Executor) command(ctx context.Context, c installer.Command) *exec.Cmd {
	if e.start != nil {
		return e.start(ctx, c)
	}
	cmd := exec.CommandContext(ctx, c[0], c[1:]...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	return cmd
}
