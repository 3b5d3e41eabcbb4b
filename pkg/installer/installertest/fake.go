// Package installertest provides a scripted Runner for installer tests.
package installertest

import (
	"context"
	"fmt"
	"strings"

	"github.com/arc-language/sysdeps/pkg/installer"
)

// FakeRunner answers commands from a script and records every call.
// Commands without a scripted answer fail as if the executable were missing.
type FakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   [][]string
}

// NewFakeRunner returns an empty script
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		outputs: make(map[string]string),
		errs:    make(map[string]error),
	}
}

// On scripts the output of argv, given as a space-joined line
func (f *FakeRunner) On(argv string, output string) *FakeRunner {
	f.outputs[argv] = output
	return f
}

// Fail scripts argv to return err
func (f *FakeRunner) Fail(argv string, err error) *FakeRunner {
	f.errs[argv] = err
	return f
}

// Run implements installer.Runner
func (f *FakeRunner) Run(_ context.Context, argv []string) (string, error) {
	f.calls = append(f.calls, append([]string(nil), argv...))
	key := strings.Join(argv, " ")
	if err, ok := f.errs[key]; ok {
		return "", err
	}
	if out, ok := f.outputs[key]; ok {
		return out, nil
	}
	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", argv[0])
}

// Runner returns f.Run as an installer.Runner
func (f *FakeRunner) Runner() installer.Runner {
	return f.Run
}

// Calls returns every argv seen so far
func (f *FakeRunner) Calls() [][]string {
	return f.calls
}

// Called reports whether argv (space-joined) was run
func (f *FakeRunner) Called(argv string) bool {
	for _, c := range f.calls {
		if strings.Join(c, " ") == argv {
			return true
		}
	}
	return false
}

// Config returns an installer config using this runner
func (f *FakeRunner) Config(goos, goarch string) *installer.Config {
	return &installer.Config{Runner: f.Run, OS: goos, Arch: goarch}
}
