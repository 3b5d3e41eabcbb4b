// pkg/installer/types.go
package installer

import (
	"context"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Runner executes argv and returns its captured standard output.
// A non-zero exit is reported as an error.
type Runner func(ctx context.Context, argv []string) (string, error)

// DetectFunc returns the subset of names installed on the host,
// in the order they were given.
type DetectFunc func(ctx context.Context, names []string, run Runner) []string

// PackageSpec is a resolved native package for one installer
type PackageSpec struct {
	Name    string   // Native identifier, may embed a version pin (e.g. "foo=1.0")
	Options []string // Flags appended to the install command
}

// NewPackageSpec creates a PackageSpec, copying opts
func NewPackageSpec(name string, opts ...string) PackageSpec {
	spec := PackageSpec{Name: name}
	if len(opts) > 0 {
		spec.Options = append([]string(nil), opts...)
	}
	return spec
}

// Specs builds option-less specs from plain names
func Specs(names ...string) []PackageSpec {
	specs := make([]PackageSpec, 0, len(names))
	for _, name := range names {
		specs = append(specs, PackageSpec{Name: name})
	}
	return specs
}

// Names returns the names of specs in order
func Names(specs []PackageSpec) []string {
	names := make([]string, 0, len(specs))
	for _, s := range specs {
		names = append(names, s.Name)
	}
	return names
}

// Command is a single command vector: executable followed by arguments
type Command []string

// String renders the command as a shell-quoted line
func (c Command) String() string {
	parts := make([]string, 0, len(c))
	for _, arg := range c {
		quoted, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			quoted = arg
		}
		parts = append(parts, quoted)
	}
	return strings.Join(parts, " ")
}

// Plan is the ordered list of commands produced for one planning call
type Plan []Command

// Strings renders each command of the plan
func (p Plan) Strings() []string {
	lines := make([]string, 0, len(p))
	for _, c := range p {
		lines = append(lines, c.String())
	}
	return lines
}

// PlanOptions configures plan generation
type PlanOptions struct {
	Reinstall   bool // Plan every package regardless of current presence
	Interactive bool // Let the manager prompt (ignored by some managers)
	Quiet       bool // Reduce manager output (ignored by some managers)
}
