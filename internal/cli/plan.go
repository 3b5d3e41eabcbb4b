// internal/cli/plan.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/sysdeps"
)

// planFlags are shared by plan and install
type planFlags struct {
	reinstall   bool
	interactive bool
	quiet       bool
	keys        bool
	options     []string
}

func (f *planFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.reinstall, "reinstall", false, "plan packages even when already installed")
	cmd.Flags().BoolVar(&f.interactive, "interactive", false, "let the package manager prompt")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "reduce package manager output")
	cmd.Flags().BoolVar(&f.keys, "keys", false, "treat arguments as dependency keys resolved through the rules")
	cmd.Flags().StringSliceVarP(&f.options, "option", "o", nil, "extra installer argument for every package")
}

func newPlanCmd(a *app) *cobra.Command {
	f := &planFlags{}
	cmd := &cobra.Command{
		Use:   "plan [package...]",
		Short: "Print the commands that would install packages",
		Long: `Print the native commands needed to install the packages that are
not already present. Nothing is printed when everything is installed.

Examples:
  sysdeps plan zlib1g-dev libssl-dev
  sysdeps plan --installer=pip numpy --reinstall
  sysdeps plan --keys sqlite3 zlib`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := a.plan(cmd.Context(), f, args)
			if err != nil {
				return err
			}
			for _, line := range plan.Strings() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func (a *app) plan(ctx context.Context, f *planFlags, args []string) (sysdeps.Plan, error) {
	m, err := a.manager()
	if err != nil {
		return nil, err
	}

	opts := sysdeps.PlanOptions{
		Reinstall:   f.reinstall,
		Interactive: f.interactive || a.config.Interactive,
		Quiet:       f.quiet || a.config.Quiet,
	}
	if f.keys {
		return m.PlanKeys(ctx, args, opts)
	}
	return m.Plan(ctx, specsFromArgs(args, f.options), opts)
}

func specsFromArgs(args, options []string) []sysdeps.PackageSpec {
	specs := make([]sysdeps.PackageSpec, 0, len(args))
	for _, name := range args {
		specs = append(specs, sysdeps.NewPackageSpec(name, options...))
	}
	return specs
}
