// internal/cli/install.go
package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arc-language/sysdeps/pkg/shell"
)

func newInstallCmd(a *app) *cobra.Command {
	f := &planFlags{}
	var simulate bool

	cmd := &cobra.Command{
		Use:   "install [package...]",
		Short: "Install one or more packages",
		Long: `Install packages with the configured or OS default installer.
Commands run one at a time and installation stops at the first failure.

Examples:
  sysdeps install zlib1g-dev
  sysdeps install --installer=vcpkg zlib --option=--recurse
  sysdeps install --keys sqlite3 --simulate`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := a.plan(cmd.Context(), f, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(plan) == 0 {
				color.New(color.FgGreen).Fprintln(out, "✓ All packages are installed")
				return nil
			}

			for _, c := range plan {
				color.New(color.FgCyan).Fprintf(out, "+ %s\n", c)
			}
			if simulate {
				return nil
			}

			if err := shell.NewExecutor(cmd.InOrStdin(), out, cmd.ErrOrStderr()).Execute(cmd.Context(), plan); err != nil {
				color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "✗ %v\n", err)
				return err
			}

			color.New(color.FgGreen).Fprintln(out, "✓ Successfully installed")
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().BoolVar(&simulate, "simulate", false, "print the commands without running them")
	return cmd
}
