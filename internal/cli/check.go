// internal/cli/check.go
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [package...]",
		Short: "Report packages that are not installed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.manager()
			if err != nil {
				return err
			}

			missing, err := m.Check(cmd.Context(), specsFromArgs(args, nil))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			absent := make(map[string]struct{}, len(missing))
			for _, s := range missing {
				absent[s.Name] = struct{}{}
			}
			for _, name := range args {
				if _, ok := absent[name]; ok {
					color.New(color.FgRed).Fprintf(out, "✗ %s\n", name)
				} else {
					color.New(color.FgGreen).Fprintf(out, "✓ %s\n", name)
				}
			}

			if len(missing) > 0 {
				return fmt.Errorf("%d package(s) missing", len(missing))
			}
			return nil
		},
	}
}
