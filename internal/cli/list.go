// internal/cli/list.go
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installers for this OS",
		Long:  `List the installers registered for the detected or selected OS.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.manager()
			if err != nil {
				return err
			}

			keys, err := m.Installers()
			if err != nil {
				return err
			}
			def, err := m.DefaultInstaller()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "OS: %s\n\n", m.OS())
			fmt.Fprintf(out, "Installers:\n")
			bold := color.New(color.FgGreen, color.Bold)
			for _, key := range keys {
				if key == def {
					bold.Fprintf(out, "  * %s\n", key)
					continue
				}
				fmt.Fprintf(out, "    %s\n", key)
			}
			fmt.Fprintf(out, "\n* = default installer\n")
			return nil
		},
	}
}
