// internal/cli/info.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show platform and installer versions",
		Long:  `Display the detected platform and the version of every installer registered for it.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.manager()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Platform: %s\n", m.Platform())
			fmt.Fprintf(out, "OS: %s\n", m.OS())
			if version, err := m.OSVersion(); err == nil && version != "" {
				fmt.Fprintf(out, "OS version: %s\n", version)
			}
			fmt.Fprintf(out, "Installers:\n")
			for _, line := range m.Describe(cmd.Context()) {
				fmt.Fprintf(out, "  %s\n", line)
			}
			return nil
		},
	}
}
