// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sysdeps version %s\n", Version)
			fmt.Fprintln(out, "System dependency installer")
			fmt.Fprintln(out, "https://github.com/arc-language/sysdeps")
		},
	}
}
