// internal/cli/update.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/sysdeps/pkg/index"
)

func newUpdateCmd(a *app) *cobra.Command {
	var url string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the dependency rules",
		Long:  `Clone the rules repository and replace the local rules directory.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				url = a.config.RulesURL
			}
			if a.config.RulesPath == "" {
				return fmt.Errorf("rules path is not configured")
			}
			return index.NewSyncer(url, a.logger).Sync(cmd.Context(), a.config.RulesPath)
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "rules repository (default from config)")
	return cmd
}
