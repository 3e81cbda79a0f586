package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/strata/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the declared environment variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			variants, _ := cmd.Flags().GetStringArray("variant")
			noCache, _ := cmd.Flags().GetBool("no-cache")
			parallelism, _ := cmd.Flags().GetInt("parallelism")

			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			return c.app.Build(cmd.Context(), cwd, app.BuildOptions{
				Variants:    variants,
				NoCache:     noCache,
				Parallelism: parallelism,
			})
		},
	}
	cmd.Flags().StringArrayP("variant", "v", nil, "Variant to build (repeatable, default all)")
	cmd.Flags().BoolP("no-cache", "n", false, "Rebuild even when the stored artifact is up to date")
	cmd.Flags().IntP("parallelism", "p", 0, "Maximum concurrent variant builds (0 for default)")
	return cmd
}
