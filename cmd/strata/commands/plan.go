package commands

import (
	"os"

	"github.com/spf13/cobra"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the install plan without building",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			variants, _ := cmd.Flags().GetStringArray("variant")

			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			return c.app.Plan(cwd, variants)
		},
	}
	cmd.Flags().StringArrayP("variant", "v", nil, "Variant to plan (repeatable, default all)")
	return cmd
}
