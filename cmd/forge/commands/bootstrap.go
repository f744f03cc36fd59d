package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBootstrapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Install cloned packages in a fixed order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sequence, _ := cmd.Flags().GetString("sequence")
			legacy, _ := cmd.Flags().GetBool("legacy-build")
			skip, _ := cmd.Flags().GetBool("skip-installed")
			return c.app.Bootstrap(cmd.Context(), sequence, legacy, skip)
		},
	}
	cmd.Flags().StringP("sequence", "s", "", "Sequence file listing clones and install order")
	cmd.Flags().Bool("legacy-build", false, "Build wheels with setup.py instead of PEP 517")
	cmd.Flags().Bool("skip-installed", false, "Skip packages that are already installed")
	_ = cmd.MarkFlagRequired("sequence")
	return cmd
}
