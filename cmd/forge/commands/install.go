package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/forge/internal/app"
	"go.trai.ch/forge/internal/core/domain"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install [packages...]",
		Short: "Fetch, build and install packages with their dependencies",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, _ := cmd.Flags().GetStringArray("requirement")
			if len(args) == 0 && len(files) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			upgrade, _ := cmd.Flags().GetBool("upgrade")
			noDeps, _ := cmd.Flags().GetBool("no-deps")
			force, _ := cmd.Flags().GetBool("force-reinstall")
			legacy, _ := cmd.Flags().GetBool("legacy-build")

			prefs := domain.DefaultPrefs().Clone(
				domain.WithUpgrade(upgrade),
				domain.WithResolveDeps(!noDeps),
				domain.WithForceReinstall(force),
			)
			return c.app.Install(cmd.Context(), app.InstallRequest{
				Names:            args,
				RequirementFiles: files,
				Prefs:            prefs,
				Legacy:           legacy,
			})
		},
	}
	cmd.Flags().BoolP("upgrade", "U", false, "Accepted for pip compatibility; requested packages are always rebuilt and dependencies keep satisfying installs")
	cmd.Flags().Bool("no-deps", false, "Do not install runtime dependencies")
	cmd.Flags().Bool("force-reinstall", false, "Reinstall requested packages even when satisfied")
	cmd.Flags().Bool("legacy-build", false, "Build wheels with setup.py instead of PEP 517")
	cmd.Flags().StringArrayP("requirement", "r", nil, "Install the packages listed in a requirements file")
	return cmd
}
