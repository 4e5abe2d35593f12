package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/vitepatch/internal"
)

func buildRootCommand(appContext *internal.AppInternal) *cobra.Command {
	applyController := appContext.GetApplyController()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "vitepatch",
		Short: "Work around vitejs/vite#2390 in an installed vite 2.1.2",
		Long: `Patches one line of vite's compiled output so that import.meta.glob
keeps working for importers inside node_modules (vitejs/vite#2390).

Usage modes:
  vitepatch              Apply the patch (same as "vitepatch apply")
  vitepatch check        Fail unless the patch is present (pre-build guard)
  vitepatch postinstall  Apply the patch from an npm postinstall script`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, args []string) error {
			return applyController.Execute(command, args)
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().StringP("project-dir", "C", ".",
		"Directory the node_modules lookup starts from")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Show what would be done without making changes")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.NoArgs,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		rootCmd.AddCommand(subCmd)
	}
}

func newRootCommand(appContext *internal.AppInternal) *cobra.Command {
	cobraRoot := buildRootCommand(appContext)
	addSubcommands(cobraRoot, appContext)
	return cobraRoot
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	appContext := injectAppContext()
	cobraRoot := newRootCommand(appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'vitepatch': %s", err)
	}
}
