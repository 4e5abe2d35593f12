package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/vitepatch/internal/domain/entities"
)

// resolveOptions merges the optional config file, the NODE_PATH environment variable and
// the command-line flags. Flags win over the config file. Verbose output raises the global
// log level here, at the command-line boundary.
func resolveOptions(cmd *cobra.Command) (entities.PatchOptions, error) {
	configPath, _ := cmd.Flags().GetString("config")
	projectDir, _ := cmd.Flags().GetString("project-dir")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")

	settings := &entities.Settings{}
	if configPath == "" {
		if found, findErr := entities.FindConfigFile(); findErr == nil {
			configPath = found
		}
	}
	if configPath != "" {
		logger.Debugf("Using config file: %s", configPath)
		loaded, err := entities.NewSettings(configPath)
		if err != nil {
			return entities.PatchOptions{}, err
		}
		settings = loaded
	}

	if !cmd.Flags().Changed("project-dir") && settings.ProjectDir != "" {
		projectDir = settings.ProjectDir
	}
	if projectDir == "" {
		projectDir = "."
	}

	if verbose || settings.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	nodePath := append([]string{}, settings.NodePath...)
	nodePath = append(nodePath, entities.NodePathFromEnv()...)

	return entities.PatchOptions{
		Lookup: entities.Lookup{
			ProjectDir: projectDir,
			NodePath:   nodePath,
		},
		DryRun: dryRun,
	}, nil
}
