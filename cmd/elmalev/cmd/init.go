/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/elmalev/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a default configuration file for elmalev.

The file is written to --config, or ~/.config/elmalev/config.yaml when no
path is given. An existing file is left alone unless --force is set.

Examples:
  elmalev init
  elmalev init --library-dir=./library --force`,
	Args: cobra.NoArgs,
	// init creates the config, so it must not try to load one.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		libraryDir, _ := cmd.Flags().GetString("library-dir")
		force, _ := cmd.Flags().GetBool("force")

		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		if config.ConfigExists(configPath) && !force {
			cmd.Printf("Config already exists at %s. Use --force to overwrite.\n", configPath)
			return nil
		}

		cfg, err := config.BootstrapConfig(configPath, libraryDir)
		if err != nil {
			return err
		}
		if container != nil {
			container.SetConfig(cfg)
		}

		cmd.Printf("Wrote config to %s\n", configPath)
		cmd.Printf("Library directory: %s\n", cfg.LibraryDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("library-dir", "", "Level library directory to record in the config")
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}
