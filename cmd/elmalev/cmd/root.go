/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/elmalev/pkg/config"
	"github.com/ssargent/elmalev/pkg/di"
)

var container *di.Container

// SetContainer injects the dependency container used by all commands
func SetContainer(c *di.Container) {
	container = c
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "elmalev",
	Short: "elmalev - Elasto Mania level tool",
	Long: `elmalev reads, writes and catalogues Elasto Mania level files (.lev).

It can inspect levels, print their best-time lists, re-save them with fresh
integrity checksums and keep a library of levels on disk.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if container == nil {
			return fmt.Errorf("dependency container not initialized")
		}

		configPath, _ := cmd.Flags().GetString("config")
		explicit := configPath != ""
		if !explicit {
			configPath = config.GetDefaultConfigPath()
		}

		if config.ConfigExists(configPath) {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			container.SetConfig(cfg)
		} else if explicit {
			return fmt.Errorf("config file does not exist: %s", configPath)
		}

		if library, _ := cmd.Flags().GetString("library"); library != "" {
			container.GetConfig().LibraryDir = library
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default ~/.config/elmalev/config.yaml)")
	rootCmd.PersistentFlags().StringP("library", "l", "", "Level library directory (overrides config)")
}

// logger writes diagnostics the way the rest of the tool does: plain log
// lines, with debug output only when configured.
type logger struct {
	*log.Logger
	debug bool
}

func newLogger(w io.Writer, prefix string) *logger {
	level := "info"
	if container != nil {
		level = container.GetConfig().Logging.Level
	}
	return &logger{
		Logger: log.New(w, prefix+": ", log.LstdFlags),
		debug:  level == "debug",
	}
}

func (l *logger) Debugf(format string, args ...interface{}) {
	if l.debug {
		l.Printf(format, args...)
	}
}
