package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"

	"github.com/ssargent/elmalev/pkg/storage"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Add level files to the library",
	Long: `Decode each level file and store it in the level library under a new id.

Example:
  elmalev import levels/*.lev`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := container.OpenLibrary()
		if err != nil {
			return err
		}
		defer lib.Close()

		for _, path := range args {
			id, err := importLevelFile(lib, path)
			if err != nil {
				return err
			}
			cmd.Printf("Imported %s as %s\n", path, id)
		}
		return nil
	},
}

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <id> <file>",
	Short: "Write a library level to a file",
	Long: `Write the stored bytes of a library level to a file.

Example:
  elmalev export 2ZaWQcYGkNFxGSyJe9YuXKqjNH7 out.lev`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := ksuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid level id %q: %w", args[0], err)
		}

		lib, err := container.OpenLibrary()
		if err != nil {
			return err
		}
		defer lib.Close()

		data, err := lib.ReadRaw(id)
		if err != nil {
			return err
		}
		if err := os.WriteFile(args[1], data, 0644); err != nil {
			return fmt.Errorf("failed to write level file: %w", err)
		}

		cmd.Printf("Exported %s to %s\n", id, args[1])
		return nil
	},
}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the levels in the library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := container.OpenLibrary()
		if err != nil {
			return err
		}
		defer lib.Close()

		entries, err := lib.List()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			cmd.Printf("Library is empty\n")
			return nil
		}
		for _, e := range entries {
			cmd.Printf("%s  %10d  %6d  %s\n", e.ID, e.Link, e.Size, e.Name)
		}
		return nil
	},
}

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a level from the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := ksuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid level id %q: %w", args[0], err)
		}

		lib, err := container.OpenLibrary()
		if err != nil {
			return err
		}
		defer lib.Close()

		if err := lib.Delete(id); err != nil {
			return err
		}
		cmd.Printf("Deleted %s\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
}

// importLevelFile stores the file at path in lib as is.
func importLevelFile(lib *storage.LevelLibrary, path string) (ksuid.KSUID, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ksuid.Nil, fmt.Errorf("failed to read level file: %w", err)
	}
	id, err := lib.CreateRaw(data)
	if err != nil {
		return ksuid.Nil, fmt.Errorf("failed to import %s: %w", filepath.Base(path), err)
	}
	return id, nil
}
