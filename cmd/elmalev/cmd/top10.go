package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ssargent/elmalev/pkg/codec"
)

// top10Cmd represents the top10 command
var top10Cmd = &cobra.Command{
	Use:   "top10 <file>",
	Short: "Print the best times stored in a level",
	Long: `Print the single-player and multi-player best-time lists of a level.

Examples:
  elmalev top10 QWQUU001.LEV
  elmalev top10 --sorted QWQUU001.LEV`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sorted, _ := cmd.Flags().GetBool("sorted")

		level, err := readLevelFile(container.GetCodec(), args[0])
		if err != nil {
			return err
		}

		single, multi := level.Top10Single, level.Top10Multi
		if sorted {
			single, multi = level.BestTimes(false), level.BestTimes(true)
		}
		printTop10(cmd.OutOrStdout(), "Single player", single, false)
		printTop10(cmd.OutOrStdout(), "Multi player", multi, true)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(top10Cmd)
	top10Cmd.Flags().Bool("sorted", false, "Sort by time instead of file order")
}

func printTop10(w io.Writer, title string, entries []codec.Top10Entry, multi bool) {
	fmt.Fprintf(w, "%s:\n", title)
	if len(entries) == 0 {
		fmt.Fprintf(w, "  (none)\n")
		return
	}
	for i, e := range entries {
		if multi {
			fmt.Fprintf(w, "  %2d. %s  %s & %s\n", i+1, e.TimeString(), e.Name1, e.Name2)
		} else {
			fmt.Fprintf(w, "  %2d. %s  %s\n", i+1, e.TimeString(), e.Name1)
		}
	}
}
