package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ssargent/elmalev/pkg/codec"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show the contents of a level file",
	Long: `Decode a level file and print its header fields and element counts.

Example:
  elmalev info QWQUU001.LEV`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := readLevelFile(container.GetCodec(), args[0])
		if err != nil {
			return err
		}
		printInfo(cmd.OutOrStdout(), args[0], level)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func printInfo(w io.Writer, path string, l *codec.Level) {
	s := l.Summary()

	integrity := "ok"
	if err := codec.CheckIntegrity(l); err != nil {
		integrity = err.Error()
	}

	fmt.Fprintf(w, "File:      %s\n", path)
	fmt.Fprintf(w, "Format:    %s (%s)\n", l.Format, l.Format.Tag())
	fmt.Fprintf(w, "Link:      %d\n", l.Link)
	fmt.Fprintf(w, "Name:      %s\n", l.Name)
	fmt.Fprintf(w, "LGR:       %s\n", l.LGR)
	fmt.Fprintf(w, "Ground:    %s\n", l.Ground)
	fmt.Fprintf(w, "Sky:       %s\n", l.Sky)
	fmt.Fprintf(w, "Integrity: %s\n", integrity)
	fmt.Fprintf(w, "Polygons:  %d (%d grass, %d vertices)\n", s.Polygons, s.GrassPolygons, s.Vertices)
	fmt.Fprintf(w, "Objects:   %d (exit %d, apple %d, killer %d, player %d)\n", len(l.Objects),
		s.Objects[codec.ObjectExit], s.Objects[codec.ObjectApple], s.Objects[codec.ObjectKiller], s.Objects[codec.ObjectPlayer])
	fmt.Fprintf(w, "Pictures:  %d\n", s.Pictures)
	fmt.Fprintf(w, "Top10:     %d single, %d multi\n", len(l.Top10Single), len(l.Top10Multi))
}
