package cmd

import (
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/ssargent/elmalev/pkg/codec"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new <file>",
	Short: "Create a starter level",
	Long: `Create a small playable level: one ground polygon with a player start
and an exit. Names of the LGR, ground and sky textures come from the
defaults section of the config. Integrity values are always computed.

Examples:
  elmalev new first.lev --name "My first level"
  elmalev new first.lev --link 12345`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		link, _ := cmd.Flags().GetInt32("link")

		level := starterLevel(container.GetConfig().NewLevel())
		level.Name = name
		level.Link = link
		if level.Link == 0 {
			level.Link = rand.Int32()
		}

		cc := container.GetConfig().CodecConfig()
		cc.Integrity = codec.IntegrityRecompute
		if err := writeLevelFile(codec.NewLevelCodecWithConfig(cc), args[0], level); err != nil {
			return err
		}

		cmd.Printf("Created %s (link %d)\n", args[0], level.Link)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().String("name", "", "Level name")
	newCmd.Flags().Int32("link", 0, "Link number (random when zero)")
}

// starterLevel adds the game's default editor layout to l.
func starterLevel(l *codec.Level) *codec.Level {
	l.Polygons = []codec.Polygon{{
		Vertices: []codec.Position{{X: -24, Y: -8}, {X: 24, Y: -8}, {X: 24, Y: 2}, {X: -24, Y: 2}},
	}}
	l.Objects = []codec.Object{
		{Position: codec.Position{X: -20, Y: 0.6}, Type: codec.ObjectPlayer, Animation: 1},
		{Position: codec.Position{X: 20, Y: 0.6}, Type: codec.ObjectExit, Animation: 1},
	}
	return l
}
