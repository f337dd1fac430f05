package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ssargent/elmalev/pkg/storage"
	"github.com/ssargent/elmalev/pkg/watch"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Import levels as they are saved",
	Long: `Watch a directory and import every level file that is created or
written there into the library, once the file has stopped changing.
Files that fail to decode are logged and skipped. The directory defaults
to watch_dir from the config.

Example:
  elmalev watch ~/elma/lev`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := container.GetConfig().WatchDir
		if len(args) == 1 {
			dir = args[0]
		}

		lib, err := container.OpenLibrary()
		if err != nil {
			return err
		}
		defer lib.Close()

		w, err := watch.NewWatcher([]string{dir})
		if err != nil {
			return err
		}
		defer w.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log := newLogger(cmd.ErrOrStderr(), "watch")
		log.Printf("watching %s", dir)
		importLoop(ctx, w, lib, log)
		log.Printf("shutting down")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// importLoop stores every level the watcher reports until ctx is done or the
// watcher is closed.
func importLoop(ctx context.Context, w *watch.Watcher, lib *storage.LevelLibrary, log *logger) {
	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return
			}
			log.Debugf("change detected: %s", path)
			id, err := importLevelFile(lib, path)
			if err != nil {
				log.Printf("skipping %s: %v", path, err)
				continue
			}
			log.Printf("imported %s as %s", path, id)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("watch error: %v", err)
		case <-ctx.Done():
			return
		}
	}
}
