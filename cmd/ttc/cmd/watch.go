package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"ttc/pkg/utils"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Recompile a script every time it changes",
	Long: `Compiles the script once, then again after every write to it, and
prints a one-line summary or the first error. Stops on Ctrl+C.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	path := utils.DefaultSource
	if len(args) > 0 {
		path = args[0]
	}
	fullPath, _, err := utils.GetPathInfo(path)
	if err != nil {
		return err
	}

	report := func() {
		path, res, err := compileSource([]string{fullPath})
		if err != nil {
			newPrinter(cmd).Error(err)
			return
		}
		printSummary(cmd.OutOrStdout(), path, res)
	}

	report()
	fmt.Fprintf(cmd.OutOrStdout(), "watching %s\n", fullPath)
	return watchFile(ctx, fullPath, cfg.Watch.Debounce.Duration, cmd.ErrOrStderr(), report)
}

// watchFile calls onChange once writes to path have been quiet for debounce.
// The parent directory is watched so editors that replace the file on save
// are followed. Watcher errors are reported to errOut. It returns when ctx is
// done.
func watchFile(ctx context.Context, path string, debounce time.Duration, errOut io.Writer, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				settle = time.After(debounce)
			}

		case <-settle:
			settle = nil
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(errOut, "watcher", err)
		}
	}
}
