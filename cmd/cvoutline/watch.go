package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// defaultSettle is how long a file must stay unchanged before it is read
const defaultSettle = 500 * time.Millisecond

func newWatchCmd(a *app) *cobra.Command {
	var (
		outDir string
		settle time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch DIR",
		Short: "Write a profile for each layout file that appears in a directory",
		Long: "watch processes *.json layout files created or rewritten in DIR until " +
			"interrupted. A file is read once it has seen no writes for --settle. " +
			"Profiles go to --out as <name>.profile.json.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				return fmt.Errorf("--out is required")
			}
			if settle <= 0 {
				return fmt.Errorf("--settle must be positive")
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("failed to create watcher: %w", err)
			}
			defer watcher.Close()

			if err := watcher.Add(args[0]); err != nil {
				return fmt.Errorf("failed to watch %s: %w", args[0], err)
			}

			a.logger.Info("watching", "dir", args[0], "out", outDir, "settle", settle)
			return a.watch(cmd.Context(), watcher, outDir, settle)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Directory for profiles")
	cmd.Flags().DurationVar(&settle, "settle", defaultSettle, "Quiet period after the last write before a file is processed")
	return cmd
}

// watch handles watcher events until ctx is done. Each layout file is
// processed once it has gone settle without further events, so a file still
// being written is read only when complete. A document that fails is logged
// and skipped.
func (a *app) watch(ctx context.Context, watcher *fsnotify.Watcher, outDir string, settle time.Duration) error {
	done := make(chan struct{})
	defer close(done)

	ready := make(chan string)
	timers := make(map[string]*time.Timer)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isLayoutEvent(event, outDir) {
				continue
			}
			if t, ok := timers[event.Name]; ok {
				t.Reset(settle)
				continue
			}
			name := event.Name
			timers[name] = time.AfterFunc(settle, func() {
				select {
				case ready <- name:
				case <-done:
				}
			})

		case name := <-ready:
			delete(timers, name)
			a.processFile(name, outDir)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Error("watch error", "error", err)
		}
	}
}

// processFile writes the profile of one settled layout file
func (a *app) processFile(name, outDir string) {
	res, err := a.processor(name).Result()
	if err != nil {
		a.logger.Error("document failed", "source", name, "error", err)
		return
	}
	logWarnings(a, name, res.Warnings)

	path, err := writeProfile(res, name, outDir)
	if err != nil {
		a.logger.Error("writing profile", "source", name, "error", err)
		return
	}
	a.logger.Info("profile written", "source", name, "output", path)
}

// isLayoutEvent reports whether an event is a new or rewritten layout file.
// Profiles written into a watched output directory are ignored.
func isLayoutEvent(event fsnotify.Event, outDir string) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return false
	}
	if !strings.EqualFold(filepath.Ext(event.Name), ".json") {
		return false
	}
	if strings.HasSuffix(event.Name, ".profile.json") && filepath.Dir(event.Name) == filepath.Clean(outDir) {
		return false
	}
	return true
}
