package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/ghagen/ghagen/pkg/console"
	"github.com/ghagen/ghagen/pkg/logger"
)

var watchLog = logger.New("cli:watch")

// Watch regenerates workflow files whenever their configurations change.
// It performs one full generation up front, then blocks until the context is
// cancelled. Compile errors during watching are reported and watching
// continues; only watcher failures end the loop early.
func Watch(ctx context.Context, configPaths []string, outputDir string) error {
	paths, err := expandConfigPaths(configPaths)
	if err != nil {
		return err
	}

	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", path, err)
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch parent directories rather than the files themselves; editors
	// that replace files on save would otherwise drop the watch.
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		watchLog.Printf("Watching directory %s", dir)
	}

	regenerate := func(configPath string) {
		outPath, err := GenerateFile(configPath, outputDir)
		if err != nil {
			fmt.Fprintln(os.Stderr, formatLoadError(configPath, err))
			return
		}
		fmt.Println(console.FormatSuccessMessage("regenerated " + outPath))
	}

	for _, path := range paths {
		regenerate(path)
	}
	fmt.Println(console.FormatInfoMessage(fmt.Sprintf("watching %d configuration file(s), press Ctrl+C to stop", len(paths))))

	for {
		select {
		case <-ctx.Done():
			watchLog.Print("Watch cancelled")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			watchLog.Printf("Change detected: %s (%s)", event.Name, event.Op)
			regenerate(abs)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("file watcher error: %w", err)
		}
	}
}
