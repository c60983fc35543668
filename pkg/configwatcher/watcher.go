package configwatcher

import (
	"context"
	"path/filepath"
	"recruit_backend/internal/config"
	"recruit_backend/pkg/logger"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long the watcher waits after the last write before
// reloading.
const DefaultDebounce = time.Second

type ConfigReloader func(cfg *config.Config)

// WatchConfig reloads config.yaml in dir after it changes and hands the
// result to reloader. Invalid files are logged and skipped. It blocks until
// ctx is done.
func WatchConfig(ctx context.Context, dir string, debounce time.Duration, reloader ConfigReloader) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	target := filepath.Join(absDir, "config.yaml")

	// Watch the directory so editors that replace the file are still seen.
	if err := watcher.Add(absDir); err != nil {
		return err
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				timer.Reset(debounce)
			}
		case <-timer.C:
			newCfg, err := config.LoadConfig(absDir)
			if err != nil {
				logger.Log.Error("Failed to reload config", zap.Error(err))
				continue
			}
			logger.Log.Info("Config reloaded", zap.String("file", target))
			reloader(newCfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Log.Error("Config watcher error", zap.Error(err))
		}
	}
}
