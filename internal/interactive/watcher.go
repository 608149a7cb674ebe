package interactive

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/rail44/lessons/internal/log"
)

const debounceDelay = 100 * time.Millisecond

// FileWatcher calls onChange after a file is written or recreated.
// Bursts of events within debounceDelay collapse into one call.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	filePath string
	onChange func()
	logger   log.Logger
}

// NewFileWatcher watches filePath and its directory. The directory watch
// catches editors that save by replacing the file.
func NewFileWatcher(filePath string, onChange func(), logger log.Logger) (*FileWatcher, error) {
	if logger == nil {
		logger = log.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filePath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch file: %w", err)
	}

	dir := filepath.Dir(filePath)
	if err := watcher.Add(dir); err != nil {
		logger.Warn("couldn't watch directory", slog.String("dir", dir), slog.String("error", err.Error()))
	}

	return &FileWatcher{
		watcher:  watcher,
		filePath: filePath,
		onChange: onChange,
		logger:   logger,
	}, nil
}

// Start blocks until ctx is done or the watcher is closed
func (fw *FileWatcher) Start(ctx context.Context) {
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if !fw.relevant(event) {
				continue
			}
			fw.logger.Debug("file changed", slog.String("file", event.Name), slog.String("op", event.Op.String()))
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, fw.onChange)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Error("watcher error", slog.String("error", err.Error()))
		}
	}
}

func (fw *FileWatcher) relevant(event fsnotify.Event) bool {
	return filepath.Clean(event.Name) == filepath.Clean(fw.filePath) &&
		event.Op&(fsnotify.Write|fsnotify.Create) != 0
}

// Close stops watching
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
