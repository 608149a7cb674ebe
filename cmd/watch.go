package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rail44/lessons/internal/interactive"
	"github.com/rail44/lessons/internal/log"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Count a file and recount it every time it is saved",
		Long: `Watch shows the character, blank and line counts of a file and
refreshes them whenever the file is written or recreated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filePath := args[0]

			if _, err := os.Stat(filePath); os.IsNotExist(err) {
				return fmt.Errorf("file %s does not exist", filePath)
			}

			absPath, err := filepath.Abs(filePath)
			if err != nil {
				return fmt.Errorf("failed to resolve path: %w", err)
			}

			return runWatch(cmd.Context(), absPath)
		},
	}
}

func runWatch(ctx context.Context, filePath string) error {
	p := tea.NewProgram(interactive.NewModel(filePath), tea.WithAltScreen())

	// log lines show up inside the view instead of breaking the alt screen
	logger := log.NewCallbackLogger(func(r slog.Record) {
		p.Send(interactive.LogRecord(r))
	}, log.GetCurrentLevel())

	watcher, err := interactive.NewFileWatcher(filePath, func() {
		p.Send(interactive.FileChanged())
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go watcher.Start(ctx)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run UI: %w", err)
	}
	return nil
}
