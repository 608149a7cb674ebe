package interactive

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rail44/lessons/internal/filecount"
)

func TestModelRecountsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watched.txt")
	if err := os.WriteFile(path, []byte("ab cd\nef"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	var m tea.Model = NewModel(path)
	m, cmd := m.Update(FileChanged())
	if cmd == nil {
		t.Fatal("expected a recount command")
	}
	if !strings.Contains(m.View(), "Counting...") {
		t.Errorf("view should show counting state:\n%s", m.View())
	}

	m, _ = m.Update(cmd())
	view := m.View()
	for _, want := range []string{"Characters: 8", "Blanks: 1", "Lines: 2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModelShowsCountErrors(t *testing.T) {
	var m tea.Model = NewModel("missing.txt")
	m, _ = m.Update(countedMsg{err: filecount.ErrFileAccess})
	if !strings.Contains(m.View(), "cannot access file") {
		t.Errorf("view should show the error:\n%s", m.View())
	}

	// a later successful count clears the error
	m, _ = m.Update(countedMsg{counts: filecount.Counts{Lines: 1}})
	if strings.Contains(m.View(), "cannot access file") {
		t.Errorf("error still shown after recovery:\n%s", m.View())
	}
}

func TestModelKeepsLogTail(t *testing.T) {
	var m tea.Model = NewModel("f.txt")
	for i := 0; i < maxLogLines+3; i++ {
		r := slog.NewRecord(time.Now(), slog.LevelWarn, "line", 0)
		r.AddAttrs(slog.Int("n", i))
		m, _ = m.Update(LogRecord(r))
	}

	view := m.View()
	if strings.Contains(view, "n=0\n") || strings.Contains(view, "n=2\n") {
		t.Errorf("old log lines should be dropped:\n%s", view)
	}
	if !strings.Contains(view, "[WARN] line n=7") {
		t.Errorf("latest log line missing:\n%s", view)
	}
}

func TestModelQuits(t *testing.T) {
	var m tea.Model = NewModel("f.txt")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg")
	}
}

func TestFileWatcherFiresOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watched.txt")
	if err := os.WriteFile(path, []byte("a"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	changed := make(chan struct{}, 1)
	fw, err := NewFileWatcher(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer fw.Close()

	ctx := t.Context()
	go fw.Start(ctx)

	if err := os.WriteFile(path, []byte("a b\n"), 0644); err != nil {
		t.Fatalf("Failed to rewrite test file: %v", err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification within 5s")
	}
}

func TestModelInitRequestsCount(t *testing.T) {
	cmd := NewModel("f.txt").Init()
	if cmd == nil {
		t.Fatal("Init should request a count")
	}
	if _, ok := cmd().(fileChangedMsg); !ok {
		t.Errorf("Init command produced %T, want fileChangedMsg", cmd())
	}
}
