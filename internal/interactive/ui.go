// Package interactive implements `lessons watch`, a live view of the file
// counter that refreshes whenever the watched file changes.
package interactive

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rail44/lessons/internal/filecount"
	"github.com/rail44/lessons/internal/log"
)

// maxLogLines bounds the log tail shown under the counts
const maxLogLines = 5

type status int

const (
	statusWaiting status = iota
	statusCounting
	statusCounted
	statusError
)

type model struct {
	filePath   string
	count      func(string) (filecount.Counts, error)
	status     status
	counts     filecount.Counts
	err        error
	lastUpdate time.Time
	logs       []string
}

type fileChangedMsg struct{}
type countedMsg struct {
	counts filecount.Counts
	err    error
}
type logMsg struct{ line string }

// NewModel creates the watch view for filePath
func NewModel(filePath string) tea.Model {
	return model{
		filePath: filePath,
		count:    filecount.CountFile,
		status:   statusWaiting,
	}
}

// Init triggers the first count
func (m model) Init() tea.Cmd {
	return FileChanged
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case fileChangedMsg:
		m.status = statusCounting
		return m, m.recount()

	case countedMsg:
		m.lastUpdate = time.Now()
		if msg.err != nil {
			m.status = statusError
			m.err = msg.err
			return m, nil
		}
		m.status = statusCounted
		m.counts = msg.counts
		m.err = nil
		return m, nil

	case logMsg:
		m.logs = append(m.logs, msg.line)
		if len(m.logs) > maxLogLines {
			m.logs = m.logs[len(m.logs)-maxLogLines:]
		}
		return m, nil
	}

	return m, nil
}

func (m model) View() string {
	var s strings.Builder

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).MarginBottom(1)
	s.WriteString(headerStyle.Render("lessons - file counter"))
	s.WriteString("\n\n")

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	s.WriteString(dimStyle.Render(fmt.Sprintf("Watching: %s", m.filePath)))
	s.WriteString("\n\n")

	statusStyle := lipgloss.NewStyle().Bold(true)
	switch m.status {
	case statusWaiting:
		s.WriteString(statusStyle.Foreground(lipgloss.Color("11")).Render("Waiting for first count..."))
	case statusCounting:
		s.WriteString(statusStyle.Foreground(lipgloss.Color("12")).Render("Counting..."))
	case statusCounted:
		fmt.Fprintf(&s, "Characters: %d\nBlanks: %d\nLines: %d", m.counts.Characters, m.counts.Blanks, m.counts.Lines)
		if !m.lastUpdate.IsZero() {
			s.WriteString("\n")
			s.WriteString(dimStyle.Render("updated " + m.lastUpdate.Format(time.TimeOnly)))
		}
	case statusError:
		s.WriteString(statusStyle.Foreground(lipgloss.Color("9")).Render("Error: "))
		if m.err != nil {
			s.WriteString(m.err.Error())
		}
	}
	s.WriteString("\n\n")

	for _, line := range m.logs {
		s.WriteString(dimStyle.Render(line))
		s.WriteString("\n")
	}

	s.WriteString(dimStyle.Render("Press 'q' to quit"))
	return s.String()
}

func (m model) recount() tea.Cmd {
	path, count := m.filePath, m.count
	return func() tea.Msg {
		counts, err := count(path)
		return countedMsg{counts: counts, err: err}
	}
}

// FileChanged is sent to the program to trigger a recount
func FileChanged() tea.Msg {
	return fileChangedMsg{}
}

// LogRecord turns a log record into a message the view appends to its tail
func LogRecord(r slog.Record) tea.Msg {
	return logMsg{line: log.FormatRecord(r)}
}
