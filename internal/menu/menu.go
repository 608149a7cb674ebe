// Package menu runs the read-eval-print loop that lists the exercises,
// reads a selection and dispatches to the chosen handler until the user
// quits or input runs out.
package menu

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rail44/lessons/internal/filecount"
	"github.com/rail44/lessons/internal/input"
	"github.com/rail44/lessons/internal/log"
	"github.com/rail44/lessons/internal/scores"
	"github.com/rail44/lessons/internal/tax"
)

// State is the loop state. There are only two.
type State int

const (
	AwaitingSelection State = iota
	Terminated
)

func (s State) String() string {
	switch s {
	case AwaitingSelection:
		return "awaiting-selection"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// InvalidOption is printed for a selection that is not on the menu
const InvalidOption = "invalid option"

// Options configures a Menu
type Options struct {
	In       io.Reader
	Out      io.Writer
	Farewell string     // printed on quit, "Goodbye!" if empty
	Styled   bool       // render title and errors with lipgloss
	Logger   log.Logger // defaults to log.Default()
}

// Menu is one interactive session
type Menu struct {
	in       *input.Reader
	out      io.Writer
	farewell string
	styles   styles
	logger   log.Logger
	session  string
	state    State
}

// New creates a menu in the AwaitingSelection state
func New(opts Options) *Menu {
	farewell := opts.Farewell
	if farewell == "" {
		farewell = "Goodbye!"
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Menu{
		in:       input.NewReader(opts.In),
		out:      opts.Out,
		farewell: farewell,
		styles:   newStyles(opts.Styled),
		logger:   logger,
		session:  uuid.NewString(),
		state:    AwaitingSelection,
	}
}

// State returns the current loop state
func (m *Menu) State() State {
	return m.state
}

// Run loops until the user quits or input ends. Only a failure of the input
// stream itself is returned; exercise errors are printed and the loop goes on.
func (m *Menu) Run() error {
	m.logger.Debug("menu session started", slog.String("session", m.session))
	for m.state != Terminated {
		if err := m.Step(); err != nil {
			return err
		}
	}
	m.logger.Debug("menu session ended", slog.String("session", m.session))
	return nil
}

// Step prints the menu, reads one selection and runs it
func (m *Menu) Step() error {
	if m.state == Terminated {
		return nil
	}

	m.printMenu()
	line, err := m.in.Line()
	if err != nil {
		return m.inputEnded(err)
	}

	choice, err := input.Parse[int](line)
	e, ok := lookup(choice)
	if err != nil || !ok {
		m.logger.Debug("invalid selection", slog.String("session", m.session), slog.String("input", line))
		fmt.Fprintln(m.out, m.styles.errorLine(InvalidOption))
		return nil
	}

	m.logger.Debug("dispatching", slog.String("session", m.session), slog.Int("option", e.number), slog.String("label", e.label))
	if e.run == nil {
		fmt.Fprintln(m.out, m.farewell)
		m.state = Terminated
		return nil
	}

	if err := e.run(m); err != nil {
		if !recoverable(err) {
			return m.inputEnded(err)
		}
		m.logger.Debug("exercise failed", slog.String("session", m.session), slog.String("error", err.Error()))
		fmt.Fprintln(m.out, m.styles.errorLine("error: "+err.Error()))
	}
	return nil
}

// inputEnded terminates the loop; io.EOF counts as a quiet quit
func (m *Menu) inputEnded(err error) error {
	m.state = Terminated
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(m.out)
		return nil
	}
	return fmt.Errorf("failed to read input: %w", err)
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, m.styles.title("Menu"))
	for _, e := range entries {
		fmt.Fprintf(m.out, "%2d. %s\n", e.number, e.label)
	}
	fmt.Fprint(m.out, "Select an option: ")
}

// recoverable reports whether err is an exercise-level failure that the
// loop prints and survives
func recoverable(err error) bool {
	for _, target := range []error{
		input.ErrParse,
		tax.ErrInvalidStatus,
		tax.ErrInvalidState,
		filecount.ErrFileAccess,
		scores.ErrNoRecords,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
