// Package tui provides the in-flight spinner shown while an analysis
// request is outstanding. The command that triggered the request blocks on
// the program, so exactly one request per action is in flight at a time.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/scamshield/scamshield/internal/cli"
	"github.com/scamshield/scamshield/internal/common"
)

// doneMsg carries the settled outcome of the background call.
type doneMsg struct {
	err error
}

type spinnerModel struct {
	cancel  context.CancelFunc
	err     error
	label   string
	spinner spinner.Model
	done    bool
}

func newSpinnerModel(label string, cancel context.CancelFunc) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = cli.InfoStyle
	return spinnerModel{
		spinner: s,
		label:   label,
		cancel:  cancel,
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancel()
			return m, nil
		}
		return m, nil

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.label + " " +
		cli.SubtleStyle.Render("(ctrl-c to cancel)") + "\n"
}

// Run executes fn while animating a spinner, and returns fn's error once it
// settles. Ctrl-C cancels the context passed to fn, aborting the request
// rather than abandoning it mid-flight.
func Run(ctx context.Context, label string, fn func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	result := make(chan error, 1)
	program := tea.NewProgram(newSpinnerModel(label, cancel))

	go func() {
		err := fn(ctx)
		result <- err
		program.Send(doneMsg{err: err})
	}()

	// A Run failure means the terminal is unusable, not that the request
	// failed; the settled request outcome decides either way.
	if _, err := program.Run(); err != nil {
		common.LogError(err, "spinner unavailable, waiting for request", common.Fields{"label": label})
	}
	return <-result
}
