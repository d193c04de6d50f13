// Package ui provides terminal progress feedback for long-running steps,
// with a log-line fallback for non-interactive sessions.
package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner is an indeterminate activity indicator.
type Spinner interface {
	// SetTitle updates the displayed title.
	SetTitle(title string)
	// Stop halts the spinner. Safe to call more than once.
	Stop()
}

// NewSpinner creates a Spinner. Interactive sessions get an animated
// bubbles spinner; otherwise the title is written as a plain log line.
func NewSpinner(title string, interactive bool, w io.Writer) Spinner {
	if !interactive {
		return newHeadlessSpinner(title, w)
	}
	return newInteractiveSpinner(title)
}

// spinnerTitleMsg is sent to update the spinner title.
type spinnerTitleMsg string

// spinnerStopMsg is sent to stop the spinner.
type spinnerStopMsg struct{}

// spinnerModel is the bubbletea Model for the animated spinner.
type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"})
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTitleMsg:
		m.title = string(msg)
		return m, nil
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// interactiveSpinner implements Spinner with an animated bubbles spinner.
type interactiveSpinner struct {
	program *tea.Program
	once    sync.Once
}

func newInteractiveSpinner(title string) *interactiveSpinner {
	p := tea.NewProgram(newSpinnerModel(title))
	s := &interactiveSpinner{program: p}

	go func() {
		_, _ = p.Run()
	}()

	return s
}

// SetTitle updates the spinner title.
func (s *interactiveSpinner) SetTitle(title string) {
	s.program.Send(spinnerTitleMsg(title))
}

// Stop halts the spinner.
func (s *interactiveSpinner) Stop() {
	s.once.Do(func() {
		s.program.Send(spinnerStopMsg{})
		s.program.Wait()
	})
}

// headlessSpinner logs titles as plain lines.
type headlessSpinner struct {
	w io.Writer
}

func newHeadlessSpinner(title string, w io.Writer) *headlessSpinner {
	if w == nil {
		w = io.Discard
	}
	s := &headlessSpinner{w: w}
	s.SetTitle(title)
	return s
}

func (s *headlessSpinner) SetTitle(title string) {
	_, _ = fmt.Fprintln(s.w, title)
}

func (s *headlessSpinner) Stop() {}
