package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestHeadlessSpinner(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner("Scaffolding shop-api", false, &buf)
	s.SetTitle("Installing dependencies")
	s.Stop()
	s.Stop() // repeated stop is harmless

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || lines[0] != "Scaffolding shop-api" || lines[1] != "Installing dependencies" {
		t.Errorf("headless output = %q", buf.String())
	}
}

func TestHeadlessSpinnerNilWriter(t *testing.T) {
	s := NewSpinner("quiet", false, nil)
	s.SetTitle("still quiet")
	s.Stop()
}

func TestSpinnerModelLifecycle(t *testing.T) {
	m := newSpinnerModel("working")
	if view := m.View(); !strings.Contains(view, "working") {
		t.Errorf("View() = %q, want title shown", view)
	}

	updated, _ := m.Update(spinnerTitleMsg("renamed"))
	m = updated.(spinnerModel)
	if view := m.View(); !strings.Contains(view, "renamed") {
		t.Errorf("View() after retitle = %q", view)
	}

	updated, cmd := m.Update(spinnerStopMsg{})
	m = updated.(spinnerModel)
	if view := m.View(); view != "" {
		t.Errorf("View() after stop = %q, want empty", view)
	}
	if cmd == nil {
		t.Error("stop should quit the program")
	}
}
