package tui

import (
	"strings"
	"testing"
	"testing/fstest"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/levels"
)

func newTestPicker(t *testing.T) PickerModel {
	t.Helper()
	lib := levels.New(fstest.MapFS{
		"tiny.board": {Data: []byte("-----\n-*o*-\n-----\n")},
		"open.board": {Data: []byte("-----\n-   -\n-----\n")},
	})
	m, err := NewPickerModel(lib, 80)
	if err != nil {
		t.Fatalf("NewPickerModel() failed: %v", err)
	}
	return m
}

func typeAndSubmit(t *testing.T, m PickerModel, text string) (PickerModel, tea.Cmd) {
	t.Helper()
	var next tea.Model = m
	if text != "" {
		next, _ = next.Update(runes(text))
	}
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	pm, ok := next.(PickerModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return pm, cmd
}

func TestPickerRepromptsOnMissingMaze(t *testing.T) {
	m := newTestPicker(t)

	m, cmd := typeAndSubmit(t, m, "nope")
	if isQuit(cmd) {
		t.Fatal("a missing maze should not end the picker")
	}
	if m.Selected() != nil {
		t.Fatal("nothing should be selected")
	}

	view := m.View()
	if !strings.Contains(view, "The maze 'nope' does not exist!") {
		t.Errorf("View() lacks the missing-maze message:\n%s", view)
	}
	for _, name := range []string{"open", "tiny"} {
		if !strings.Contains(view, name) {
			t.Errorf("View() does not list %q", name)
		}
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared, holds %q", m.input.Value())
	}

	m, cmd = typeAndSubmit(t, m, "tiny")
	if !isQuit(cmd) {
		t.Error("a valid maze should end the picker")
	}
	lvl := m.Selected()
	if lvl == nil || lvl.Name != "tiny" || lvl.Grid.Cols() != 5 {
		t.Errorf("Selected() = %+v", lvl)
	}
}

func TestPickerEmptyInputUsesDefault(t *testing.T) {
	m := newTestPicker(t)

	// The default maze is not in this library.
	m, _ = typeAndSubmit(t, m, "")
	if !strings.Contains(m.View(), "The maze 'classic' does not exist!") {
		t.Errorf("View() = %q", m.View())
	}
}

func TestPickerCancel(t *testing.T) {
	m := newTestPicker(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !isQuit(cmd) {
		t.Error("esc should end the picker")
	}
	if next.(PickerModel).Selected() != nil {
		t.Error("cancel should select nothing")
	}
}

func TestPickerEmbeddedMazes(t *testing.T) {
	m, err := NewPickerModel(levels.Embedded(), 80)
	if err != nil {
		t.Fatalf("NewPickerModel() failed: %v", err)
	}

	m, cmd := typeAndSubmit(t, m, "")
	if !isQuit(cmd) {
		t.Fatal("the default maze should load")
	}
	if m.Selected().Name != "classic" {
		t.Errorf("Selected() = %q, expected classic", m.Selected().Name)
	}
}
