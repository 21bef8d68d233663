// ABOUTME: Unit tests for the hobbies setup wizard bubbletea model
// ABOUTME: Drives the model with synthetic key messages and checks each transition
package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harper/hobbies/internal/config"
)

func press(t *testing.T, m SetupModel, keys ...tea.KeyMsg) (SetupModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(k)
		m = updated.(SetupModel)
	}
	return m, cmd
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
)

func TestNewSetupModel_Defaults(t *testing.T) {
	m := NewSetupModel("", "")
	if m.step != StepBackend {
		t.Errorf("expected StepBackend, got %d", m.step)
	}
	if m.Backend() != config.BackendSQLite {
		t.Errorf("expected sqlite preselected, got %s", m.Backend())
	}
	if m.dataDir.Value() != "" {
		t.Error("expected empty data dir input for new config")
	}
}

func TestNewSetupModel_ExistingConfig(t *testing.T) {
	m := NewSetupModel("FILE", "/custom/path")
	if m.Backend() != config.BackendFile {
		t.Errorf("expected file preselected, got %s", m.Backend())
	}
	if m.dataDir.Value() != "/custom/path" {
		t.Errorf("expected pre-filled data dir, got %q", m.dataDir.Value())
	}
}

func TestSetupModel_CursorStaysInRange(t *testing.T) {
	m, _ := press(t, NewSetupModel("", ""), up, up)
	if m.cursor != 0 {
		t.Errorf("cursor moved above first option: %d", m.cursor)
	}
	m, _ = press(t, m, down, down, down, down)
	if m.cursor != len(config.Backends)-1 {
		t.Errorf("cursor moved past last option: %d", m.cursor)
	}
}

func TestSetupModel_DefaultFlow(t *testing.T) {
	m, _ := press(t, NewSetupModel("", ""), enter)
	if m.step != StepDataDir {
		t.Fatalf("expected StepDataDir, got %d", m.step)
	}

	m, cmd := press(t, m, enter)
	if m.step != StepDone {
		t.Fatalf("expected StepDone, got %d", m.step)
	}
	if cmd == nil {
		t.Error("expected quit cmd when done")
	}

	backend, dir := m.Result()
	if backend != config.BackendSQLite || dir != config.DefaultDataDir() {
		t.Errorf("unexpected result %s %s", backend, dir)
	}
	if !m.ShouldSave() {
		t.Error("expected ShouldSave after completing flow")
	}
}

func TestSetupModel_TypedDataDir(t *testing.T) {
	m, _ := press(t, NewSetupModel("", ""), down, enter)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/srv/hobbies")}, enter)

	backend, dir := m.Result()
	if backend != config.BackendFile {
		t.Errorf("expected file backend, got %s", backend)
	}
	if dir != "/srv/hobbies" {
		t.Errorf("expected typed data dir, got %q", dir)
	}
}

func TestSetupModel_CharmSkipsDataDir(t *testing.T) {
	m := NewSetupModel(config.BackendCharm, "/ignored")
	m, _ = press(t, m, enter)
	if m.step != StepDone {
		t.Fatalf("expected charm to finish immediately, got step %d", m.step)
	}
	if backend, dir := m.Result(); backend != config.BackendCharm || dir != "" {
		t.Errorf("unexpected charm result %q %q", backend, dir)
	}
}

func TestSetupModel_Cancel(t *testing.T) {
	for _, k := range []tea.KeyMsg{{Type: tea.KeyCtrlC}, {Type: tea.KeyEscape}} {
		m, cmd := press(t, NewSetupModel("", ""), k)
		if cmd == nil {
			t.Errorf("expected quit cmd on %s", k)
		}
		if !m.quitting || m.ShouldSave() {
			t.Errorf("%s should cancel without saving", k)
		}
	}
}

func TestSetupModel_Views(t *testing.T) {
	m := NewSetupModel("", "")
	view := m.View()
	if !strings.Contains(view, "HOBBIES") || !strings.Contains(view, "Storage Backend") {
		t.Errorf("unexpected backend view:\n%s", view)
	}
	for _, b := range config.Backends {
		if !strings.Contains(view, b) {
			t.Errorf("backend view should list %s", b)
		}
	}

	m, _ = press(t, m, enter)
	if !strings.Contains(m.View(), "Data Directory") {
		t.Error("expected data dir view to mention Data Directory")
	}

	m, _ = press(t, m, enter)
	if !strings.Contains(m.View(), "saved") {
		t.Error("expected done view to mention saved")
	}
}
