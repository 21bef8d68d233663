// ABOUTME: Interactive TUI wizard for configuring the hobbies storage backend
// ABOUTME: bubbletea model with a backend picker followed by a data directory prompt
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harper/hobbies/internal/config"
)

// Step represents the current wizard step.
type Step int

const (
	StepBackend Step = iota
	StepDataDir
	StepDone
)

var backendHelp = map[string]string{
	config.BackendSQLite: "single database file, the default",
	config.BackendFile:   "one JSON file per catalog, easy to back up or version",
	config.BackendCharm:  "Charm KV with cloud sync across machines",
}

// SetupModel is the bubbletea model for the setup wizard.
type SetupModel struct {
	step     Step
	cursor   int
	dataDir  textinput.Model
	quitting bool
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	brandStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	stepStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// NewSetupModel creates a setup wizard, pre-selecting existing config values.
func NewSetupModel(backend, dataDir string) SetupModel {
	cursor := 0
	for i, b := range config.Backends {
		if strings.EqualFold(b, backend) {
			cursor = i
		}
	}

	input := textinput.New()
	input.Placeholder = config.DefaultDataDir()
	input.Width = 50
	if dataDir != "" {
		input.SetValue(dataDir)
	}

	return SetupModel{step: StepBackend, cursor: cursor, dataDir: input}
}

// Init implements tea.Model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.step == StepDataDir {
			var cmd tea.Cmd
			m.dataDir, cmd = m.dataDir.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEscape:
		m.quitting = true
		return m, tea.Quit
	}

	switch m.step {
	case StepBackend:
		return m.updateBackend(key)
	case StepDataDir:
		return m.updateDataDir(key)
	}
	return m, nil
}

func (m SetupModel) updateBackend(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(config.Backends)-1 {
			m.cursor++
		}
	case "enter":
		// Charm keeps its data under CHARM_DATA_DIR, so there is nothing to ask.
		if m.Backend() == config.BackendCharm {
			m.step = StepDone
			return m, tea.Quit
		}
		m.step = StepDataDir
		m.dataDir.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m SetupModel) updateDataDir(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Type != tea.KeyEnter {
		var cmd tea.Cmd
		m.dataDir, cmd = m.dataDir.Update(key)
		return m, cmd
	}

	if strings.TrimSpace(m.dataDir.Value()) == "" {
		m.dataDir.SetValue(config.DefaultDataDir())
	}
	m.dataDir.Blur()
	m.step = StepDone
	return m, tea.Quit
}

// View implements tea.Model.
func (m SetupModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(brandStyle.Render("   HOBBIES"))
	b.WriteString(titleStyle.Render(" - Setup"))
	b.WriteString("\n\n")
	b.WriteString("Choose where your books, movies, and recipes are kept.\n\n")

	switch m.step {
	case StepBackend:
		b.WriteString(stepStyle.Render("Step 1 of 2: Storage Backend"))
		b.WriteString("\n")
		for i, backend := range config.Backends {
			line := fmt.Sprintf("  %-7s %s", backend, helpStyle.Render(backendHelp[backend]))
			if i == m.cursor {
				line = selectedStyle.Render("> "+backend) + " " + helpStyle.Render(backendHelp[backend])
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("\n(up/down to choose, Enter to confirm)"))
		b.WriteString("\n")

	case StepDataDir:
		b.WriteString(fmt.Sprintf("  Backend: %s\n\n", m.Backend()))
		b.WriteString(stepStyle.Render("Step 2 of 2: Data Directory"))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(fmt.Sprintf("(press Enter for default: %s)", config.DefaultDataDir())))
		b.WriteString("\n")
		b.WriteString(m.dataDir.View())
		b.WriteString("\n")

	case StepDone:
		b.WriteString(successStyle.Render("Setup complete, configuration saved."))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  Backend:         %s\n", m.Backend()))
		if m.Backend() != config.BackendCharm {
			b.WriteString(fmt.Sprintf("  Data directory:  %s\n", m.dataDir.Value()))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Backend returns the highlighted backend.
func (m SetupModel) Backend() string {
	return config.Backends[m.cursor]
}

// Result returns the chosen values. dataDir is empty for the charm backend.
func (m SetupModel) Result() (backend, dataDir string) {
	if m.Backend() == config.BackendCharm {
		return m.Backend(), ""
	}
	return m.Backend(), strings.TrimSpace(m.dataDir.Value())
}

// ShouldSave returns true if the wizard completed and the user did not cancel.
func (m SetupModel) ShouldSave() bool {
	return m.step == StepDone && !m.quitting
}
