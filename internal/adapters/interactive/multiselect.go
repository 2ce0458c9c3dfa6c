package interactive

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"

	"github.com/divaprotocol/diva-deploy/internal/domain"
)

// multiSelectModel is the bubbletea model for picking several targets
type multiSelectModel struct {
	targets   []*domain.DeploymentTarget
	cursor    int
	selected  map[int]bool
	title     string
	done      bool
	cancelled bool
}

func newMultiSelectModel(targets []*domain.DeploymentTarget, title string) multiSelectModel {
	return multiSelectModel{
		targets:  targets,
		selected: make(map[int]bool),
		title:    title,
	}
}

// Init is the initial command for bubbletea
func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.targets)-1 {
			m.cursor++
		}
	case " ":
		m.selected[m.cursor] = !m.selected[m.cursor]
	case "a":
		all := len(m.chosen()) < len(m.targets)
		for i := range m.targets {
			m.selected[i] = all
		}
	case "enter":
		// Enter with nothing toggled takes the target under the cursor
		if len(m.chosen()) == 0 {
			m.selected[m.cursor] = true
		}
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the UI
func (m multiSelectModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(color.New(color.FgCyan, color.Bold).Sprintf("%s\n\n", m.title))

	for i, target := range m.targets {
		cursor := " "
		if m.cursor == i {
			cursor = color.New(color.FgCyan).Sprint("▸")
		}

		checkbox := color.New(color.FgWhite).Sprint("○")
		if m.selected[i] {
			checkbox = color.New(color.FgGreen).Sprint("✓")
		}

		name := color.New(color.FgWhite, color.Bold).Sprint(target.Name)
		artifact := color.New(color.FgYellow).Sprintf("(%s)", target.Artifact)

		b.WriteString(fmt.Sprintf("%s %s %s %s\n", cursor, checkbox, name, artifact))
	}

	b.WriteString("\n")
	b.WriteString(color.New(color.FgYellow).Sprint("↑/↓: move  Space: toggle  a: all  Enter: confirm  q: quit\n"))

	return b.String()
}

// chosen returns the selected targets in declaration order
func (m multiSelectModel) chosen() []*domain.DeploymentTarget {
	var out []*domain.DeploymentTarget
	for i, target := range m.targets {
		if m.selected[i] {
			out = append(out, target)
		}
	}
	return out
}

// runMultiSelect shows the picker and returns the chosen targets
func runMultiSelect(targets []*domain.DeploymentTarget, title string, opts ...tea.ProgramOption) ([]*domain.DeploymentTarget, error) {
	p := tea.NewProgram(newMultiSelectModel(targets, title), opts...)

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("multi-select failed: %w", err)
	}

	m := finalModel.(multiSelectModel)
	if m.cancelled || !m.done {
		return nil, fmt.Errorf("selection cancelled")
	}

	return m.chosen(), nil
}
