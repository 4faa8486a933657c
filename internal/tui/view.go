package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	var content string
	switch {
	case m.err != nil:
		content = ErrorStyle.Render(fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err))
	case m.loading:
		content = BorderStyle.Render("⠋ Calculating...")
	default:
		switch m.currentScene {
		case ScenePicker:
			content = m.pickerModel.View()
		case SceneForm:
			if m.formModel != nil {
				content = m.formModel.View()
			}
		case SceneResults:
			content = m.resultsModel.View()
		case SceneHelp:
			content = m.renderHelp()
		}
	}
	return m.renderApp(content)
}

// renderApp wraps content with title bar and status bar
func (m Model) renderApp(content string) string {
	title := TitleStyle.Render("fincalc - Financial Calculators")
	breadcrumb := m.currentScene.String()
	if m.formModel != nil && m.currentScene != ScenePicker && m.currentScene != SceneHelp {
		breadcrumb = fmt.Sprintf("%s / %s", m.formModel.Calculator(), breadcrumb)
	}

	body := lipgloss.NewStyle().Height(max(m.height-4, 1)).Render(content)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		SubtitleStyle.Render(breadcrumb),
		body,
		m.renderStatusBar(),
	)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{formatShortcut("esc", "back")}
	if m.currentScene != SceneForm {
		shortcuts = append(shortcuts, formatShortcut("?", "help"), formatShortcut("q", "quit"))
	} else {
		shortcuts = append(shortcuts, formatShortcut("ctrl+s", "calculate"), formatShortcut("ctrl+c", "quit"))
	}
	return StatusBarStyle.Width(m.width).Render(strings.Join(shortcuts, " • "))
}

func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

func (m Model) renderHelp() string {
	help := `KEYBOARD SHORTCUTS:
  ↑/↓ or k/j   Move through calculators and fields
  enter        Select calculator / next field
  tab          Next field
  ←/→          Cycle choice fields
  space        Toggle yes/no fields
  ctrl+s       Calculate
  e            Edit inputs from the results screen
  g/G          Top / bottom
  esc          Go back
  q, ctrl+c    Quit`
	return BorderStyle.Render(help)
}
