package help

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key         string
	Description string
}

// GetGlobalKeys returns global key bindings
func GetGlobalKeys() []KeyBinding {
	return []KeyBinding{
		{"?", "Toggle help"},
		{"q, Ctrl+C", "Quit application"},
		{"Esc/Enter", "Dismiss error"},
		{"Tab", "Switch panel focus"},
		{"/", "Search cards"},
		{"r", "Reload collection"},
	}
}

// GetNavigationKeys returns navigation key bindings
func GetNavigationKeys() []KeyBinding {
	return []KeyBinding{
		{"↑/k", "Move up"},
		{"↓/j", "Move down"},
		{"←/h", "Collapse deck or go to parent"},
		{"→/l", "Expand deck"},
		{"Enter", "Select deck / open card"},
		{"g/G", "Jump to top / bottom"},
		{"Ctrl+U/Ctrl+D", "Page up / down in card list"},
	}
}

// GetCardKeys returns card view key bindings
func GetCardKeys() []KeyBinding {
	return []KeyBinding{
		{"Enter", "Inspect card"},
		{"y", "Copy inspected card as JSON"},
		{"e", "Export displayed cards to JSON"},
		{"E", "Export displayed cards to CSV"},
	}
}

// Render creates the help view
func Render(width, height int, theme lipgloss.Style) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("62")).
		Padding(1, 0)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("75")).
		Padding(0, 0, 0, 2)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(20)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var b strings.Builder

	// Title
	b.WriteString(titleStyle.Render("lazydeck - Keyboard Shortcuts"))
	b.WriteString("\n\n")

	// Global keys
	b.WriteString(sectionStyle.Render("Global"))
	b.WriteString("\n")
	for _, kb := range GetGlobalKeys() {
		b.WriteString("  ")
		b.WriteString(keyStyle.Render(kb.Key))
		b.WriteString(descStyle.Render(kb.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Navigation keys
	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	for _, kb := range GetNavigationKeys() {
		b.WriteString("  ")
		b.WriteString(keyStyle.Render(kb.Key))
		b.WriteString(descStyle.Render(kb.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Card keys
	b.WriteString(sectionStyle.Render("Cards"))
	b.WriteString("\n")
	for _, kb := range GetCardKeys() {
		b.WriteString("  ")
		b.WriteString(keyStyle.Render(kb.Key))
		b.WriteString(descStyle.Render(kb.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().Faint(true).Render("Press '?' or Esc to close help"))

	// Wrap in a box
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Width(width - 4).
		Height(height - 4)

	return boxStyle.Render(b.String())
}
