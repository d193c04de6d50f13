package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// CLI output styles for consistent terminal output.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"})
	cliBorder  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}).
			Padding(0, 2)
)

func symSuccess() string { return cliSuccess.Render("✓") }
func symWarning() string { return cliWarn.Render("!") }

// kvPair is one label/value line of a summary card.
type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines renders aligned key/value pairs.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		if len(p.key) > width {
			width = len(p.key)
		}
	}
	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		lines = append(lines, fmt.Sprintf("%s  %s",
			cliMuted.Render(fmt.Sprintf("%-*s", width, p.key)), p.value))
	}
	return strings.Join(lines, "\n")
}

// renderSuccessCard renders a bordered completion card.
func renderSuccessCard(title string, details ...string) string {
	body := symSuccess() + " " + cliSuccess.Render(title)
	for _, d := range details {
		if d != "" {
			body += "\n\n" + d
		}
	}
	return cliBorder.Render(body)
}

// PrintBanner prints the CLI banner with the current version.
func PrintBanner(version string) {
	fmt.Println(cliPrimary.Render("ethakka") + " " + cliMuted.Render(version))
	fmt.Println(cliMuted.Render("NestJS project scaffolding"))
	fmt.Println()
}

// renderMarkdown renders markdown for the terminal, falling back to the
// raw text when rendering fails.
func renderMarkdown(md string) string {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		return md
	}
	return out
}
