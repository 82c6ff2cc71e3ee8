package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// statusTheme holds the lipgloss styles for one-line status messages.
type statusTheme struct {
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Note    lipgloss.Style
}

var theme = newStatusTheme(os.Stderr, false)

// newStatusTheme renders against the given stream; status lines are logged to stderr
// while the document goes to stdout, which is usually a pipe.
func newStatusTheme(stream io.Writer, colored bool) statusTheme {
	renderer := lipgloss.NewRenderer(stream)
	if !colored {
		plain := renderer.NewStyle()
		return statusTheme{
			Success: plain,
			Warning: plain,
			Error:   plain,
			Note:    plain,
		}
	}
	return statusTheme{
		Success: renderer.NewStyle().Foreground(lipgloss.AdaptiveColor{Dark: "#c3e88d", Light: "#587539"}).Bold(true),
		Warning: renderer.NewStyle().Foreground(lipgloss.AdaptiveColor{Dark: "#ffcb6b", Light: "#8c6c3e"}),
		Error:   renderer.NewStyle().Foreground(lipgloss.AdaptiveColor{Dark: "#ff5370", Light: "#f52a65"}).Bold(true),
		Note:    renderer.NewStyle().Foreground(lipgloss.AdaptiveColor{Dark: "#89ddff", Light: "#0891b2"}),
	}
}
