package cli

import (
	"github.com/agentx-labs/create-react-app/internal/pipeline"
	"github.com/charmbracelet/lipgloss"
)

var (
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	packageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// consoleStyle colors pipeline output. lipgloss drops the colors when
// stdout is not a terminal.
func consoleStyle() pipeline.Style {
	return pipeline.Style{
		Path:    render(pathStyle),
		Package: render(packageStyle),
		Warn:    render(warnStyle),
		Error:   render(errorStyle),
	}
}

func render(style lipgloss.Style) func(string) string {
	return func(s string) string { return style.Render(s) }
}

// RenderError formats err for stderr.
func RenderError(err error) string {
	return errorStyle.Render("Error: " + err.Error())
}
