package output

import (
	stderrors "errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/santikid/clink/pkg/errors"
)

var (
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	pathStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// FormatError renders err for the terminal. Conflict errors list each path
// on its own line.
func FormatError(err error) string {
	var b strings.Builder
	b.WriteString(errorStyle.Render("Error:"))
	b.WriteString(" ")

	paths := errors.ConflictPaths(err)
	var ce *errors.ClinkError
	if len(paths) == 0 || !stderrors.As(err, &ce) {
		b.WriteString(err.Error())
		return b.String()
	}

	b.WriteString(ce.Message)
	for _, p := range paths {
		b.WriteString("\n  ")
		b.WriteString(pathStyle.Render(p))
	}
	return b.String()
}
