package output

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
	"github.com/santikid/clink/pkg/errors"
)

// Format selects how listings are rendered
type Format string

const (
	// FormatTable renders a terminal table
	FormatTable Format = "table"
	// FormatYAML renders YAML
	FormatYAML Format = "yaml"
	// FormatTOML renders TOML
	FormatTOML Format = "toml"
	// FormatJSON renders indented JSON
	FormatJSON Format = "json"
)

// Formats lists every supported format.
var Formats = []Format{FormatTable, FormatYAML, FormatTOML, FormatJSON}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table", "":
		return FormatTable, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown format %q (want table, yaml, toml or json)", s)
	}
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ConfigureColor decides whether output is styled and reports the result.
// Styling is off when noColor is set, NO_COLOR is present, out is not a
// terminal or the terminal has no color support.
func ConfigureColor(out *os.File, noColor bool) bool {
	enabled := !noColor &&
		os.Getenv("NO_COLOR") == "" &&
		IsTerminal(out) &&
		termenv.ColorProfile() != termenv.Ascii

	if enabled {
		pterm.EnableStyling()
		return true
	}
	pterm.DisableStyling()
	lipgloss.SetColorProfile(termenv.Ascii)
	return false
}
