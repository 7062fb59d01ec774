package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"github.com/santikid/clink/pkg/core"
	"github.com/santikid/clink/pkg/linkgroup"
)

// RenderStatus writes one table per target. Linked entries are hidden
// unless verbose is set.
func RenderStatus(w io.Writer, statuses []core.GroupStatus, verbose bool) error {
	if len(statuses) == 0 {
		_, err := fmt.Fprintln(w, "No enabled feature directories found.")
		return err
	}

	for _, s := range statuses {
		linked, missing := 0, 0
		data := pterm.TableData{{"STATE", "FILE", "NOTE"}}
		for _, e := range s.Entries {
			switch e.State {
			case linkgroup.StateLinked:
				linked++
				if !verbose {
					continue
				}
			case linkgroup.StateMissing:
				missing++
			}
			data = append(data, []string{stateLabel(e.State), e.Source.File, note(e)})
		}

		heading := fmt.Sprintf("%s  %d linked, %d missing, %d conflicts",
			pterm.Bold.Sprint(s.Target), linked, missing, s.Conflicts())
		if _, err := fmt.Fprintln(w, heading); err != nil {
			return err
		}
		if len(data) == 1 {
			continue
		}

		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, table); err != nil {
			return err
		}
	}
	return nil
}

func stateLabel(s linkgroup.State) string {
	switch s {
	case linkgroup.StateLinked:
		return pterm.Green(string(s))
	case linkgroup.StateMissing:
		return pterm.Yellow(string(s))
	default:
		return pterm.Red(string(s))
	}
}

func note(e linkgroup.Entry) string {
	if e.State == linkgroup.StateConflict {
		return e.Reason
	}
	return e.Source.Path()
}

// RenderFeatureTable writes the feature listing as a table.
func RenderFeatureTable(w io.Writer, list []core.FeatureStatus) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "No features configured.")
		return err
	}

	data := pterm.TableData{{"SLUG", "ENABLED", "ACTIVE", "TARGET", "DIRECTORIES"}}
	for _, f := range list {
		active := pterm.Red("no")
		if f.Active {
			active = pterm.Green("yes")
		}
		target := f.Resolved
		if f.Error != "" {
			target = pterm.Red(f.Target + " (" + f.Error + ")")
		}
		data = append(data, []string{f.Slug, f.Enabled, active, target, strings.Join(f.Directories, ", ")})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, table)
	return err
}
