package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/temporal/utils/timex"
)

const absentText = "absent"

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8")).Width(8)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F8FAFC")).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
)

// field is one labelled value of a command result.
type field struct {
	Label string
	Value interface{}
}

// render writes fields in the session output format: aligned labels for
// text, an object for json, bare values one per line for plain.
func render(cmd *cobra.Command, fields ...field) error {
	out := cmd.OutOrStdout()

	switch current.settings.OutputFormat {
	case "json":
		return renderJSON(out, fields)
	case "plain":
		for _, f := range fields {
			if _, err := fmt.Fprintln(out, display(f.Value)); err != nil {
				return err
			}
		}
		return nil
	default:
		for _, f := range fields {
			value := display(f.Value)
			style := valueStyle
			if value == absentText {
				style = mutedStyle
			}
			if _, err := fmt.Fprintln(out, labelStyle.Render(f.Label)+" "+style.Render(value)); err != nil {
				return err
			}
		}
		return nil
	}
}

func renderJSON(out io.Writer, fields []field) error {
	obj := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		switch v := f.Value.(type) {
		case timex.LocalDateTime:
			if timex.IsAbsent(v) {
				obj[f.Label] = nil
			} else {
				obj[f.Label] = v.String()
			}
		case timex.Date:
			obj[f.Label] = v.String()
		default:
			obj[f.Label] = v
		}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(obj)
}

func display(value interface{}) string {
	switch v := value.(type) {
	case timex.LocalDateTime:
		if timex.IsAbsent(v) {
			return absentText
		}
		return v.String()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
