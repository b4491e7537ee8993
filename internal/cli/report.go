package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/example/standardcheck/pkg/check"
)

// Report is the result of one run: the number of files checked and every
// finding, in visitation order.
type Report struct {
	Files    int             `json:"files" yaml:"files"`
	Findings []check.Finding `json:"findings" yaml:"findings"`
}

var (
	locationColor = color.New(color.Bold)
	passColor     = color.New(color.FgGreen, color.Bold)
	declColor     = color.New(color.FgCyan)
)

// WriteReport renders the report in the requested format.
func WriteReport(w io.Writer, format string, report *Report, colorize bool) error {
	switch format {
	case "text":
		return writeText(w, report, colorize)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml", "yml":
		data, err := yaml.Marshal(report)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeText(w io.Writer, report *Report, colorize bool) error {
	if len(report.Findings) == 0 {
		msg := "All checks passed."
		if colorize {
			msg = passColor.Sprint(msg)
		}
		_, err := fmt.Fprintln(w, msg)
		return err
	}

	for _, f := range report.Findings {
		if !colorize {
			if _, err := fmt.Fprintln(w, f.String()); err != nil {
				return err
			}
			continue
		}
		location := locationColor.Sprintf("%s:%d:", f.File, f.Line)
		message := f.Message
		if f.Decl != "" {
			message = declColor.Sprintf("Function %s: ", f.Decl) + message
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", location, message); err != nil {
			return err
		}
	}
	return nil
}
