package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/example/standardcheck/pkg/check"
	"github.com/example/standardcheck/pkg/pyast"
)

func newSummaryCommand() *cobra.Command {
	var (
		ignoreFile string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "summary [path...]",
		Short: "Summarize declarations: missing hints, mutable defaults, docstring presence",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			return RunSummary(args, ignoreFile, format, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&ignoreFile, "ignore-file", defaultIgnoreFile, "Path to the ignore file")
	cmd.Flags().StringVar(&format, "format", defaultFormat, "Output format: text, json or yaml")

	return cmd
}

// RunSummary summarizes every Python file reachable from the given paths.
func RunSummary(paths []string, ignoreFile, format string, w io.Writer) error {
	ignore, err := check.LoadIgnoreFile(ignoreFile)
	if err != nil {
		return err
	}

	files, err := CollectFiles(paths, ignore.Patterns)
	if err != nil {
		return err
	}

	var summaries []*check.ModuleSummary
	for _, file := range files {
		src, err := os.ReadFile(file) // #nosec G304
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}
		module, err := pyast.ParseFile(src, filepath.ToSlash(file))
		if err != nil {
			return err
		}
		summaries = append(summaries, check.Summarize(module))
	}

	return writeSummaries(w, format, summaries)
}

func writeSummaries(w io.Writer, format string, summaries []*check.ModuleSummary) error {
	switch format {
	case "text":
		return writeSummaryText(w, summaries)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	case "yaml", "yml":
		data, err := yaml.Marshal(summaries)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeSummaryText(w io.Writer, summaries []*check.ModuleSummary) error {
	for _, s := range summaries {
		var problems []string
		for _, cls := range s.Classes {
			problems = append(problems, cls.Problems()...)
		}
		for _, fn := range s.Functions {
			problems = append(problems, fn.Problems()...)
		}
		if len(problems) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s:\n", s.Path); err != nil {
			return err
		}
		for _, p := range problems {
			if _, err := fmt.Fprintf(w, "  %s\n", p); err != nil {
				return err
			}
		}
	}
	return nil
}
