package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/standardcheck/pkg/check"
	"github.com/example/standardcheck/pkg/pyast"
)

// ErrChecksFailed signals a clean run that found violations; the process
// exits non-zero without treating it as a usage error.
var ErrChecksFailed = errors.New("checks failed")

func newCheckCommand() *cobra.Command {
	var config CheckConfig

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Check Python source files for style and docstring violations",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.Paths = args
			if len(config.Paths) == 0 {
				config.Paths = []string{"."}
			}
			return RunCheck(&config, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&config.IgnoreFile, "ignore-file", defaultIgnoreFile, "Path to the ignore file")
	cmd.Flags().StringVar(&config.ConfigPath, "config", "", "Path to .standardcheck.yml config file")
	cmd.Flags().StringVar(&config.Format, "format", defaultFormat, "Output format: text, json or yaml")
	cmd.Flags().StringVar(&config.Output, "output", defaultOutput, "Path to output file or '-' for stdout")
	cmd.Flags().BoolVar(&config.NoColor, "no-color", false, "Disable colored output")

	return cmd
}

// RunCheck checks every Python file reachable from the configured paths and
// writes the report. It returns ErrChecksFailed when findings exist.
func RunCheck(config *CheckConfig, stdout io.Writer) error {
	if err := loadConfigFile(config); err != nil {
		return err
	}
	if err := validateConfig(config); err != nil {
		return err
	}

	ignore, err := check.LoadIgnoreFile(config.IgnoreFile)
	if err != nil {
		return err
	}

	files, err := CollectFiles(config.Paths, ignore.Patterns)
	if err != nil {
		return err
	}

	report := &Report{Files: len(files)}
	for _, file := range files {
		findings, err := checkFile(file, ignore.Names)
		if err != nil {
			return err
		}
		report.Findings = append(report.Findings, findings...)
	}

	if err := writeOutput(report, config, stdout); err != nil {
		return err
	}
	if len(report.Findings) > 0 {
		return fmt.Errorf("%w: %d problem(s) found", ErrChecksFailed, len(report.Findings))
	}
	return nil
}

// checkFile parses and checks a single file. A file that does not parse is
// fatal for the run: malformed source is an error, not a finding.
func checkFile(path string, ignore check.IgnoreSet) ([]check.Finding, error) {
	src, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	module, err := pyast.ParseFile(src, filepath.ToSlash(path))
	if err != nil {
		return nil, err
	}

	checker := check.New(module.Path, check.WithIgnoreSet(ignore))
	return checker.Check(module), nil
}

func writeOutput(report *Report, config *CheckConfig, stdout io.Writer) error {
	colorize := !config.NoColor && config.Output == defaultOutput

	if config.Output == defaultOutput {
		return WriteReport(stdout, config.Format, report, colorize)
	}

	f, err := os.Create(config.Output) // #nosec G304
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return WriteReport(f, config.Format, report, false)
}
