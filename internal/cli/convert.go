package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpress/internal/configloader"
	"github.com/yaklabco/mdpress/internal/logging"
	"github.com/yaklabco/mdpress/internal/ui/pretty"
	"github.com/yaklabco/mdpress/pkg/config"
	"github.com/yaklabco/mdpress/pkg/mdhtml"
	"github.com/yaklabco/mdpress/pkg/runner"
)

// ErrConvertFailed is returned when one or more files failed to convert.
var ErrConvertFailed = errors.New("conversion failed")

type convertFlags struct {
	ignore  []string
	verbose bool
	table   bool
	quiet   bool
}

func newConvertCommand() *cobra.Command {
	var cfg config.Config
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert [paths...]",
		Short: "Convert Markdown files to HTML",
		Long:  convertLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, &cfg, flags)
		},
	}

	addConvertFlags(cmd, &cfg, flags)

	return cmd
}

const convertLongDescription = `Convert Markdown files to W3.CSS-styled HTML.

By default, converts all .md and .markdown files in the current directory
and subdirectories, writing each .html file alongside its source. Specify
paths to convert specific files or directories, or "-" to read Markdown
from standard input and write HTML to standard output.

Examples:
  mdpress convert                      # Convert current directory
  mdpress convert docs/                # Convert docs directory
  mdpress convert README.md            # Convert single file
  mdpress convert --out public docs/   # Mirror docs/ under public/
  mdpress convert --fragment README.md # Body-only HTML, no page wrapper
  mdpress convert --stdout README.md   # Print HTML instead of writing files
  cat notes.md | mdpress convert -     # Convert stdin to stdout`

func runConvert(cmd *cobra.Command, args []string, cfg *config.Config, flags *convertFlags) error {
	logger := logging.Default()

	cfg.Ignore = flags.ignore

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadOpts := configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	}

	loadResult, err := configloader.Load(ctx, loadOpts)
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldOutDir, finalCfg.OutDir,
		logging.FieldFragment, finalCfg.Fragment,
		logging.FieldJobs, finalCfg.Jobs,
	)

	cv := mdhtml.New(finalCfg.ConverterOptions())

	// Stdin mode bypasses discovery and the worker pool entirely.
	if len(args) == 1 && args[0] == "-" {
		return convertStdin(cmd, cv, finalCfg)
	}

	conv := runner.New(cv)

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   finalCfg.Extensions,
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
		Config:       finalCfg,
	}

	logger.Debug("starting conversion run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := conv.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("conversion run failed"), err)
	}

	if finalCfg.Stdout {
		for _, outcome := range result.Files {
			if outcome.Error != nil {
				continue
			}
			if _, err := cmd.OutOrStdout().Write(outcome.HTML); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
	}

	reportRun(cmd, result, finalCfg, flags)

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrConvertFailed
	}

	return nil
}

// reportRun prints per-file lines and the run summary.
// UI output goes to stderr when stdout carries HTML.
func reportRun(cmd *cobra.Command, result *runner.Result, cfg *config.Config, flags *convertFlags) {
	if flags.quiet && !result.HasFailures() {
		return
	}

	uiWriter := cmd.OutOrStdout()
	if cfg.Stdout {
		uiWriter = cmd.ErrOrStderr()
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, uiWriter))

	switch {
	case flags.table:
		formatter := pretty.NewTableFormatter(styles, pretty.DetectTermWidth(uiWriter))
		fmt.Fprint(uiWriter, formatter.FormatTable(result))
		fmt.Fprint(uiWriter, styles.FormatSummaryOneLine(result.Stats))
	case flags.verbose:
		for _, outcome := range result.Files {
			fmt.Fprint(uiWriter, styles.FormatFileLine(outcome))
		}
		fmt.Fprint(uiWriter, styles.FormatSummary(result.Stats))
	default:
		for _, outcome := range result.Files {
			if outcome.Error != nil {
				fmt.Fprint(uiWriter, styles.FormatFileLine(outcome))
			}
		}
		fmt.Fprint(uiWriter, styles.FormatSummaryOneLine(result.Stats))
	}
}

// convertStdin reads Markdown from stdin and writes HTML to stdout.
func convertStdin(cmd *cobra.Command, cv *mdhtml.Converter, cfg *config.Config) error {
	md, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	var html []byte
	if cfg.Fragment {
		html = cv.ConvertFragment(md)
	} else {
		html = cv.ConvertDocument(md, cfg.Title)
	}

	if _, err := cmd.OutOrStdout().Write(html); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

func addConvertFlags(cmd *cobra.Command, cfg *config.Config, flags *convertFlags) {
	cmd.Flags().StringVarP(&cfg.OutDir, "out", "o", "", "output directory (default: alongside each input)")
	cmd.Flags().BoolVar(&cfg.Fragment, "fragment", false, "emit body-only HTML without the page wrapper")
	cmd.Flags().StringVar(&cfg.Title, "title", "", "page title for documents (default \"No Title\")")
	cmd.Flags().BoolVar(&cfg.Stdout, "stdout", false, "write HTML to standard output instead of files")
	cmd.Flags().IntVar(&cfg.TabWidth, "tab-width", 0, "tab stop width (default 8)")
	cmd.Flags().StringVar(&cfg.CodeColor, "code-color", "", "W3.CSS color class for code blocks (default w3-light-grey)")
	cmd.Flags().StringVar(&cfg.HeadingColor, "heading-color", "", "W3.CSS color class for headings")
	cmd.Flags().IntVarP(&cfg.Jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "print a line for every converted file")
	cmd.Flags().BoolVar(&flags.table, "table", false, "print results as a table")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "suppress output unless files fail")
}
