package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/hailam/fillgen/internal/adapters/csv"
	"github.com/hailam/fillgen/internal/adapters/disk"
	"github.com/hailam/fillgen/internal/adapters/txt"
	adapterutils "github.com/hailam/fillgen/internal/adapters/utils"
	"github.com/hailam/fillgen/internal/application"
	"github.com/hailam/fillgen/internal/config"
	"github.com/hailam/fillgen/internal/filler"
	"github.com/hailam/fillgen/internal/observability"
	"github.com/hailam/fillgen/internal/ports"
	"github.com/hailam/fillgen/internal/report"
	"github.com/hailam/fillgen/internal/utils"
)

var (
	// Version information (set by build flags)
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := newRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		if isInputError(err) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		} else {
			fmt.Fprintf(stderr, "Unexpected error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fillgen",
		Short: "Generates a text or csv file of an exact size.",
		Long: `fillgen writes a synthetic file of the requested size.

txt files are filled with random lines of a seed text file; csv files hold a
header followed by generated ';'-separated records. The last line is cut so
the file lands on the requested size. Size and format are asked for on stdin
when not given as flags.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return inputError{err}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runGenerate,
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return inputError{err}
	})

	config.RegisterFlags(rootCmd)
	rootCmd.AddCommand(newVersionCommand(Version, BuildTime, GitCommit))
	return rootCmd
}

func newVersionCommand(version, buildTime, gitCommit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "fillgen version %s\n", version)
			fmt.Fprintf(out, "Build time: %s\n", buildTime)
			fmt.Fprintf(out, "Git commit: %s\n", gitCommit)
		},
	}
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return inputError{err}
	}
	logger, err := observability.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return inputError{err}
	}
	defer logger.Sync()

	out := cmd.OutOrStdout()
	// Structured summaries own stdout; prompts and progress move to stderr.
	console := out
	if cfg.Output != config.OutputText {
		console = cmd.ErrOrStderr()
	}

	sizeParser := adapterutils.NewUtilSizeParser()
	prompter := newPrompter(cmd.InOrStdin(), console)
	if cfg.Size == "" {
		if cfg.Size, err = prompter.Ask(sizeQuestion); err != nil {
			return err
		}
	}
	if cfg.Format == "" {
		if _, err := sizeParser.Parse(cfg.Size); err != nil {
			return fmt.Errorf("invalid size '%s': %w", cfg.Size, err)
		}
		if cfg.Format, err = prompter.Ask(formatQuestion); err != nil {
			return err
		}
	}

	// --- Composition Root: Initialize Adapters and Core Logic ---
	fs := afero.NewOsFs()
	rng, records := randomSources(cfg.Seed)
	bar := report.NewProgressBar(console)
	fileService := application.NewFileService(
		sizeParser,
		txt.New(fs, cfg.Source, logger),
		filler.New(rng, records, bar),
		report.NewSpinnerSink(disk.New(fs, cfg.OutputDir), console),
		logger,
	)
	// --- End Composition Root ---

	file, err := fileService.CreateFile(cfg.Size, cfg.Format)
	bar.Finish()
	if err != nil {
		return err
	}
	return report.NewOutputter(cfg.Output, out).Print(report.NewSummary(file))
}

// randomSources returns the text RNG and record synthesizer for seed. Zero
// means a fresh random seed on every run.
func randomSources(seed int64) (*rand.Rand, ports.RecordSynthesizer) {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), csv.New()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed))), csv.NewWithSeed(seed)
}

// inputError marks failures caused by what the user typed or configured.
type inputError struct{ err error }

func (e inputError) Error() string { return e.err.Error() }
func (e inputError) Unwrap() error { return e.err }

func isInputError(err error) bool {
	var ie inputError
	return errors.As(err, &ie) ||
		errors.Is(err, utils.ErrInvalidSizeFormat) ||
		errors.Is(err, ports.ErrInvalidFormatSelector)
}
