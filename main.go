package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ecoscope_go/benchmark"
	"ecoscope_go/config"
	"ecoscope_go/tools/sanity_check"
	"ecoscope_go/tools/trim_analyzer"
)

const (
	exitFailure     = 1
	exitUnsupported = 2
)

func printVersion(w io.Writer) {
	fmt.Fprintln(w, "EcoScope 16S Analyzer - Version Information Menu")
	fmt.Fprintln(w, "Central Executable:")
	fmt.Fprintf(w, "\tEcoScope:\t\t%s\n", config.Main_version)
	fmt.Fprintf(w, "\nModular tools:\n")
	fmt.Fprintf(w, "\tTrim Analyzer:\t\t%s\n", config.Trim_Analyzer)
	fmt.Fprintf(w, "\tSanity Check:\t\t%s\n", config.Sanity_check)
	fmt.Fprintf(w, "\tBenchmark:\t\t%s\n", config.Benchmark)
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var (
		opts     config.Options
		pipeline string
	)

	cmd := &cobra.Command{
		Use:   "ecoscope",
		Short: "EcoScope 16S Analyzer: Process and analyze 16S rRNA data.",
		Long: `Trim FASTQ reads to a fixed length and report read count, average length
and GC content. Writes trimmed.fastq and sequence_length_histogram.png into the
output directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := config.ParsePipelineKind(pipeline)
			if err != nil {
				return err
			}
			opts.Pipeline = kind

			if opts.Diagnostics {
				benchmark.Diagnostics(stdout)
			}
			fmt.Fprintln(stdout, "Processing started...")

			run := func() error {
				_, err := trim_analyzer.Run(opts, stdout)
				return err
			}
			if opts.Benchmark {
				label := fmt.Sprintf("ecoscope -i %s -o %s -p %s --trim-length %d", opts.Input, opts.Output, opts.Pipeline, opts.TrimLength)
				return benchmark.Run(stdout, label, run)
			}
			return run()
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Input, "input", "i", "", "Path to the input FASTQ file (required)")
	flags.StringVarP(&opts.Output, "output", "o", "", "Output directory where results will be saved (required)")
	flags.StringVarP(&pipeline, "pipeline", "p", string(config.PipelineDefault), "Analysis pipeline (default, custom)")
	flags.IntVar(&opts.TrimLength, "trim-length", 0, "Trim reads to this many bases (0 or absent disables trimming)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Print progress every 1000 reads and a final summary")
	flags.BoolVar(&opts.CSV, "csv", false, "Also write run statistics to run_statistics.csv")
	flags.BoolVar(&opts.Benchmark, "benchmark", false, "Report run time and memory usage")
	flags.BoolVar(&opts.Diagnostics, "diagnostics", false, "Print host and runtime information at startup")

	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "version",
			Short: "Show version information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				printVersion(stdout)
			},
		},
		&cobra.Command{
			Use:   "check",
			Short: "Run a diagnostic self test",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return sanity_check.Run(stdout)
			},
		},
	)
	return cmd
}

// exitCode maps run errors onto process exit codes.
func exitCode(err error) int {
	var unsupported *trim_analyzer.UnsupportedFormatError
	if errors.As(err, &unsupported) {
		return exitUnsupported
	}
	return exitFailure
}

func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, color.RedString("Error:"), err)
		return exitCode(err)
	}
	return 0
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
