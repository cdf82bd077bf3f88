package cli

import (
	"fmt"
	"io"
	"os"

	"api-log-analytics/internal/analyzers"
	"api-log-analytics/internal/ingestors"
	"api-log-analytics/internal/shared/configs"
	"api-log-analytics/internal/shared/loggers"

	"github.com/spf13/cobra"
)

const defaultLogLevel = "info"

type runOptions struct {
	configPath string
	pretty     bool
	outputPath string
}

// NewAnalyzeCommand builds the "analyze" CLI. Reports go to stdout (or --output) and logs to stderr.
func NewAnalyzeCommand(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze API request logs",
		Long: `Produce the analytics report of a JSON array of API log records.

Examples:
  analyze run logs.json --pretty
  analyze run logs.json --config ./configs/configs.yml --output report.json`,
		SilenceUsage: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	opts := &runOptions{}
	runCmd := &cobra.Command{
		Use:   "run <file.json>",
		Short: "Print the report of a log file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args[0], opts, stdout, stderr)
		},
	}
	runCmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file path (defaults apply when omitted)")
	runCmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent the JSON report")
	runCmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "write the report to this file instead of stdout")

	rootCmd.AddCommand(runCmd)
	return rootCmd
}

func runAnalyze(cmd *cobra.Command, path string, opts *runOptions, stdout, stderr io.Writer) error {
	cfg := configs.Defaults()
	logLevel := defaultLogLevel
	if opts.configPath != "" {
		loaded, err := configs.LoadConfig(opts.configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
		logLevel = loaded.Log.Level
	}

	logger, err := loggers.NewWithWriter(logLevel, stderr)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	ctx := logger.WithContext(cmd.Context())

	batchDecoder := ingestors.NewBatchDecoder(cfg.Ingestion.MaxBatchBytes)
	batchSummarizer := ingestors.NewBatchSummarizer(ingestors.NewRecordNormalizer(), ingestors.BatchSummarizerOptions{
		WindowSize: cfg.Analysis.WindowSize,
		SizeTiers:  cfg.Analysis.SizeTiers,
		ShardSize:  cfg.Ingestion.ShardSize,
		MaxWorkers: cfg.Ingestion.MaxWorkers,
	})
	reportService := analyzers.NewReportService(batchDecoder, batchSummarizer, nil, analyzers.NewReportAssemblerFromConfig(cfg.Analysis), cfg.Analysis)

	records, err := NewFileRecordLoader(batchDecoder).Load(path)
	if err != nil {
		return err
	}
	report, err := reportService.Analyze(ctx, records)
	if err != nil {
		return err
	}

	presenter := NewJSONReportPresenter(opts.pretty)
	if opts.outputPath == "" {
		return presenter.Present(stdout, report)
	}

	out, err := os.Create(opts.outputPath)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", opts.outputPath, err)
	}
	if err := presenter.Present(out, report); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to write %q: %w", opts.outputPath, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write %q: %w", opts.outputPath, err)
	}
	loggers.Ctx(ctx).Info().Str("output", opts.outputPath).Msg("report written")
	return nil
}
