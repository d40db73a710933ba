package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"benchscore/internal/benchmark"
	"benchscore/internal/config"
	"benchscore/internal/harness"
	"benchscore/internal/telemetry"
	"benchscore/internal/ui"
)

// runHarness allows mocking in tests.
var runHarness = harness.Run

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a benchmark suite and print its scores",
	Long: `Runs every workload of the selected suite in order, prints one line per
workload and the aggregate score. Any workload failure aborts the run with
a non-zero exit status.`,
	Args: cobra.NoArgs,
	RunE: runSuite,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("suite", "small", "Suite to run (small, large)")
	runCmd.Flags().Bool("capture", harness.CaptureByDefault, "Capture workload output in memory instead of writing it to stdout")
	runCmd.Flags().Bool("keep-output", false, "Keep captured output after the run")
	runCmd.Flags().String("output-file", "", "Write captured workload output to this file")
	runCmd.Flags().String("format", "text", "Report format (text, json, yaml)")
	runCmd.Flags().String("metrics-file", "", "Write Prometheus metrics to this file")

	viper.BindPFlag(config.KeySuite, runCmd.Flags().Lookup("suite"))
	viper.BindPFlag(config.KeyCaptureOutput, runCmd.Flags().Lookup("capture"))
	viper.BindPFlag(config.KeyKeepOutput, runCmd.Flags().Lookup("keep-output"))
	viper.BindPFlag(config.KeyOutputFile, runCmd.Flags().Lookup("output-file"))
	viper.BindPFlag(config.KeyFormat, runCmd.Flags().Lookup("format"))
	viper.BindPFlag(config.KeyMetricsFile, runCmd.Flags().Lookup("metrics-file"))
}

func runSuite(cmd *cobra.Command, args []string) error {
	settings := config.Current()
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	// Structured reports own stdout; progress moves to stderr.
	console := out
	var status benchmark.StatusSink = ui.NewStatusPrinter(errOut)
	if settings.Format != "text" {
		console = errOut
		status = telemetry.NewSlogStatus(slog.Default())
	}

	sessionID := uuid.NewString()
	opts := harness.Options{
		Suite:      settings.Suite,
		Capture:    settings.CaptureOutput,
		KeepOutput: settings.KeepOutput || settings.OutputFile != "",
		Capacity:   settings.RegistryCapacity,
		Console:    console,
		Status:     status,
		Logger:     slog.Default(),
		SessionID:  sessionID,
	}

	var metrics *telemetry.ScoreMetrics
	if settings.MetricsFile != "" {
		metrics = telemetry.NewScoreMetrics(sessionID)
		opts.Observer = metrics
	}

	outcome, err := runHarness(opts)
	if err != nil {
		return fmt.Errorf("suite %s: %w", settings.Suite, err)
	}

	if err := writeReport(out, outcome.Report, settings.Format); err != nil {
		return err
	}

	if settings.OutputFile != "" {
		if err := os.WriteFile(settings.OutputFile, outcome.CapturedOutput(), 0644); err != nil {
			return fmt.Errorf("write captured output: %w", err)
		}
		telemetry.LogInfo("Captured output written", "path", settings.OutputFile, "benchmarks", len(outcome.Captured))
	}

	if metrics != nil {
		if err := metrics.WriteTextfile(settings.MetricsFile); err != nil {
			return err
		}
		telemetry.LogDebug("Metrics written", "path", settings.MetricsFile)
	}
	return nil
}

func writeReport(w io.Writer, report *benchmark.Report, format string) error {
	switch format {
	case "json":
		return report.WriteJSON(w)
	case "yaml":
		return report.WriteYAML(w)
	}
	return report.WriteText(w)
}
