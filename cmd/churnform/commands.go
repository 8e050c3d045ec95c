package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/churnlens/churnform/internal/config"
	"github.com/churnlens/churnform/internal/logging"
	"github.com/churnlens/churnform/internal/predict"
	"github.com/churnlens/churnform/internal/profile"
	"github.com/churnlens/churnform/internal/session"
	"github.com/churnlens/churnform/internal/tui"
	"github.com/churnlens/churnform/internal/ui"
)

// Global flags
var (
	endpointFlag string
	configPath   string
	logLevel     string
	logFile      string
	timeoutFlag  time.Duration
)

// predict command flags
var (
	assignments  []string
	outputFormat string
)

var errPredictionFailed = errors.New("prediction failed")

func init() {
	rootCmd.PersistentFlags().StringVar(&endpointFlag, "endpoint", "", "Prediction service base URL (default: config, $"+config.EndpointEnvVar+", "+config.DefaultEndpoint+")")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when unset")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 0, "Request timeout (e.g., 10s); 0 waits indefinitely")

	predictCmd.Flags().StringArrayVar(&assignments, "set", nil, "Override a profile field (field=value, repeatable)")
	predictCmd.Flags().StringVar(&outputFormat, "format", "text", "Output format (text, json)")

	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(healthCmd)
}

// loadSettings resolves the effective settings for cmd
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.GetConfigPath()
		if err != nil {
			return config.Settings{}, fmt.Errorf("failed to locate config file: %w", err)
		}
	}

	file, err := config.Load(path)
	if err != nil {
		return config.Settings{}, err
	}

	o := config.Overrides{
		Endpoint: endpointFlag,
		LogLevel: logLevel,
		LogFile:  logFile,
	}
	if cmd.Flags().Changed("timeout") {
		if timeoutFlag < 0 {
			return config.Settings{}, fmt.Errorf("invalid --timeout %s: must not be negative", timeoutFlag)
		}
		o.Timeout = &timeoutFlag
	}

	return config.Resolve(file, o, os.Getenv), nil
}

// initLogging starts the logger. The form owns the terminal, so it always
// logs to a file; one-shot commands log to stderr unless a file is set.
func initLogging(s config.Settings, interactive bool) error {
	output := s.LogFile
	if output == "" && interactive {
		output = config.DefaultLogPath()
	}

	if output != "" && s.LogLevel != "" {
		if err := os.MkdirAll(filepath.Dir(output), 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	return logging.Initialize(logging.Options{Level: s.LogLevel, OutputPath: output})
}

// runForm launches the interactive form
func runForm(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := initLogging(settings, true); err != nil {
		return err
	}

	logging.Info("Starting form",
		zap.String("endpoint", settings.Endpoint),
		zap.Duration("timeout", settings.Timeout),
	)

	store := profile.NewStore(settings.Endpoint)
	controller := session.NewController(predict.NewClient(settings.Timeout))

	p := tea.NewProgram(tui.NewFormModel(store, controller), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("form error: %w", err)
	}

	return nil
}

// predictCmd submits one profile without the form
var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Submit a profile once and print the prediction",
	Long: `Submit the default customer profile, with any --set overrides applied,
to the prediction service and print the result.

Values are parsed by field kind: integers for SeniorCitizen and tenure,
numbers for MonthlyCharges and TotalCharges, text for everything else.
Values are not checked against the field's options.`,
	Example: `  # Default profile
  churnform predict

  # Long-tenured customer on a two year contract
  churnform predict --set tenure=60 --set Contract="Two year"

  # JSON output for scripting
  churnform predict --format json --endpoint http://churn-api:8000`,
	Args: cobra.NoArgs,
	RunE: runPredict,
}

func runPredict(cmd *cobra.Command, args []string) error {
	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("invalid --format %q (expected text or json)", outputFormat)
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := initLogging(settings, false); err != nil {
		return err
	}

	p, err := buildProfile(assignments)
	if err != nil {
		return err
	}

	controller := session.NewController(predict.NewClient(settings.Timeout))
	result := controller.Submit(context.Background(), p, settings.Endpoint)

	out := cmd.OutOrStdout()
	if outputFormat == "json" {
		if err := writeJSON(out, result); err != nil {
			return err
		}
	} else {
		printer := ui.NewPrinter(out)
		printer.PrintHeader("churn prediction", map[string]string{"Endpoint": settings.Endpoint})
		printer.PrintResult(result)
	}

	if _, failed := result.(*predict.Failure); failed {
		return errPredictionFailed
	}
	return nil
}

// buildProfile applies field=value assignments to the default profile
func buildProfile(assignments []string) (profile.Profile, error) {
	p := profile.Default()
	for _, a := range assignments {
		name, value, err := profile.ParseAssignment(a)
		if err != nil {
			return profile.Profile{}, fmt.Errorf("invalid --set %q: %w", a, err)
		}
		p = p.Set(name, value)
	}
	return p, nil
}

// writeJSON prints a result in the service's response format, or
// {"error": "..."} for a failure
func writeJSON(w io.Writer, r predict.Result) error {
	var v any = r
	if f, ok := r.(*predict.Failure); ok {
		v = map[string]string{"error": f.Message}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}

// healthCmd checks that the service is up
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the prediction service is reachable",
	Long: `Call the service's /health endpoint and report whether it answered
{"status": "ok"}.`,
	Example: `  churnform health
  churnform health --endpoint http://churn-api:8000 --timeout 5s`,
	Args: cobra.NoArgs,
	RunE: runHealth,
}

func runHealth(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := initLogging(settings, false); err != nil {
		return err
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())
	details := map[string]string{"Endpoint": settings.Endpoint}

	client := predict.NewClient(settings.Timeout)
	start := time.Now()
	if err := client.Health(context.Background(), settings.Endpoint); err != nil {
		printer.PrintError("Service unavailable", err, troubleshootingTips(err))
		return fmt.Errorf("health check failed: %w", err)
	}

	details["Response time"] = time.Since(start).Round(time.Millisecond).String()
	printer.PrintSuccess("Service healthy", details)
	return nil
}

// troubleshootingTips suggests next steps for a failed request
func troubleshootingTips(err error) []string {
	kind, ok := predict.KindOf(err)
	if !ok {
		return nil
	}

	switch kind {
	case predict.ErrKindConnectionRefused:
		return []string{
			"Check that the prediction service is running",
			"Verify the port in --endpoint",
		}
	case predict.ErrKindDNS:
		return []string{
			"Check the host name in --endpoint",
		}
	case predict.ErrKindTimeout:
		return []string{
			"The service did not answer in time",
			"Increase --timeout or check the service load",
		}
	case predict.ErrKindHTTP:
		return []string{
			"The service answered with an error status",
			"Check that --endpoint points at the prediction API",
		}
	case predict.ErrKindDecode:
		return []string{
			"The response was not what a prediction service sends",
			"Check that --endpoint points at the prediction API",
		}
	default:
		return []string{
			"Verify network connectivity to the service",
		}
	}
}
