package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/defenseunicorns/uds-sarif-report/internal/config"
	"github.com/defenseunicorns/uds-sarif-report/internal/log"
	"github.com/defenseunicorns/uds-sarif-report/internal/metrics"
	"github.com/defenseunicorns/uds-sarif-report/pkg/report"
	"github.com/defenseunicorns/uds-sarif-report/pkg/types"
)

// errFlagRetrieval is the error message for when a flag cannot be retrieved.
var errFlagRetrieval = errors.New("error getting flag")

// errInputNotFound is returned when the input file does not exist.
var errInputNotFound = errors.New("not found")

// errNoData is returned when the input yields no usable document.
var errNoData = errors.New("no valid SARIF data found")

// errSaveFailed is returned when the report cannot be written.
var errSaveFailed = errors.New("failed to save HTML report")

// metricsNamespace prefixes every metric written with --metrics-file.
const metricsNamespace = "sarif_report"

// Execute is the main entry point for the report generator.
func Execute(args []string) {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command for the report generator.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sarif-report <json_file> <output_html> [repository_url] [commit_sha]",
		Short: "Generate an HTML report from Semgrep SARIF output.",
		Long: `sarif-report converts static-analysis findings in SARIF JSON format into a
standalone HTML report with a summary of findings by severity.`,
		Example: "  sarif-report semgrep-results.json report.html https://github.com/user/repo.git abc123",
		Version: Version,
		Args:    cobra.MinimumNArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("input file '%s' %w", args[0], errInputNotFound)
				}
				return fmt.Errorf("error accessing input file '%s': %w", args[0], err)
			}
			// arguments are valid, later failures are not usage errors
			cmd.SilenceUsage = true
			return nil
		},
		RunE: runReport,
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().StringP("template", "t", "", fmt.Sprintf(`Path to the HTML report template.
Defaults to the config file value or %s.
The built-in template is used when the file cannot be read.`, config.DefaultTemplatePath))
	rootCmd.Flags().StringP("config", "c", "", "Path to a YAML config file")
	rootCmd.Flags().StringP("metrics-file", "m", "", "Write finding counts to this Prometheus textfile")
	rootCmd.Flags().Bool("debug", false, "Enable development logging")

	return rootCmd
}

// runReport drives parse, extract, assemble, render and save.
func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	templatePath, err := cmd.Flags().GetString("template")
	if err != nil {
		return fmt.Errorf("%w: template: %w", errFlagRetrieval, err)
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("%w: config: %w", errFlagRetrieval, err)
	}
	metricsFile, err := cmd.Flags().GetString("metrics-file")
	if err != nil {
		return fmt.Errorf("%w: metrics-file: %w", errFlagRetrieval, err)
	}
	debug, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return fmt.Errorf("%w: debug: %w", errFlagRetrieval, err)
	}

	var logger types.Logger
	if debug {
		logger = log.NewDevelopmentLogger()
	} else {
		logger = log.NewLogger(ctx)
	}
	defer log.Sync(logger)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// positional arguments past commit_sha are ignored
	inputPath, outputPath := args[0], args[1]
	repositoryURL, commitSHA := optionalArg(args, 2), optionalArg(args, 3)

	gen, err := report.New(ctx, logger, report.Options{Config: cfg, TemplatePath: templatePath})
	if err != nil {
		return fmt.Errorf("error creating report generator: %w", err)
	}

	out := cmd.OutOrStdout()
	if gen.UsesFallbackTemplate() {
		fmt.Fprintln(out, "Template not found, using built-in template")
	}
	fmt.Fprintf(out, "Parsing Semgrep output from: %s\n", inputPath)
	doc := gen.ParseSemgrepOutput(inputPath)
	if len(doc) == 0 {
		return errNoData
	}

	findings := gen.ExtractFindings(doc)
	fmt.Fprintf(out, "Found %d security findings\n", len(findings))

	data := gen.GenerateReportData(findings, repositoryURL, commitSHA)
	content := gen.GenerateHTML(data)

	fmt.Fprintf(out, "Saving report to: %s\n", outputPath)
	if !gen.SaveReport(content, outputPath) {
		return fmt.Errorf("%w: %s", errSaveFailed, outputPath)
	}

	if metricsFile != "" {
		if err := writeMetrics(metricsFile, data); err != nil {
			return err
		}
	}

	printSummary(out, data, outputPath)
	return nil
}

func writeMetrics(path string, data types.ReportData) error {
	collector, err := metrics.NewCollector(metricsNamespace)
	if err != nil {
		return fmt.Errorf("error creating metrics collector: %w", err)
	}
	collector.Observe(data)
	return collector.WriteTextfile(path)
}

func printSummary(w io.Writer, data types.ReportData, outputPath string) {
	fmt.Fprintln(w, "HTML report generated successfully")
	fmt.Fprintf(w, "Report contains %d findings\n", data.TotalFindings)
	fmt.Fprintf(w, "High severity: %d\n", data.HighSeverityCount)
	fmt.Fprintf(w, "Medium severity: %d\n", data.MediumSeverityCount)
	fmt.Fprintf(w, "Low severity: %d\n", data.LowSeverityCount)
	fmt.Fprintf(w, "Info severity: %d\n", data.InfoSeverityCount)
	fmt.Fprintf(w, "Report saved to: %s\n", outputPath)
}

func optionalArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return ""
}
