package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/khanhnv2901/deepscan/internal/analyzer"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a batch of scan records from stdin and print the enriched report",
	Long: `Read a JSON array of scan records (url, content, headers, issues) from
stdin or a file, run the deep analysis pipeline and print the enriched
report. On failure a JSON error object is printed and the process exits
non-zero, so the command composes safely in pipelines.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath, _ := cmd.Flags().GetString("input")
		format, _ := cmd.Flags().GetString("format")

		report, err := runAnalysis(cmd.InOrStdin(), inputPath)
		if err == nil {
			err = writeReport(cmd.OutOrStdout(), report, format)
		}
		if err != nil {
			writeFailure(cmd.OutOrStdout(), err)
			return err
		}

		if logger != nil {
			logger.Debugw("analysis complete",
				"findings", len(report.EnhancedIssues),
				"risk_score", report.RiskScore,
				"risk_level", report.RiskLevel,
			)
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().String("input", "", "Read the batch from a file instead of stdin")
	analyzeCmd.Flags().String("format", "json", "Report output format: json or yaml")
}

// runAnalysis decodes the batch and runs the core pipeline. A batch that is
// not a JSON array of records fails the whole invocation; there are no
// partial reports.
func runAnalysis(stdin io.Reader, inputPath string) (*analyzer.Report, error) {
	reader := stdin
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		reader = f
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var records []analyzer.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode batch: %w", err)
	}

	return analyzer.Analyze(records), nil
}

func writeReport(w io.Writer, report *analyzer.Report, format string) error {
	switch format {
	case "json":
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		fmt.Fprintln(w, string(out))
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q (expected json or yaml)", format)
	}
}

// writeFailure prints the error envelope consumed by the upstream scanner.
func writeFailure(w io.Writer, err error) {
	out, marshalErr := json.MarshalIndent(map[string]string{
		"error":  err.Error(),
		"status": "failed",
	}, "", "  ")
	if marshalErr != nil {
		fmt.Fprintf(w, `{"error":%q,"status":"failed"}`+"\n", err.Error())
		return
	}
	fmt.Fprintln(w, string(out))
}
