package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"invoice-reconciler/core/config"
	"invoice-reconciler/core/logger"
	"invoice-reconciler/feature/compare"
	"invoice-reconciler/feature/lookup"

	"github.com/spf13/cobra"
)

var compareAsJSON bool

// compareCmd compares two invoice PDFs from the command line.
var compareCmd = &cobra.Command{
	Use:   "compare [left.pdf] [right.pdf]",
	Short: "Compare two invoice PDFs",
	Long: `Extracts product records from two PDF invoices and prints the
difference report.

Examples:
  # Human-readable difference statements
  invoice-reconciler compare supplier.pdf warehouse.pdf

  # Full report as JSON
  invoice-reconciler compare supplier.pdf warehouse.pdf --json`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().BoolVar(&compareAsJSON, "json", false, "Print the full report as JSON")
	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.Gemini.IsValidStrategy() {
		return fmt.Errorf("invalid extraction strategy: %q", cfg.Gemini.Strategy)
	}

	l, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console"})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	left, err := readDocument(args[0])
	if err != nil {
		return err
	}
	right, err := readDocument(args[1])
	if err != nil {
		return err
	}

	extractor, closeExtractor, err := compare.NewExtractor(ctx, cfg.Gemini, l)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}
	defer closeExtractor()

	lookupSvc := lookup.NewService(
		lookup.NewCache(lookup.NewLoader(cfg.Lookup, l)), l)

	// CLI runs are ephemeral: no storage archiving, no run history.
	svc := compare.NewService(extractor, lookupSvc, nil, "", nil, l,
		time.Duration(cfg.Gemini.CallDelayMS)*time.Millisecond)

	result, err := svc.Compare(ctx, left, right)
	if err != nil {
		return err
	}

	if compareAsJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	printReport(result)
	return nil
}

func readDocument(path string) (compare.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return compare.Document{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return compare.Document{Name: filepath.Base(path), Data: data}, nil
}

func printReport(result *compare.CompareResult) {
	fmt.Printf("Run %s (%s)\n", result.RunID, result.Strategy)
	fmt.Printf("Left:  %s (%d records)\n", result.Left.Name, len(result.Left.Records))
	fmt.Printf("Right: %s (%d records)\n", result.Right.Name, len(result.Right.Records))

	for _, failure := range result.Failures {
		fmt.Printf("WARNING: %s: %s\n", failure.Document, failure.Reason)
	}

	if result.Report.Identical() {
		fmt.Println("The documents agree on every joinable row.")
		return
	}

	fmt.Printf("\n%d difference(s):\n", len(result.Report.Differences))
	for _, statement := range result.Report.Statements() {
		fmt.Printf("  - %s\n", statement)
	}
}
