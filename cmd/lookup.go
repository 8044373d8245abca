package cmd

import (
	"context"
	"fmt"

	"invoice-reconciler/core/config"
	"invoice-reconciler/core/logger"
	"invoice-reconciler/feature/lookup"

	"github.com/spf13/cobra"
)

// lookupCmd is the parent command for lookup-table operations.
var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Inspect the product lookup table",
	Long:  `Fetch the lookup table from its configured source or resolve a single description.`,
}

// lookupFetchCmd fetches the table and reports its size.
var lookupFetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the lookup table and report its size",
	RunE:  runLookupFetch,
}

// lookupMatchCmd resolves one description against the table.
var lookupMatchCmd = &cobra.Command{
	Use:   "match [description]",
	Short: "Resolve a product description to a code",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookupMatch,
}

func init() {
	lookupCmd.AddCommand(lookupFetchCmd)
	lookupCmd.AddCommand(lookupMatchCmd)
	RootCmd.AddCommand(lookupCmd)
}

func newLookupService() (*lookup.Service, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console"})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return lookup.NewService(lookup.NewCache(lookup.NewLoader(cfg.Lookup, l)), l), nil
}

func runLookupFetch(cmd *cobra.Command, args []string) error {
	svc, err := newLookupService()
	if err != nil {
		return err
	}

	count, err := svc.Refresh(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Lookup table loaded: %d entries\n", count)
	return nil
}

func runLookupMatch(cmd *cobra.Command, args []string) error {
	svc, err := newLookupService()
	if err != nil {
		return err
	}

	result, err := svc.Match(context.Background(), args[0])
	if err != nil {
		return err
	}

	if !result.Found() {
		fmt.Printf("%q did not resolve to a code\n", args[0])
		return nil
	}

	fmt.Printf("%q -> %s (%s)\n", args[0], result.Code, result.Label())
	return nil
}
