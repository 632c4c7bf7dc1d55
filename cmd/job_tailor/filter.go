package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/job-tailor/internal/jobs"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Print postings matching location and keyword rules",
	Long:  "Prints postings whose title/description satisfy the include/exclude substring rules and whose location matches at least one location substring. All matching is case-insensitive containment.",
	RunE:  runFilter,
}

var (
	filterLocations string
	filterInclude   string
	filterExclude   string
)

func init() {
	filterCmd.Flags().StringVar(&filterLocations, "locations", "", "Semicolon-separated location substrings (at least one must match)")
	filterCmd.Flags().StringVar(&filterInclude, "include", "", "Comma-separated substrings; at least one must appear in title or description")
	filterCmd.Flags().StringVar(&filterExclude, "exclude", "", "Comma-separated substrings; any match rejects the posting")

	rootCmd.AddCommand(filterCmd)
}

func runFilter(_ *cobra.Command, _ []string) error {
	// 1. Resolve configuration
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// 2. Load postings
	postings, err := jobs.Load(cfg.Jobs)
	if err != nil {
		return err
	}

	// 3. Apply the substring rules
	rules := jobs.ParseRules(filterLocations, filterInclude, filterExclude)
	matched := rules.Filter(postings)

	log.Debug("filtered postings",
		zap.Int("total", len(postings)),
		zap.Int("matched", len(matched)),
	)

	// 4. Print matches
	for _, p := range matched {
		fmt.Fprintf(os.Stdout, "%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Company, p.Location)
	}

	return nil
}
