package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-tailor/internal/browser"
	"github.com/jonathan/job-tailor/internal/jobs"
)

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open a posting's apply link in the default browser",
	RunE:  runOpen,
}

var openJobID string

func init() {
	openCmd.Flags().StringVar(&openJobID, "job-id", "", "ID of the posting to open (required)")

	if err := openCmd.MarkFlagRequired("job-id"); err != nil {
		panic(fmt.Sprintf("failed to mark job-id flag as required: %v", err))
	}

	rootCmd.AddCommand(openCmd)
}

func runOpen(_ *cobra.Command, _ []string) error {
	// 1. Resolve configuration
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// 2. Find the posting
	postings, err := jobs.Load(cfg.Jobs)
	if err != nil {
		return err
	}
	posting, err := jobs.FindByID(postings, openJobID, cfg.Jobs)
	if err != nil {
		return err
	}

	// 3. Open the apply link
	if posting.ApplyURL == "" {
		return fmt.Errorf("posting %s has no apply_url to open", posting.ID)
	}

	return browser.Open(posting.ApplyURL)
}
