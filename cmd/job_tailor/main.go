// Package main provides the entry point for the job_tailor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/job-tailor/internal/config"
	"github.com/jonathan/job-tailor/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "job_tailor",
	Short: "Tailor a resume to a job posting",
	Long:  "job_tailor matches free-text job postings against a structured personal history and renders a resume and cover letter built from the most relevant accomplishments.",
}

var (
	flagConfig  string
	flagJobs    string
	flagProfile string
	flagDebug   bool
	flagJSON    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config file (default is job-tailor.yaml in the current directory)")
	rootCmd.PersistentFlags().StringVar(&flagJobs, "jobs", "", "Path to the postings CSV file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Path to the profile YAML document (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "d", false, "Verbose/debug output")
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "JSON format for logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the layered configuration and applies persistent flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagJobs != "" {
		cfg.Jobs = flagJobs
	}
	if flagProfile != "" {
		cfg.Profile = flagProfile
	}
	return cfg, nil
}

// newLogger builds the zap logger from the persistent logging flags
func newLogger() (*zap.Logger, error) {
	return logger.New(flagJSON, flagDebug)
}
