package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/job-tailor/internal/jobs"
	"github.com/jonathan/job-tailor/internal/keywords"
	"github.com/jonathan/job-tailor/internal/observability"
	"github.com/jonathan/job-tailor/internal/profile"
	"github.com/jonathan/job-tailor/internal/rendering"
	"github.com/jonathan/job-tailor/internal/schemas"
	"github.com/jonathan/job-tailor/internal/selection"
	"github.com/jonathan/job-tailor/internal/types"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Render a tailored resume and cover letter for one posting",
	Long:  "Runs the selection pipeline for one posting: extracts keywords from its description, scores every profile bullet, selects a capped and deduplicated subset, and writes the rendered resume, cover letter, and selection artifact to the output directory.",
	RunE:  runTailor,
}

var (
	tailorJobID  string
	tailorOutDir string
)

func init() {
	tailorCmd.Flags().StringVar(&tailorJobID, "job-id", "", "ID of the posting to tailor for (required)")
	tailorCmd.Flags().StringVar(&tailorOutDir, "out-dir", "", "Output directory (overrides config)")

	if err := tailorCmd.MarkFlagRequired("job-id"); err != nil {
		panic(fmt.Sprintf("failed to mark job-id flag as required: %v", err))
	}

	rootCmd.AddCommand(tailorCmd)
}

func runTailor(_ *cobra.Command, _ []string) error {
	// 1. Resolve configuration and logging
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if tailorOutDir != "" {
		cfg.OutDir = tailorOutDir
	}

	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// 2. Load the posting and the profile
	postings, err := jobs.Load(cfg.Jobs)
	if err != nil {
		return err
	}
	posting, err := jobs.FindByID(postings, tailorJobID, cfg.Jobs)
	if err != nil {
		return err
	}
	prof, err := profile.Load(cfg.Profile)
	if err != nil {
		return err
	}

	// 3. Extract the selection keyword set (wider than the cover letter pass)
	selectKeywords := keywords.Extract(posting.Description, cfg.SelectTopK)
	kws := keywords.NewSet(selectKeywords)

	log.Debug("extracted keywords",
		zap.String("posting_id", posting.ID),
		zap.Int("count", len(selectKeywords)),
	)

	var printer *observability.Printer
	if flagDebug {
		printer = observability.NewPrinter(os.Stdout)
		printer.PrintKeywords(posting.ID, selectKeywords)
	}

	// 4. Select bullets
	selected := selection.Select(prof, kws, cfg.PerGroupCap, cfg.GlobalCap)

	log.Info("selected bullets",
		zap.String("posting_id", posting.ID),
		zap.Int("selected", len(selected)),
	)
	if printer != nil {
		printer.PrintSelection(selected)
	}

	// 5. Render outputs
	resume, err := rendering.RenderResume(prof, selected)
	if err != nil {
		return err
	}

	letterKeywords := keywords.Extract(posting.Description, cfg.LetterTopK)
	letter, err := rendering.RenderCoverLetter(prof, posting, letterKeywords)
	if err != nil {
		return err
	}

	// 6. Write outputs
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", cfg.OutDir, err)
	}

	resumePath := filepath.Join(cfg.OutDir, posting.ID+"_resume.md")
	if err := os.WriteFile(resumePath, []byte(resume), 0o644); err != nil {
		return fmt.Errorf("failed to write resume to %s: %w", resumePath, err)
	}

	letterPath := filepath.Join(cfg.OutDir, posting.ID+"_cover_letter.md")
	if err := os.WriteFile(letterPath, []byte(letter), 0o644); err != nil {
		return fmt.Errorf("failed to write cover letter to %s: %w", letterPath, err)
	}

	// 7. PDF export is best-effort; the Markdown outputs are the source of truth
	pdfPath := filepath.Join(cfg.OutDir, posting.ID+"_resume.pdf")
	if err := rendering.ExportPDF(prof, selected, pdfPath); err != nil {
		log.Warn("PDF export failed", zap.String("path", pdfPath), zap.Error(err))
	}

	// 8. Write and validate the selection artifact
	artifact := types.SelectionArtifact{
		RunID:        uuid.NewString(),
		PostingID:    posting.ID,
		KeywordCount: len(selectKeywords),
		Selected:     selected,
	}
	artifactJSON, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal selection artifact: %w", err)
	}
	artifactPath := filepath.Join(cfg.OutDir, posting.ID+"_selection.json")
	if err := os.WriteFile(artifactPath, artifactJSON, 0o644); err != nil {
		return fmt.Errorf("failed to write selection artifact to %s: %w", artifactPath, err)
	}

	// Artifact validation is a safety check, not a requirement
	if err := schemas.ValidateSelectionArtifact(string(artifactJSON)); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: selection artifact validation failed: %v\n", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Tailored %d bullets for posting %s into %s\n", len(selected), posting.ID, cfg.OutDir)

	return nil
}
