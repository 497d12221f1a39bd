package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tsawler/cvoutline"
	"github.com/tsawler/cvoutline/export"
	"github.com/tsawler/cvoutline/layout"
)

// batchSummary is written next to the profiles of a batch run
type batchSummary struct {
	RunID      string         `json:"run_id"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Documents  []batchOutcome `json:"documents"`
	Failed     int            `json:"failed"`
}

type batchOutcome struct {
	Source   string              `json:"source"`
	Output   string              `json:"output,omitempty"`
	Warnings []cvoutline.Warning `json:"warnings,omitempty"`
	Error    string              `json:"error,omitempty"`

	// Boilerplate is the running header/footer text left out of the profile
	Boilerplate []layout.RepeatedText `json:"boilerplate,omitempty"`
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		outDir  string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "batch FILE...",
		Short: "Write a profile for every layout file, processing them in parallel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				return fmt.Errorf("--out is required")
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			if cmd.Flags().Changed("workers") {
				a.cfg.Batch.Workers = workers
			}

			runID := uuid.New().String()
			logger := a.logger.With("run_id", runID)
			summary := batchSummary{RunID: runID, StartedAt: time.Now().UTC()}

			procs := make([]*cvoutline.Processor, len(args))
			for i, path := range args {
				procs[i] = a.processor(path).WithLogger(logger)
			}

			logger.Info("batch started", "documents", len(procs), "workers", a.cfg.Batch.Workers)

			results, err := cvoutline.ProcessAll(cmd.Context(), procs, cvoutline.WithWorkers(a.cfg.Batch.Workers))

			for i, r := range results {
				outcome := batchOutcome{Source: args[i]}
				if r.Err == nil {
					outcome.Warnings = r.Result.Warnings
					outcome.Boilerplate = r.Result.Boilerplate
					outcome.Output, r.Err = writeProfile(r.Result, args[i], outDir)
				}
				if r.Err != nil {
					outcome.Error = r.Err.Error()
					summary.Failed++
					logger.Error("document failed", "source", args[i], "error", r.Err)
				}
				summary.Documents = append(summary.Documents, outcome)
			}
			summary.FinishedAt = time.Now().UTC()

			summaryPath := filepath.Join(outDir, "summary-"+runID+".json")
			if werr := writeSummary(summaryPath, summary); werr != nil {
				return werr
			}

			logger.Info("batch finished",
				"documents", len(summary.Documents),
				"failed", summary.Failed,
				"summary", summaryPath,
			)
			fmt.Fprintln(cmd.OutOrStdout(), summaryPath)

			if err != nil {
				return err
			}
			if summary.Failed > 0 {
				return fmt.Errorf("%d of %d documents failed", summary.Failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Directory for profiles and the run summary")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Documents processed at once (0 uses all CPUs)")
	return cmd
}

// writeProfile stores a profile with its sections as <out>/<name>.profile.json
func writeProfile(res *cvoutline.Result, source, outDir string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	path := filepath.Join(outDir, base+".profile.json")

	exporter := export.NewExporterWithConfig(export.ExportConfig{Format: export.FormatJSON, IncludeSections: true})
	if err := exporter.ExportProfileToFile(res.Profile, res.Sections, path); err != nil {
		return "", err
	}
	return path, nil
}

func writeSummary(path string, summary batchSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
