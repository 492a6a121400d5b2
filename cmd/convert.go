package cmd

import (
	"context"
	"fmt"

	"github.com/j57n-3co-x-5735/GoogleTasksToSuperProductivity/internal/config"
	"github.com/j57n-3co-x-5735/GoogleTasksToSuperProductivity/internal/convert"
	"github.com/j57n-3co-x-5735/GoogleTasksToSuperProductivity/internal/gtasks"
	"github.com/j57n-3co-x-5735/GoogleTasksToSuperProductivity/internal/logging"
	"github.com/j57n-3co-x-5735/GoogleTasksToSuperProductivity/internal/sp"
	"github.com/j57n-3co-x-5735/GoogleTasksToSuperProductivity/internal/ui"
)

// convertCommand runs the full pipeline: load, validate, convert, write.
func convertCommand(ctx context.Context, cfg *config.Config, args []string) error {
	if err := resolveArgs(cfg, "gt2sp convert", args); err != nil {
		return err
	}

	logger := logging.New(cfg.Verbose)

	export, err := gtasks.Load(cfg.InputFile)
	if err != nil {
		return err
	}
	logger.Debug("loaded export", "file", cfg.InputFile, "lists", len(export.Items), "tasks", export.TaskCount())

	report := gtasks.Validate(export)
	if !report.Clean() {
		logger.Warn("validation findings",
			"duplicates", len(report.DuplicateIDs),
			"orphans", len(report.Orphans),
			"cycles", len(report.Cycles))
	}

	backup, result, err := convert.Convert(export, convert.Options{
		MaxAnomalyRatio: cfg.MaxAnomalyRatio,
		KeepDeleted:     cfg.KeepDeleted,
		ThemeColor:      cfg.ThemeColor,
		Report:          report,
	})
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	for li := range export.Items {
		list := &export.Items[li]
		logger.Debug("converted list", "title", list.Title, "tasks", len(list.Items))
	}
	for _, a := range result.Anomalies {
		logger.Debug("anomaly", "kind", a.Kind, "list", a.ListID, "task", a.TaskID, "detail", a.Detail)
	}
	if result.Skipped > 0 {
		logger.Debug("skipped deleted/hidden records", "count", result.Skipped)
	}

	if cfg.ValidateOutput {
		if errs := sp.Check(backup); len(errs) > 0 {
			for _, e := range errs {
				logger.Error("output validation", "error", e)
			}
			return fmt.Errorf("output validation failed with %d error(s)", len(errs))
		}
		logger.Debug("output validation passed")
	}

	if cfg.UI == "tui" {
		if err := ui.RunReport(ctx, report, result); err != nil {
			return err
		}
	}

	if cfg.DryRun {
		fmt.Printf("Dry run complete: %d task(s) in %d project(s), %d finding(s)\n",
			result.Tasks, result.Projects, len(result.Anomalies))
		return nil
	}

	if err := backup.Save(cfg.Output); err != nil {
		return err
	}
	fmt.Printf("Converted %d task(s) in %d project(s): %s\n", result.Tasks, result.Projects, cfg.Output)
	return nil
}
