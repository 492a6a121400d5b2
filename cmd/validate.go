package cmd

import (
	"context"
	"fmt"

	"github.com/j57n-3co-x-5735/GoogleTasksToSuperProductivity/internal/config"
	"github.com/j57n-3co-x-5735/GoogleTasksToSuperProductivity/internal/gtasks"
	"github.com/j57n-3co-x-5735/GoogleTasksToSuperProductivity/internal/ui"
)

// validateCommand inspects an export and reports findings without
// converting anything. Findings are not errors: only a malformed file
// fails the command.
func validateCommand(ctx context.Context, cfg *config.Config, args []string) error {
	if err := resolveArgs(cfg, "gt2sp validate", args); err != nil {
		return err
	}

	export, err := gtasks.Load(cfg.InputFile)
	if err != nil {
		return err
	}

	report := gtasks.Validate(export)

	if cfg.UI == "tui" {
		return ui.RunReport(ctx, report, nil)
	}

	fmt.Printf("Task lists: %d\n", report.TaskLists)
	fmt.Printf("Tasks: %d\n", report.Tasks)
	if report.Deleted > 0 || report.Hidden > 0 {
		fmt.Printf("Deleted: %d, hidden: %d\n", report.Deleted, report.Hidden)
	}
	if report.Clean() {
		fmt.Println("No findings")
		return nil
	}
	for _, id := range report.DuplicateIDs {
		fmt.Printf("  duplicate id: %s\n", id)
	}
	for _, o := range report.Orphans {
		fmt.Printf("  orphan: list %s task %s references missing parent %s\n", o.ListID, o.TaskID, o.Parent)
	}
	for _, id := range report.Cycles {
		fmt.Printf("  cycle: task %s sits on a parent-reference loop\n", id)
	}
	return nil
}
