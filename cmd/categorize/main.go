package main

import (
	"context"
	"log"

	"notealog-ai-be/internal/bootstrap"
	"notealog-ai-be/internal/config"
	"notealog-ai-be/pkg/database"

	"github.com/fatih/color"
)

// One-shot categorization run, for cron jobs and manual invocation.
func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	result, err := container.CategorizeService.Run(context.Background())
	if err != nil {
		color.Red("Categorization run failed: %v", err)
		return
	}

	color.Cyan("Scanned %d uncategorized notes", result.ScannedNotes)
	for _, a := range result.Assigned {
		color.Green("  note %s -> %s (%s)", a.NoteId, a.Category, a.FolderId)
	}
	if result.Skipped > 0 {
		color.Yellow("Skipped %d notes (see logs)", result.Skipped)
	}
	if len(result.Categories) > 0 {
		color.White("Category vocabulary: %v", result.Categories)
	}
}
