package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/pathtracker/internal/config"
	"github.com/KirkDiggler/pathtracker/internal/services"
	"github.com/KirkDiggler/pathtracker/internal/services/tracker"
	"github.com/KirkDiggler/pathtracker/internal/telemetry"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if len(os.Args) > 1 {
		cfg.Storage.SaveKey = os.Args[1]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatalf("Failed to set up telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("Failed to flush traces: %v", err)
		}
	}()

	provider, err := services.NewProvider(ctx, &services.ProviderConfig{Config: cfg})
	if err != nil {
		log.Printf("Failed to load tracker %s: %v", cfg.Storage.SaveKey, err)
		return
	}
	defer provider.Close()

	fmt.Printf("Tracker %s (%s storage)\n\n", cfg.Storage.SaveKey, cfg.Storage.Backend)
	printTracker(os.Stdout, provider.Tracker)
}

// printTracker writes the roster, conditions and history of svc
func printTracker(w io.Writer, svc tracker.Service) {
	roster := svc.Characters()
	acting := svc.InTurn()

	fmt.Fprintf(w, "Found %d characters:\n", len(roster))
	for _, c := range roster {
		marker := " "
		if acting != nil && acting.Name == c.Name {
			marker = ">"
		}
		fmt.Fprintf(w, "%s %3d  %s\n", marker, c.Initiative, c)

		conds, err := svc.GetConditions(c.Name)
		if err != nil {
			fmt.Fprintf(w, "        ERROR - %v\n", err)
			continue
		}
		for _, cond := range conds {
			fmt.Fprintf(w, "        %s\n", cond)
		}
	}
	if acting == nil {
		fmt.Fprintln(w, "\nNo one is acting")
	}

	settings := svc.Settings()
	fmt.Fprintf(w, "\nSettings: undo size %d, ties %s\n", settings.UndoSize, settings.TieBreak)

	printHistory(w, "Undo", svc.UndoHistory())
	printHistory(w, "Redo", svc.RedoHistory())
}

func printHistory(w io.Writer, label string, entries []tracker.HistoryEntry) {
	fmt.Fprintf(w, "\n%s history (%d):\n", label, len(entries))
	for _, e := range entries {
		fmt.Fprintf(w, "  %s  %s\n", e.ID, strings.ReplaceAll(e.Operation, "_", " "))
	}
}
