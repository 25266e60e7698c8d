package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jmvisser/kamerdata/internal/config"
	"github.com/jmvisser/kamerdata/internal/dataset"
	"github.com/jmvisser/kamerdata/internal/tk"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := config.Load()

	ctx := context.Background()

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory %s: %v", cfg.OutputDir, err)
	}

	client := tk.NewClient(cfg.BaseURL, cfg.VotePause, cfg.MotionPause, cfg.MotionTimeout)

	log.Println("Fetching data from the Tweede Kamer API...")

	for _, window := range dataset.Windows {
		log.Printf("=== %s period: %s to %s ===\n", window.Label, window.DateFrom(), window.DateTo())

		// Step 1: voting data
		log.Println("Step 1/2: Fetching voting data...")
		votes := dataset.CollectWindowVotes(ctx, client, window)
		if len(votes) == 0 {
			log.Printf("No voting data found for %s period\n", window.Label)
		} else {
			path := filepath.Join(cfg.OutputDir, window.VotesFile)
			if err := dataset.WriteVotesCSV(path, votes); err != nil {
				log.Fatalf("Failed to write voting data: %v", err)
			}
			log.Printf("Saved %s: %d votes, %d decisions, %d parties\n",
				path, len(votes), dataset.UniqueDecisions(votes), dataset.UniqueParties(votes))
		}

		// Step 2: co-authoring data
		log.Println("Step 2/2: Fetching co-authoring data...")
		motions, err := client.FetchMotions(ctx, window.DateFrom(), window.DateTo())
		if err != nil {
			slog.Warn("Motion fetch aborted early, keeping partial results",
				"window", window.Label,
				"documents", len(motions),
				"error", err,
			)
		}
		if len(motions) == 0 {
			log.Printf("No co-authoring data found for %s period\n", window.Label)
			continue
		}

		path := filepath.Join(cfg.OutputDir, window.MotionsFile)
		if err := dataset.WriteMotionsJSON(path, motions); err != nil {
			log.Fatalf("Failed to write co-authoring data: %v", err)
		}
		log.Printf("Saved %s: %d documents, %d unique motions, %d actor relations\n",
			path, len(motions), dataset.UniqueMotions(motions), dataset.TotalActorRelations(motions))
	}

	log.Println("Fetch completed successfully!")
}
