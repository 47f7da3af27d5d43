package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/osse101/GemClicker_Go/internal/bootstrap"
	"github.com/osse101/GemClicker_Go/internal/config"
	"github.com/osse101/GemClicker_Go/internal/persistence"
)

// reset deletes a save slot from the configured storage backend, the offline
// counterpart of the in-game hard reset.
func main() {
	slot := flag.String("slot", "", "save slot to delete (defaults to SAVE_SLOT)")
	yes := flag.Bool("yes", false, "skip the confirmation prompt")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *slot != "" {
		cfg.SaveSlot = *slot
	}

	if !*yes {
		fmt.Printf("Delete save slot %q from the %s backend? [y/N] ", cfg.SaveSlot, cfg.StorageBackend)
		var answer string
		_, _ = fmt.Fscanln(os.Stdin, &answer)
		if answer != "y" && answer != "Y" {
			log.Println("Aborted.")
			return
		}
	}

	ctx := context.Background()
	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	store, closeStore, err := bootstrap.OpenSaveStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open save store: %v", err)
	}
	defer closeStore()

	if err := persistence.NewManager(store, cfg.SaveSlot, cfg.StorageBackend, cat).Delete(ctx); err != nil {
		log.Fatalf("Failed to delete save: %v", err)
	}
	log.Printf("Save slot %s deleted.\n", cfg.SaveSlot)
}
