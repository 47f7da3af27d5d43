package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/osse101/GemClicker_Go/internal/bootstrap"
	"github.com/osse101/GemClicker_Go/internal/config"
	"github.com/osse101/GemClicker_Go/internal/game"
	"github.com/osse101/GemClicker_Go/internal/persistence"
	"github.com/osse101/GemClicker_Go/internal/validation"
)

type dump struct {
	Slot    string          `json:"slot"`
	Backend string          `json:"backend"`
	State   json.RawMessage `json:"state"`
	Stats   game.Stats      `json:"stats"`
	Quests  interface{}     `json:"visible_quests"`

	// Violations are schema problems in the stored document, before sanitizing
	Violations []string `json:"violations,omitempty"`
}

// debug loads a save slot through the same migration path as the server and
// prints the sanitized state with its derived stats. Nothing is written back.
func main() {
	slot := flag.String("slot", "", "save slot to inspect (defaults to SAVE_SLOT)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *slot != "" {
		cfg.SaveSlot = *slot
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

	var violations []string
	if raw, err := store.Load(ctx, cfg.SaveSlot); err == nil {
		violations = checkSchema(raw)
	}

	manager := persistence.NewManager(store, cfg.SaveSlot, cfg.StorageBackend, cat)
	st := manager.Load(ctx)
	engine := game.NewEngine(st, cat)
	doc, err := persistence.Encode(st)
	if err != nil {
		log.Fatalf("Failed to encode state: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dump{
		Slot:    cfg.SaveSlot,
		Backend: cfg.StorageBackend,
		State:   doc,
		Stats:   engine.Stats(),
		Quests:  engine.VisibleQuests(),

		Violations: violations,
	}); err != nil {
		log.Fatalf("Failed to write dump: %v", err)
	}
}

func checkSchema(raw []byte) []string {
	v, err := validation.NewSaveValidator()
	if err != nil {
		log.Fatalf("Failed to load save schema: %v", err)
	}
	err = v.ValidateBytes(raw)
	var se *validation.SchemaError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &se):
		return se.Violations
	default:
		return []string{err.Error()}
	}
}
