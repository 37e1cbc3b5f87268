package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/osse101/DoughGuardian_Go/internal/bootstrap"
	"github.com/osse101/DoughGuardian_Go/internal/config"
	"github.com/osse101/DoughGuardian_Go/internal/domain"
)

func main() {
	playerID := flag.String("player", "", "player whose saved progress is deleted")
	all := flag.Bool("all", false, "delete every saved player")
	flag.Parse()

	if *playerID == "" && !*all {
		fmt.Fprintln(os.Stderr, "Usage: reset -player <id> | -all")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, closeStore, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreBackend, err)
	}
	defer closeStore()

	players := []string{*playerID}
	if *all {
		if players, err = store.ListPlayers(ctx); err != nil {
			log.Fatalf("Failed to list players: %v", err)
		}
	}

	for _, id := range players {
		if err := domain.ValidatePlayerID(id); err != nil {
			log.Fatalf("Invalid player id %q: %v", id, err)
		}
		log.Printf("Resetting progress for %s...\n", id)
		if err := store.Delete(ctx, id); err != nil {
			log.Fatalf("Failed to reset %s: %v", id, err)
		}
	}

	log.Printf("\n✅ Reset %d player(s) in the %s store.\n", len(players), cfg.StoreBackend)
	log.Println("Running services keep cached sessions until restarted or reset through the API")
}
