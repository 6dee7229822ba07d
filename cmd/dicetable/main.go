package main

import (
	"log"

	"dicetable/internal/config"
	"dicetable/internal/game"
	"dicetable/internal/history"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// The window still runs if the history file can't be opened
	hist, err := history.Open(cfg.HistoryPath)
	if err != nil {
		log.Printf("history disabled: %v", err)
		hist = nil
	}
	defer hist.Close()

	game.New(cfg, hist).Run()
}
