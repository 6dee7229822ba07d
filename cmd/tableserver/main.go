package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"dicetable/internal/config"
	"dicetable/internal/dice"
	"dicetable/internal/history"
	"dicetable/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	hist, err := history.Open(cfg.HistoryPath)
	if err != nil {
		log.Printf("history disabled: %v", err)
		hist = nil
	}
	defer hist.Close()

	srv := server.New(dice.NewTable(cfg.Table()), hist)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	http.HandleFunc("/ws", srv.HandleWS)
	go func() {
		log.Printf("listening on %s", cfg.ListenAddr)
		if err := http.ListenAndServe(cfg.ListenAddr, nil); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	srv.Run(ctx)
}
