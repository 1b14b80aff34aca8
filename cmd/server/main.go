package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/brewpos/terminal/internal/cart"
	"github.com/brewpos/terminal/internal/config"
	"github.com/brewpos/terminal/internal/history"
	"github.com/brewpos/terminal/internal/orders"
	"github.com/brewpos/terminal/internal/router"
	"github.com/brewpos/terminal/internal/session"
	"github.com/brewpos/terminal/internal/settings"
	"github.com/brewpos/terminal/internal/ws"
)

func main() {
	cfg := config.Load()

	store, err := settings.Open(cfg.StatePath)
	if err != nil {
		log.Fatalf("open settings store: %v", err)
	}

	sessions := session.NewStore(store, cfg.IdleTimeout)
	defer sessions.Close()

	// Pick up where the terminal left off, locked or not.
	if snap, ok, err := store.LoadAuth(); err != nil {
		log.Printf("ERROR: load session snapshot: %v", err)
	} else if ok {
		sessions.Restore(snap)
	}

	hub := ws.NewHub()
	go hub.Run()

	stores := router.Stores{
		Cart:     cart.NewStore(),
		Orders:   orders.NewStore(hub),
		History:  history.NewStore(),
		Sessions: sessions,
		Settings: store,
	}

	r := router.New(cfg, stores, hub)

	log.Printf("Starting server on :%s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatal(err)
	}
}
