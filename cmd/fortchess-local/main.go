package main

import (
	"flag"
	"net/http"
	"time"

	"fortchess/internal/dice"
	"fortchess/internal/server/game"
	httpserver "fortchess/internal/server/http"

	log "github.com/sirupsen/logrus"
)

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	level := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	lvl, err := log.ParseLevel(*level)
	if err != nil {
		log.Fatalf("bad -log-level: %v", err)
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	srv := &http.Server{
		Addr:              *addr,
		Handler:           httpserver.NewServer(game.NewManager(dice.Clock())),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.WithField("addr", *addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
