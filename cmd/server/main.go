package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"cardtable/config"
	"cardtable/deckimport"
	"cardtable/game"
	"cardtable/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	log := setupLogger(cfg.Server.LogLevel)

	importer := deckimport.NewService(deckimport.Config{
		ScryfallBaseURL: cfg.Scryfall.BaseURL,
		UserAgent:       cfg.Scryfall.UserAgent,
		RequestDelay:    cfg.Scryfall.RequestDelay,
		CacheTTL:        cfg.Scryfall.CacheTTL,
		Logger:          log,
	})

	registry := game.NewRegistry(nil, importer, cfg.Match.IdleTimeout)
	go registry.Run(context.Background(), cfg.Match.SweepInterval)

	gw := server.NewGateway(registry, log)
	api := server.NewAPIHandler(importer, log)
	router := server.NewRouter(gw, api)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("server listening", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}
