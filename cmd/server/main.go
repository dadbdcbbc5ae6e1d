// Command server exposes a string set over HTTP.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/kumarlokesh/sysd/exercises/trie-set/internal/api"
	"github.com/kumarlokesh/sysd/exercises/trie-set/internal/config"
	"github.com/kumarlokesh/sysd/exercises/trie-set/internal/logging"
	"github.com/kumarlokesh/sysd/exercises/trie-set/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	logger, err := logging.New(logging.Options{Level: cfg.Log.Level, Console: cfg.Log.Console})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create logger")
	}
	log.Logger = logger

	st := store.NewSetStore()
	if cfg.Seed.File != "" {
		if err := seed(st, cfg.Seed.File); err != nil {
			log.Fatal().Err(err).Str("file", cfg.Seed.File).Msg("Failed to seed store")
		}
	}

	server := api.NewServer(cfg.Server.Addr(), st, logger)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
		return
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("Received signal, shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
		return
	}
	log.Info().Msg("Server gracefully stopped")
}

func seed(st *store.SetStore, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	added, err := st.Load(context.Background(), f)
	if err != nil {
		return err
	}
	log.Info().Int("added", added).Str("file", path).Msg("Seeded store")
	return nil
}
