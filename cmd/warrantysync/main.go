package main

import (
	"context"
	"flag"
	"time"

	"github.com/fleetyard/warrantysync/pkg/config"
	"github.com/fleetyard/warrantysync/pkg/logger"
	"github.com/fleetyard/warrantysync/pkg/models"
	"github.com/fleetyard/warrantysync/pkg/sync"
)

func main() {
	configPath := flag.String("config", "", "Path to optional JSON config file")
	keyPath := flag.String("key", "", "Path to the EC private key (PEM)")
	clientID := flag.String("client-id", "", "API client identifier")
	keyID := flag.String("key-id", "", "Key identifier for the private key")
	outputDir := flag.String("output-dir", "", "Directory for the CSV outputs")
	computerFile := flag.String("computer-file", "", "Computer output filename")
	mobileFile := flag.String("mobile-file", "", "Mobile device output filename")
	delay := flag.Duration("delay", 0, "Delay between per-device API requests")
	flag.Parse()

	if err := logger.InitWithDefaults(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize logging")
	}

	log := logger.WithComponent("warrantysync")
	ctx := context.Background()

	var cfg models.Config

	if *configPath != "" {
		if err := config.NewConfig().Load(ctx, *configPath, &cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to load config")
		}
	}

	// Flags override anything from the config file.
	if *keyPath != "" {
		cfg.PrivateKeyPath = *keyPath
	}

	if *clientID != "" {
		cfg.ClientID = *clientID
	}

	if *keyID != "" {
		cfg.KeyID = *keyID
	}

	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if *computerFile != "" {
		cfg.ComputerFile = *computerFile
	}

	if *mobileFile != "" {
		cfg.MobileFile = *mobileFile
	}

	if *delay > 0 {
		cfg.RequestDelay = models.Duration(*delay)
	}

	if err := config.ValidateConfig(&cfg); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	svc, err := sync.NewService(&cfg, logger.WithComponent("sync"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create sync service")
	}
	defer svc.Close()

	log.Info().
		Str("output_dir", cfg.OutputDir).
		Dur("request_delay", time.Duration(cfg.RequestDelay)).
		Msg("Starting warranty sync")

	if err := svc.Run(ctx); err != nil {
		svc.Close()
		log.Fatal().Err(err).Msg("Warranty sync failed")
	}
}
