// Package main is the entry point for tilegrid.
package main

import (
	"context"
	"log"
	"os"

	"github.com/samdwyer/tilegrid/internal/game"
	"github.com/samdwyer/tilegrid/internal/telemetry"
)

const serviceVersion = "0.1.0"

func main() {
	// Load .env file for local development
	if err := game.LoadDotEnv(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	if cfg.TelemetryEnabled() {
		shutdown, err := telemetry.Setup(ctx, telemetryOptions(cfg))
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			telemetry.Disable()
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	g, err := game.New(cfg, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to initialize world: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Printf("Run error: %v", err)
		os.Exit(1)
	}
}

// telemetryOptions maps run configuration onto the OTLP exporter.
func telemetryOptions(cfg game.Config) telemetry.Options {
	endpoint, headers := cfg.TelemetryEndpoint()
	return telemetry.Options{
		ServiceName:    "tilegrid",
		ServiceVersion: serviceVersion,
		EndpointURL:    endpoint,
		Headers:        headers,
	}
}
