package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/andyle182810/apiprobe/httpclient"
	"github.com/andyle182810/apiprobe/internal/config"
	"github.com/andyle182810/apiprobe/internal/fetch"
	"github.com/andyle182810/apiprobe/logutil"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Application exited with an error")
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logutil.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return fetch.New(newClient(cfg), os.Stdout).Run(ctx)
}

func newClient(cfg *config.Config) *httpclient.Client {
	opts := []httpclient.Option{httpclient.WithTimeout(cfg.HTTPTimeout)}

	if cfg.MaxResponseBytes > 0 {
		opts = append(opts, httpclient.WithMaxResponseSize(cfg.MaxResponseBytes))
	}

	return httpclient.New(fetch.EndpointURL, opts...)
}
