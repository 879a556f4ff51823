package main

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/trunov/rawhub/internal/app"
	"github.com/trunov/rawhub/internal/config"
	"github.com/trunov/rawhub/internal/transport/handler"
)

const file = "config.json"

func initSentry(cfg *config.SentryConfig, version string) error {
	return sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.Environment,
		Release:     version,
	})
}

func setLogLevel(cfg *config.LogConfig) {
	switch cfg.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func main() {
	cfg := config.NewConfig()
	if err := cfg.Read(file); err != nil {
		log.Fatal().Err(err).Msg("could not read config file")
	}

	setLogLevel(&cfg.Log)

	if err := initSentry(&cfg.Sentry, handler.ServiceVersion); err != nil {
		log.Fatal().Err(err).Msg("sentry.Init failed")
	}

	// Flush buffered events before the program terminates.
	defer sentry.Flush(2 * time.Second)

	app, err := app.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("could not initialize service")
	}

	if err := app.Run(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
