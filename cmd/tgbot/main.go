package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/te5se/tgmux"
	"github.com/te5se/tgmux/handlers"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := tgmux.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	bot, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to telegram")
	}
	bot.Debug = cfg.Debug

	router := tgmux.NewRouter()
	if err := handlers.RegisterAll(router); err != nil {
		log.Fatal().Err(err).Msg("registering handlers")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	runner := tgmux.NewRunner(bot, tgmux.IdentityFromUser(bot.Self), router,
		tgmux.WithLogger(log.Logger),
		tgmux.WithPollTimeout(cfg.PollTimeout),
		tgmux.WithQueueIdle(cfg.QueueIdle),
	)

	log.Info().Str("bot", bot.Self.UserName).Msg("Starting bot...")
	if err := runner.Run(ctx); err != nil {
		log.Error().Err(err).Msg("runner stopped")
	}
}
