package tgmux

import (
	"context"
	"fmt"
	"runtime"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	DefaultPollTimeout = 60
	DefaultQueueIdle   = 10 * time.Second
)

// Runner drives the long-polling loop and feeds every message to the router.
type Runner struct {
	bot          BotAPI
	identity     Identity
	router       *Router
	replier      Replier
	logger       zerolog.Logger
	pollTimeout  int
	queueIdle    time.Duration
	errorReply   string
	queueManager *queueManager
}

type RunnerOption func(*Runner)

func WithLogger(logger zerolog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithPollTimeout sets the long-polling timeout in seconds.
func WithPollTimeout(seconds int) RunnerOption {
	return func(r *Runner) {
		if seconds > 0 {
			r.pollTimeout = seconds
		}
	}
}

func WithQueueIdle(idle time.Duration) RunnerOption {
	return func(r *Runner) {
		if idle > 0 {
			r.queueIdle = idle
		}
	}
}

// WithErrorReply makes the runner answer with text when a handler fails.
// By default failures are only logged.
func WithErrorReply(text string) RunnerOption {
	return func(r *Runner) {
		r.errorReply = text
	}
}

func NewRunner(bot BotAPI, identity Identity, router *Router, opts ...RunnerOption) *Runner {
	runner := &Runner{
		bot:         bot,
		identity:    identity,
		router:      router,
		replier:     NewReplier(bot),
		logger:      log.Logger,
		pollTimeout: DefaultPollTimeout,
		queueIdle:   DefaultQueueIdle,
	}
	for _, opt := range opts {
		opt(runner)
	}

	return runner
}

// Run blocks until ctx is cancelled or the updates channel is closed.
func (runner *Runner) Run(ctx context.Context) error {
	runner.queueManager = newQueueManager(ctx, func(update Update) {
		runner.processUpdate(ctx, update)
	}, runner.queueIdle)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = runner.pollTimeout

	updates := runner.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			runner.bot.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}

			upd, ok := UpdateFromTG(update)
			if !ok {
				runner.logger.Debug().Int("update_id", update.UpdateID).Msg("skipping update without message")
				continue
			}

			runner.queueManager.Enqueue(upd)
		}
	}
}

func (runner *Runner) processUpdate(ctx context.Context, update Update) {
	defer func() {
		if r := recover(); r != nil {
			stackSize := 1024 * 8

			stack := make([]byte, stackSize)
			stack = stack[:runtime.Stack(stack, false)]

			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}

			runner.logger.Debug().Err(err).Str("stack", string(stack)).Msg("handler panicked")
			runner.handleError(ctx, err, "panicked", update)
		}
	}()

	runner.logger.Debug().Msgf("[%s] %s %s", update.User.UserName, update.Text, update.Command())

	err := runner.router.Dispatch(NewTGContext(ctx, update, runner.identity, runner.replier))
	if err != nil {
		runner.handleError(ctx, err, "while handling update", update)
	}
}

func (runner *Runner) handleError(ctx context.Context, err error, errMessage string, update Update) {
	runner.logger.Err(err).
		Int("update_id", update.UpdateID).
		Int64("chat_id", update.ChatID).
		Msg(errMessage)

	if runner.errorReply == "" {
		return
	}

	err = runner.replier.Reply(ctx, update.ChatID, runner.errorReply, ParseModeNone)
	if err != nil {
		runner.logger.Err(err).Msg("while sending error reply to TG")
	}
}
