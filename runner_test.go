package tgmux

import (
	"context"
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	User1ID int64 = 1231532149716294857
)

func tgCommand(text string, length int) tgbotapi.Update {
	upd := tgText(text)
	upd.Message.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: length}}
	return upd
}

func tgText(text string) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			From: &tgbotapi.User{ID: User1ID, UserName: "user", FirstName: "User"},
			Chat: &tgbotapi.Chat{ID: User1ID},
			Text: text,
		},
	}
}

func startRunner(t *testing.T, bot *BotAPIMock, router *Router, opts ...RunnerOption) (context.CancelFunc, <-chan error) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	opts = append([]RunnerOption{WithLogger(zerolog.Nop())}, opts...)
	runner := NewRunner(bot, IdentityFromUser(bot.Self), router, opts...)

	done := make(chan error, 1)
	go func() {
		done <- runner.Run(ctx)
	}()
	t.Cleanup(cancel)

	return cancel, done
}

func receive(t *testing.T, bot *BotAPIMock) tgbotapi.MessageConfig {
	t.Helper()

	select {
	case msg := <-bot.GetRecordedChan():
		return msg
	case <-time.After(time.Second):
		t.Fatal("no message was sent")
		return tgbotapi.MessageConfig{}
	}
}

func TestRunnerRepliesToCommand(t *testing.T) {
	bot := NewBotAPIMock()
	router := NewRouter()
	require.NoError(t, router.Register(CommandInfo, func(ctx *TGContext) error {
		return ctx.Reply("I am "+ctx.Bot.UserName, ParseModeHTML)
	}))

	startRunner(t, bot, router)
	bot.PushUpdate(tgCommand("/info", 5))

	msg := receive(t, bot)
	assert.Equal(t, User1ID, msg.ChatID)
	assert.Equal(t, "I am mock_bot", msg.Text)
	assert.Equal(t, "HTML", msg.ParseMode)
}

func TestRunnerIgnoresUnknownCommand(t *testing.T) {
	bot := NewBotAPIMock()
	router := NewRouter()
	require.NoError(t, router.RegisterFallback(func(ctx *TGContext) error {
		return ctx.Reply("fallback", ParseModeNone)
	}))

	startRunner(t, bot, router)
	bot.PushUpdate(tgCommand("/unknown", 8))
	bot.PushUpdate(tgText("text"))

	assert.Equal(t, "fallback", receive(t, bot).Text)
	select {
	case msg := <-bot.GetRecordedChan():
		t.Fatalf("unexpected message %q", msg.Text)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRunnerSkipsUpdatesWithoutMessage(t *testing.T) {
	bot := NewBotAPIMock()
	router := NewRouter()
	require.NoError(t, router.RegisterFallback(func(ctx *TGContext) error {
		return ctx.Reply(ctx.Update.Text, ParseModeNone)
	}))

	startRunner(t, bot, router)
	bot.PushUpdate(tgbotapi.Update{UpdateID: 1, EditedMessage: &tgbotapi.Message{Text: "edited"}})
	bot.PushUpdate(tgText("fresh"))

	assert.Equal(t, "fresh", receive(t, bot).Text)
}

func TestRunnerHandlerErrorReply(t *testing.T) {
	bot := NewBotAPIMock()
	router := NewRouter()
	require.NoError(t, router.Register(CommandPing, func(ctx *TGContext) error {
		return errors.New("failed")
	}))
	require.NoError(t, router.Register(CommandHelp, func(ctx *TGContext) error {
		panic("boom")
	}))

	startRunner(t, bot, router, WithErrorReply("Error occurred on the server"))
	bot.PushUpdate(tgCommand("/ping", 5))
	assert.Equal(t, "Error occurred on the server", receive(t, bot).Text)

	bot.PushUpdate(tgCommand("/help", 5))
	assert.Equal(t, "Error occurred on the server", receive(t, bot).Text)
}

func TestRunnerStopsOnCancel(t *testing.T) {
	bot := NewBotAPIMock()
	cancel, done := startRunner(t, bot, NewRouter())

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("runner did not stop")
	}
}

func TestReplierSendError(t *testing.T) {
	bot := NewBotAPIMock()
	sendErr := errors.New("network down")
	bot.FailSends(sendErr)

	err := NewReplier(bot).Reply(context.Background(), 1, "hi", ParseModeNone)

	assert.ErrorIs(t, err, sendErr)
}
