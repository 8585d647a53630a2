package tgmux

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotAPI is the part of *tgbotapi.BotAPI the runner uses.
type BotAPI interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	StopReceivingUpdates()
}

var _ BotAPI = (*tgbotapi.BotAPI)(nil)

type botReplier struct {
	bot BotAPI
}

// NewReplier returns a Replier that sends plain messages through bot.
func NewReplier(bot BotAPI) Replier {
	return botReplier{bot: bot}
}

func (r botReplier) Reply(ctx context.Context, chatID int64, text string, mode ParseMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = string(mode)

	_, err := r.bot.Send(msg)
	return err
}
