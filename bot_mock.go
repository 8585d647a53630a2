package tgmux

import (
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var ErrNotAMessage = errors.New("tgmux: mock only records message configs")

// BotAPIMock feeds pushed updates to the runner and records sent messages.
type BotAPIMock struct {
	Self tgbotapi.User

	updChannel  chan tgbotapi.Update
	sendChannel chan tgbotapi.MessageConfig
	sendErr     error
}

func NewBotAPIMock() *BotAPIMock {
	return &BotAPIMock{
		Self: tgbotapi.User{
			ID:        1,
			IsBot:     true,
			FirstName: "Mock",
			UserName:  "mock_bot",
		},
		updChannel:  make(chan tgbotapi.Update),
		sendChannel: make(chan tgbotapi.MessageConfig, 16),
	}
}

// GetUpdatesChan implements BotAPI.
func (b *BotAPIMock) GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return b.updChannel
}

// Send implements BotAPI.
func (b *BotAPIMock) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	msg, ok := c.(tgbotapi.MessageConfig)
	if !ok {
		return tgbotapi.Message{}, ErrNotAMessage
	}
	if b.sendErr != nil {
		return tgbotapi.Message{}, b.sendErr
	}
	b.sendChannel <- msg

	return tgbotapi.Message{Text: msg.Text}, nil
}

// StopReceivingUpdates implements BotAPI.
func (b *BotAPIMock) StopReceivingUpdates() {
	close(b.updChannel)
}

// FailSends makes every following Send return err.
func (b *BotAPIMock) FailSends(err error) {
	b.sendErr = err
}

func (b *BotAPIMock) PushUpdate(update tgbotapi.Update) {
	b.updChannel <- update
}

func (b *BotAPIMock) GetRecordedChan() chan tgbotapi.MessageConfig {
	return b.sendChannel
}

var _ BotAPI = (*BotAPIMock)(nil)
