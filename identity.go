package tgmux

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// Identity describes the bot account itself. It is read-only after startup.
type Identity struct {
	ID        int64
	UserName  string
	FirstName string
}

// IdentityFromUser builds an Identity from tgbotapi.BotAPI.Self.
func IdentityFromUser(self tgbotapi.User) Identity {
	return Identity{
		ID:        self.ID,
		UserName:  self.UserName,
		FirstName: self.FirstName,
	}
}
