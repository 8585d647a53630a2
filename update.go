package tgmux

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type User struct {
	ID          int64
	UserName    string
	DisplayName string
}

// Update is a single inbound message as seen by the router.
type Update struct {
	UpdateID  int
	ChatID    int64
	MessageID int
	Text      string
	IsCommand bool
	User      User
}

// Command returns the command token, or "" when the update isn't a command.
func (u Update) Command() Command {
	if !u.IsCommand {
		return ""
	}

	return commandFromText(u.Text)
}

// UpdateFromTG converts a transport update. ok is false when the update
// carries no message.
func UpdateFromTG(update tgbotapi.Update) (Update, bool) {
	msg := update.Message
	if msg == nil {
		return Update{}, false
	}

	upd := Update{
		UpdateID:  update.UpdateID,
		MessageID: msg.MessageID,
		Text:      msg.Text,
		IsCommand: msg.IsCommand(),
	}
	if msg.Chat != nil {
		upd.ChatID = msg.Chat.ID
	}
	if msg.From != nil {
		upd.User = userFromTG(msg.From)
	}

	return upd, true
}

func userFromTG(u *tgbotapi.User) User {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		name = u.UserName
	}

	return User{
		ID:          u.ID,
		UserName:    u.UserName,
		DisplayName: name,
	}
}
