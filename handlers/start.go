package handlers

import (
	"fmt"
	"html"

	"github.com/te5se/tgmux"
)

type StartHandler struct {
}

func NewStartHandler() *StartHandler {
	return &StartHandler{}
}

func (h *StartHandler) Register(router *tgmux.Router) error {
	return router.Register(tgmux.CommandStart, h.Handle)
}

func (h *StartHandler) Handle(ctx *tgmux.TGContext) error {
	user := ctx.Update.User
	text := fmt.Sprintf("Hi %s! I'm your bot. Use /help to see available commands.", mentionHTML(user))

	return ctx.Reply(text, tgmux.ParseModeHTML)
}

func mentionHTML(user tgmux.User) string {
	return fmt.Sprintf(`<a href="tg://user?id=%d">%s</a>`, user.ID, html.EscapeString(user.DisplayName))
}
