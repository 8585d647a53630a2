package handlers

import (
	"fmt"

	"github.com/te5se/tgmux"
)

type InfoHandler struct {
}

func NewInfoHandler() *InfoHandler {
	return &InfoHandler{}
}

func (h *InfoHandler) Register(router *tgmux.Router) error {
	return router.Register(tgmux.CommandInfo, h.Handle)
}

func (h *InfoHandler) Handle(ctx *tgmux.TGContext) error {
	bot := ctx.Bot
	text := fmt.Sprintf(`
Bot Information:
• Username: @%s
• Name: %s
• ID: %d
`, bot.UserName, bot.FirstName, bot.ID)

	return ctx.Reply(text, tgmux.ParseModeNone)
}
