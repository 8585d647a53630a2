package handlers

import (
	"github.com/te5se/tgmux"
)

const helpText = `
Available commands:
/start - Start the bot
/help - Show this help message
/ping - Check if bot is alive
/info - Get bot information
`

type HelpHandler struct {
}

func NewHelpHandler() *HelpHandler {
	return &HelpHandler{}
}

func (h *HelpHandler) Register(router *tgmux.Router) error {
	return router.Register(tgmux.CommandHelp, h.Handle)
}

func (h *HelpHandler) Handle(ctx *tgmux.TGContext) error {
	return ctx.Reply(helpText, tgmux.ParseModeNone)
}
