package handlers

import (
	"github.com/te5se/tgmux"
)

const pongText = "Pong! 🏓"

type PingHandler struct {
}

func NewPingHandler() *PingHandler {
	return &PingHandler{}
}

func (h *PingHandler) Register(router *tgmux.Router) error {
	return router.Register(tgmux.CommandPing, h.Handle)
}

func (h *PingHandler) Handle(ctx *tgmux.TGContext) error {
	return ctx.Reply(pongText, tgmux.ParseModeNone)
}
