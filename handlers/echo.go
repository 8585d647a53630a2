package handlers

import (
	"github.com/te5se/tgmux"
)

// EchoHandler answers any plain text with the same text.
type EchoHandler struct {
}

func NewEchoHandler() *EchoHandler {
	return &EchoHandler{}
}

func (h *EchoHandler) Register(router *tgmux.Router) error {
	return router.RegisterFallback(h.Handle)
}

func (h *EchoHandler) Handle(ctx *tgmux.TGContext) error {
	return ctx.Reply("You said: "+ctx.Update.Text, tgmux.ParseModeNone)
}
