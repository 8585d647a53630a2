package tgmux

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateRegistration = errors.New("tgmux: handler already registered")
	ErrInvalidRegistration   = errors.New("tgmux: invalid registration")
)

type HandlerFunc func(ctx *TGContext) error

// Router maps a command token, or plain text, to exactly one handler.
// All registration must happen before the first Dispatch; after that the
// router is read-only and safe for concurrent use.
type Router struct {
	commandHandlers map[Command]HandlerFunc
	fallback        HandlerFunc
}

func NewRouter() *Router {
	return &Router{
		commandHandlers: make(map[Command]HandlerFunc),
	}
}

func (router *Router) Register(token Command, handleFunc HandlerFunc) error {
	if token == "" || handleFunc == nil {
		return fmt.Errorf("%w: command %q", ErrInvalidRegistration, token)
	}
	if _, ok := router.commandHandlers[token]; ok {
		return fmt.Errorf("%w: command %q", ErrDuplicateRegistration, token)
	}

	router.commandHandlers[token] = handleFunc
	return nil
}

// RegisterFallback sets the handler for non-command text.
func (router *Router) RegisterFallback(handleFunc HandlerFunc) error {
	if handleFunc == nil {
		return fmt.Errorf("%w: nil fallback", ErrInvalidRegistration)
	}
	if router.fallback != nil {
		return fmt.Errorf("%w: fallback", ErrDuplicateRegistration)
	}

	router.fallback = handleFunc
	return nil
}

// Handler reports the handler bound to token.
func (router *Router) Handler(token Command) (HandlerFunc, bool) {
	h, ok := router.commandHandlers[token]
	return h, ok
}

// Dispatch invokes the matching handler and returns its error unchanged.
// Unknown commands and text without a fallback are ignored.
func (router *Router) Dispatch(ctx *TGContext) error {
	update := ctx.Update

	if update.IsCommand {
		commandHandler, ok := router.commandHandlers[update.Command()]
		if !ok {
			return nil
		}

		return commandHandler(ctx)
	}

	if router.fallback == nil || update.Text == "" {
		return nil
	}

	return router.fallback(ctx)
}
