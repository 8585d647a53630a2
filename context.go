package tgmux

import (
	"context"
	"errors"
)

type ParseMode string

const (
	ParseModeNone ParseMode = ""
	ParseModeHTML ParseMode = "HTML"
)

var ErrNoReplier = errors.New("tgmux: context has no replier")

// Replier sends a text reply to the chat an update came from.
type Replier interface {
	Reply(ctx context.Context, chatID int64, text string, mode ParseMode) error
}

// TGContext is built once per update and handed to the matched handler.
type TGContext struct {
	Ctx     context.Context
	Update  Update
	Bot     Identity
	replier Replier
}

func NewTGContext(ctx context.Context, update Update, bot Identity, replier Replier) *TGContext {
	if ctx == nil {
		ctx = context.Background()
	}

	return &TGContext{
		Ctx:     ctx,
		Update:  update,
		Bot:     bot,
		replier: replier,
	}
}

func (c *TGContext) Reply(text string, mode ParseMode) error {
	if c.replier == nil {
		return ErrNoReplier
	}

	return c.replier.Reply(c.Ctx, c.Update.ChatID, text, mode)
}
