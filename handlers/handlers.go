// Package handlers holds the starter bot's commands and the text echo.
package handlers

import (
	"github.com/te5se/tgmux"
)

type Registrar interface {
	Register(router *tgmux.Router) error
}

// RegisterAll binds start, help, ping, info and the echo fallback.
func RegisterAll(router *tgmux.Router) error {
	registrars := []Registrar{
		NewStartHandler(),
		NewHelpHandler(),
		NewPingHandler(),
		NewInfoHandler(),
		NewEchoHandler(),
	}

	for _, r := range registrars {
		if err := r.Register(router); err != nil {
			return err
		}
	}

	return nil
}
