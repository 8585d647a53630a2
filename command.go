package tgmux

import "strings"

const commandPrefix = "/"

// Command is a command token, the word after the "/" prefix.
// Tokens not listed below are still valid and match exactly.
type Command string

const (
	CommandStart Command = "start"
	CommandHelp  Command = "help"
	CommandPing  Command = "ping"
	CommandInfo  Command = "info"
)

var knownCommands = map[Command]struct{}{
	CommandStart: {},
	CommandHelp:  {},
	CommandPing:  {},
	CommandInfo:  {},
}

func (c Command) Known() bool {
	_, ok := knownCommands[c]
	return ok
}

func (c Command) String() string {
	return string(c)
}

// commandFromText extracts the token from "/token@botname args".
func commandFromText(text string) Command {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}

	token, ok := strings.CutPrefix(fields[0], commandPrefix)
	if !ok {
		return ""
	}

	if i := strings.Index(token, "@"); i >= 0 {
		token = token[:i]
	}

	return Command(token)
}
