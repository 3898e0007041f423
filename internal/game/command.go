package game

import (
	"strings"

	"github.com/aaronzipp/detective-quest/internal/mansion"
)

// Command is a decoded exploration choice
type Command int

const (
	CommandUnknown Command = iota
	CommandLeft
	CommandRight
	CommandExit
)

// ParseCommand decodes one line of player input. Case and surrounding
// whitespace are ignored; anything unrecognised is CommandUnknown.
func ParseCommand(raw string) Command {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "l", "left":
		return CommandLeft
	case "r", "right":
		return CommandRight
	case "x", "exit", "q", "quit":
		return CommandExit
	default:
		return CommandUnknown
	}
}

// String returns the command name
func (c Command) String() string {
	switch c {
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Direction maps a movement command to a door
func (c Command) Direction() (mansion.Direction, bool) {
	switch c {
	case CommandLeft:
		return mansion.Left, true
	case CommandRight:
		return mansion.Right, true
	default:
		return 0, false
	}
}
