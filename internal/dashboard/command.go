package dashboard

import "strings"

// Command is an action requested from the keyboard.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandToggleSort
)

// String returns a human-readable command name.
func (c Command) String() string {
	switch c {
	case CommandQuit:
		return "quit"
	case CommandToggleSort:
		return "toggle-sort"
	default:
		return "none"
	}
}

// Key bindings as constants for consistency.
const (
	KeyQuit       = "q"
	KeyQuitAlt    = "ctrl+c"
	KeyToggleSort = "m"
)

// ParseKey maps a key name to a command. Letters are case-insensitive;
// anything unrecognized is CommandNone.
func ParseKey(key string) Command {
	switch strings.ToLower(key) {
	case KeyQuit, KeyQuitAlt:
		return CommandQuit
	case KeyToggleSort:
		return CommandToggleSort
	default:
		return CommandNone
	}
}
