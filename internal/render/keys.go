package render

// keyName maps a raw input byte to the names bubbletea uses, so both
// backends feed the same strings to the command parser.
func keyName(b byte) string {
	switch b {
	case 3:
		return "ctrl+c"
	case 27:
		return "esc"
	case '\r', '\n':
		return "enter"
	default:
		return string(rune(b))
	}
}
