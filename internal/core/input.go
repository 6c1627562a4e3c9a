package core

import "fmt"

// KeyKind distinguishes raw control keys from printable characters.
// Hosts decode their terminal input into one of the two before handing it to a game.
type KeyKind int

const (
	KeyRaw     KeyKind = iota // A control or letter key identified by its KeyCode
	KeyUnicode                // A printable character
)

// KeyCode identifies a raw key.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyR // Restart during play
	KeyS // Restart after game over
	KeyEscape
)

// String returns a human-readable name for the key code.
func (k KeyCode) String() string {
	switch k {
	case KeyArrowUp:
		return "Up"
	case KeyArrowDown:
		return "Down"
	case KeyArrowLeft:
		return "Left"
	case KeyArrowRight:
		return "Right"
	case KeyR:
		return "R"
	case KeyS:
		return "S"
	case KeyEscape:
		return "Esc"
	default:
		return "None"
	}
}

// KeyEvent is a single decoded key press.
type KeyEvent struct {
	Kind KeyKind
	Code KeyCode // Valid when Kind == KeyRaw
	Char rune    // Valid when Kind == KeyUnicode
}

// RawKey creates a raw key event.
func RawKey(code KeyCode) KeyEvent {
	return KeyEvent{Kind: KeyRaw, Code: code}
}

// UnicodeKey creates a printable character event.
func UnicodeKey(r rune) KeyEvent {
	return KeyEvent{Kind: KeyUnicode, Char: r}
}

// String returns a short description, e.g. "raw(Up)" or "unicode('s')".
func (e KeyEvent) String() string {
	if e.Kind == KeyUnicode {
		return fmt.Sprintf("unicode(%q)", e.Char)
	}
	return fmt.Sprintf("raw(%s)", e.Code)
}

// ParseKey decodes a single key script token.
func ParseKey(tok string) (KeyEvent, error) {
	switch tok {
	case "up":
		return RawKey(KeyArrowUp), nil
	case "down":
		return RawKey(KeyArrowDown), nil
	case "left":
		return RawKey(KeyArrowLeft), nil
	case "right":
		return RawKey(KeyArrowRight), nil
	case "R":
		return RawKey(KeyR), nil
	case "S":
		return RawKey(KeyS), nil
	case "esc":
		return RawKey(KeyEscape), nil
	}

	runes := []rune(tok)
	if len(runes) == 1 {
		return UnicodeKey(runes[0]), nil
	}
	return KeyEvent{}, fmt.Errorf("core: unknown key token %q", tok)
}
