package app

// Keypad maps every digit key to the characters reachable by pressing it repeatedly.
// Index 0 is the '0' key, index 9 is the '9' key.
type Keypad [10][]rune

// Special keys of the input stream.
const (
	SendKey      = '#' // ends the message, the rest is ignored
	DeleteKey    = '*' // removes the last decoded character
	SeparatorKey = ' ' // pause between presses of the same key
)

// DefaultKeypad returns the layout of an old multi-tap phone.
func DefaultKeypad() Keypad {
	return Keypad{
		{' '},
		{'&', '\'', '('},
		{'a', 'b', 'c'},
		{'d', 'e', 'f'},
		{'g', 'h', 'i'},
		{'j', 'k', 'l'},
		{'m', 'n', 'o'},
		{'p', 'q', 'r', 's'},
		{'t', 'u', 'v'},
		{'w', 'x', 'y', 'z'},
	}
}

// clone копирует раскладку, чтобы декодер не зависел от чужого слайса
func (k Keypad) clone() Keypad {
	var c Keypad
	for i, chars := range k {
		c[i] = append([]rune(nil), chars...)
	}
	return c
}

// Char returns the character produced by pressing digit key d presses times.
// ok is false when d is not a digit, presses < 1 or the key has no characters.
func (k Keypad) Char(d rune, presses int) (rune, bool) {
	if !isDigit(d) || presses < 1 {
		return 0, false
	}
	chars := k[d-'0']
	if len(chars) == 0 {
		return 0, false
	}
	return chars[(presses-1)%len(chars)], true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
