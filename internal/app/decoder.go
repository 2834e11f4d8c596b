package app

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrBusinessLogic = errors.New("business logic error")

	ErrMissingInput      = fmt.Errorf("%w: input is missing", ErrInvalidInput)
	ErrMissingSendMarker = fmt.Errorf("%w: send marker %q not found", ErrInvalidInput, SendKey)
)

// Result is the decoded text together with what the decoder consumed to get it.
type Result struct {
	Text    string
	Presses int // digit key presses
	Deletes int // delete keys, including the ones that hit an empty buffer
	Ignored int // symbols that are neither keys nor separators
}

// Decoder decodes key presses against a fixed keypad layout. It is safe for concurrent use.
type Decoder struct {
	keypad Keypad
}

// NewDecoder returns a decoder over a copy of k.
func NewDecoder(k Keypad) *Decoder {
	return &Decoder{keypad: k.clone()}
}

var defaultDecoder = NewDecoder(DefaultKeypad())

// Decode turns a sequence of key presses into text using the default keypad.
// Everything from the first '#' on is ignored; an input without '#' is rejected.
func Decode(input string) (string, error) {
	res, err := defaultDecoder.Decode(input)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// DecodeInput is Decode for callers that can tell a missing input from an empty one.
func DecodeInput(input *string) (string, error) {
	if input == nil {
		return "", ErrMissingInput
	}
	return Decode(*input)
}

// Decode is like the package-level Decode but also reports what was consumed.
func (d *Decoder) Decode(input string) (Result, error) {
	end := strings.IndexRune(input, SendKey)
	if end < 0 {
		return Result{}, ErrMissingSendMarker
	}
	keys := []rune(input[:end])

	var res Result
	out := make([]rune, 0, len(keys))
	for i := 0; i < len(keys); {
		ch := keys[i]
		switch {
		case ch == SeparatorKey:
			i++
		case ch == DeleteKey:
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
			res.Deletes++
			i++
		case isDigit(ch):
			// серия одинаковых нажатий даёт один символ
			n := 1
			for i+n < len(keys) && keys[i+n] == ch {
				n++
			}
			if c, ok := d.keypad.Char(ch, n); ok {
				out = append(out, unicode.ToUpper(c))
			}
			res.Presses += n
			i += n
		default:
			res.Ignored++
			i++
		}
	}
	res.Text = string(out)
	return res, nil
}
