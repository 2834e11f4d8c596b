package app

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var lineBreaks = strings.NewReplacer("\r\n", string(SeparatorKey), "\n", string(SeparatorKey))

// Input reads key presses from the file named by args[0], or from stdin when args is empty.
// A line break ends a run like a pause does. Input length is not limited.
func Input(args []string) (string, error) {
	var r io.Reader = os.Stdin
	if len(args) > 0 {
		file, err := os.Open(args[0])
		if err != nil {
			return "", err
		}
		defer func() {
			err := file.Close()
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error closing file:", err)
			}
		}()
		r = file
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return lineBreaks.Replace(strings.TrimRight(string(data), "\r\n")), nil
}
