// Package views turns session state into plain view models that the screens
// render. Nothing here touches the terminal.
package views

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Sanitize makes server-supplied text safe to print: escape sequences are
// removed, as is any remaining control byte other than newline and tab.
func Sanitize(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case r == '\r':
			return -1
		case r < 0x20 || r == 0x7f:
			return -1
		case r >= 0x80 && r < 0xa0:
			return -1
		}
		return r
	}, s)
}
