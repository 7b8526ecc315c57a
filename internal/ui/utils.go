package ui

import (
	"os"
	"strings"
	"unicode"

	"golang.org/x/term"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// IsInteractive reports whether both stdin and stdout are terminals.
// Prompts and the full-screen shell are only used when this holds.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

var nonASCII = runes.Remove(runes.Predicate(func(r rune) bool {
	return r > unicode.MaxASCII
}))

// StripDecorations removes non-ASCII symbols from text. A line that loses a
// leading symbol also loses the space that separated it from the words.
func StripDecorations(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		stripped, _, err := transform.String(nonASCII, line)
		if err != nil || stripped == line {
			continue
		}
		lines[i] = strings.TrimLeft(stripped, " ")
	}
	return strings.Join(lines, "\n")
}
