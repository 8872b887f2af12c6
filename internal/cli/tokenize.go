package cli

import (
	"errors"
	"strings"
	"unicode"
)

// ErrUnterminatedQuote is returned when a console line opens a quote it never closes.
var ErrUnterminatedQuote = errors.New("unterminated quote")

// SplitLine splits a console line into words. Runs of whitespace separate
// words; double quotes group words and are removed. Single quotes are
// ordinary characters so descriptions like don't survive unquoted.
func SplitLine(line string) ([]string, error) {
	var (
		words   []string
		cur     strings.Builder
		inQuote bool
		inWord  bool
	)

	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			inWord = true
		case unicode.IsSpace(r) && !inQuote:
			if inWord {
				words = append(words, cur.String())
				cur.Reset()
				inWord = false
			}
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}

	if inQuote {
		return nil, ErrUnterminatedQuote
	}
	if inWord {
		words = append(words, cur.String())
	}
	return words, nil
}
