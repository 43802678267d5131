// Package classify detects greeting and farewell phrases in message bodies.
package classify

import (
	"regexp"
	"strings"
)

var farewellWords = []string{
	"adios", "bye", "chau", "hasta luego", "hasta la vista", "nos vemos", "see you",
}

var greetingWords = []string{
	"hola", "oli", "ola", "buenas", "buenos días", "qué tal", "hey",
}

var (
	farewellRe = compileWordList(farewellWords)
	greetingRe = compileWordList(greetingWords)
)

// compileWordList builds a single case-insensitive pattern that matches any
// entry as a whole word (or whole contiguous phrase for multi-word entries).
func compileWordList(words []string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
}

// IsFarewell reports whether text contains a farewell word.
func IsFarewell(text string) bool {
	return farewellRe.MatchString(text)
}

// IsGreeting reports whether text contains a greeting word.
func IsGreeting(text string) bool {
	return greetingRe.MatchString(text)
}
