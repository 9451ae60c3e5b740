// Package mask is the character-level input filter for the bound fields.
// It answers one question: after this keystroke, could the field still
// become a signed decimal number, optionally followed by ^ and a signed
// integer exponent? It is deliberately permissive about transient states
// (a lone "-", a trailing "^" after a complete number) - submit-time
// validation stays strict about those.
package mask

import "regexp"

// The full shape of a bound is [-+]? digits [. digits] [^ [-+]? digits].
// mantissaFull matches a complete number (at least one digit, no dangling
// dot); the prefix forms match anything extendable into a complete one.
var (
	mantissaFull   = regexp.MustCompile(`^[+-]?[0-9]*\.?[0-9]+$`)
	mantissaPrefix = regexp.MustCompile(`^[+-]?[0-9]*\.?[0-9]*$`)
	exponentPrefix = regexp.MustCompile(`^[+-]?[0-9]*$`)
)

// Admissible reports whether text is a valid keystroke-level state: either
// a prefix of a plain number, or a complete number followed by ^ and a
// prefix of a signed integer. The empty string is admissible.
func Admissible(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] != '^' {
			continue
		}
		// Exactly one caret, and only after a complete mantissa.
		return mantissaFull.MatchString(text[:i]) &&
			exponentPrefix.MatchString(text[i+1:])
	}
	return mantissaPrefix.MatchString(text)
}

// Filter simulates typing input one character at a time into current,
// dropping every character whose acceptance would leave the field in an
// inadmissible state. Typing "13^2^3" into an empty field leaves "13^23":
// the second caret is rejected, the digit after it is not.
func Filter(current, input string) string {
	out := current
	for _, r := range input {
		candidate := out + string(r)
		if Admissible(candidate) {
			out = candidate
		}
	}
	return out
}
