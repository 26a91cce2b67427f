package syntax

import "strings"

// wordLiteral returns the plain string value of w if every Span in it is
// an unquoted Char, which is how bare command and builtin names arrive
// from the word-span scanner.
func wordLiteral(w Word) (string, bool) {
	var b strings.Builder
	for _, s := range w {
		c, ok := s.(Char)
		if !ok {
			return "", false
		}
		b.WriteRune(c.Ch)
	}
	return b.String(), true
}

// defaultAtWord is the literal "$@" substituted as the word list of a
// for/select loop with no word list at all (`for name do ...`).
func defaultAtWord() Word {
	return Word{ParamExp{Subst: Bare{Param: Parameter{Name: "@"}}}}
}
