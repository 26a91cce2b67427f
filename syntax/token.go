package syntax

import "sort"

// redirOpTable maps redirection operator text to RedirOp, used by the
// normal-redirection production. Operator text is matched through
// longestMatch over redirOpTexts, so "<<<" wins over "<" whatever the
// order of this table.
var redirOpTable = []struct {
	text string
	op   RedirOp
}{
	{"<<<", RedirHereString},
	{"<&", RedirDupIn},
	{"<>", RedirReadWrite},
	{"<", RedirLess},
	{"&>>", RedirAppendBoth},
	{"&>", RedirAndGreat},
	{">>", RedirAppend},
	{">|", RedirClobber},
	{">&", RedirDupOut},
	{">", RedirGreat},
}

func sortedLongestFirst(ss []string) []string {
	out := append([]string(nil), ss...)
	sort.Slice(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}

// redirOpTexts is redirOpTable's operator text, longest first, for the
// longest-match lexer.
var redirOpTexts = func() []string {
	var out []string
	for _, e := range redirOpTable {
		out = append(out, e.text)
	}
	return sortedLongestFirst(out)
}()

func redirOpFor(text string) RedirOp {
	for _, e := range redirOpTable {
		if e.text == text {
			return e.op
		}
	}
	return RedirLess
}

// reservedWords are recognized only at word start in command position.
var reservedWords = map[string]bool{
	"!": true, "{": true, "}": true,
	"if": true, "then": true, "else": true, "elif": true, "fi": true,
	"case": true, "esac": true,
	"for": true, "select": true, "while": true, "until": true, "do": true, "done": true,
	"in": true, "function": true, "time": true,
	"[[": true, "]]": true,
	"coproc": true,
}

// assignBuiltins are the names whose arguments may themselves be
// assignments (GLOSSARY: assignment builtin).
var assignBuiltins = map[string]bool{
	"declare": true, "typeset": true, "export": true, "readonly": true, "local": true,
}

// longestMatch returns the longest string in candidates that is a prefix
// of s, or "" if none match.
func longestMatch(s string, candidates []string) string {
	best := ""
	for _, c := range candidates {
		if len(c) <= len(best) {
			continue
		}
		if len(c) <= len(s) && s[:len(c)] == c {
			best = c
		}
	}
	return best
}
