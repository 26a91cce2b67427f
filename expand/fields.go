package expand

import "github.com/bashast/bashast/syntax"

func isIFSChar(c byte, ifs string) bool {
	for i := 0; i < len(ifs); i++ {
		if ifs[i] == c {
			return true
		}
	}
	return false
}

// Fields splits word on ifs the way an unquoted expansion result is split
// into command-line arguments. Quoted spans (Single, Double, ANSIC, Locale,
// Escape) are never split on: splitting only ever applies between spans
// that are plain unquoted Chars. An ifs of "" never splits. A run of one or
// more consecutive IFS characters, whether whitespace or not, collapses to
// a single field boundary and never produces an empty field, matching
// strings.FieldsFunc: "a::b:c" with ifs ":" yields ["a", "b", "c"], and a
// word made up entirely of IFS characters (or an empty word) yields zero
// fields.
func Fields(ifs string, word syntax.Word) []syntax.Word {
	if ifs == "" {
		return []syntax.Word{word}
	}

	var fields []syntax.Word
	var cur syntax.Word

	flush := func() {
		if cur != nil {
			fields = append(fields, cur)
			cur = nil
		}
	}

	for _, sp := range word {
		if ch, ok := sp.(syntax.Char); ok && isIFSChar(byte(ch.Ch), ifs) {
			flush()
			continue
		}
		cur = append(cur, sp)
	}
	flush()
	return fields
}
