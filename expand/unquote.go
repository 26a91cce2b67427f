package expand

import (
	"strings"

	"github.com/bashast/bashast/syntax"
)

// Unquote renders a Word's literal text with all quoting removed:
// single/double/ANSI-C/locale quotes vanish, escapes collapse to the
// escaped character, and a plain Word of only Char spans is returned
// unchanged. Substitutions this package does not evaluate (parameter
// expansions, command/arithmetic/process substitutions) are rendered
// back to their source form, since they carry no quoting of their own
// to strip.
func Unquote(word syntax.Word) string {
	var b strings.Builder
	writeUnquoted(&b, word)
	return b.String()
}

func writeUnquoted(b *strings.Builder, w syntax.Word) {
	for _, s := range w {
		switch v := s.(type) {
		case syntax.Char:
			b.WriteRune(v.Ch)
		case syntax.Escape:
			b.WriteRune(v.Ch)
		case syntax.Single:
			b.WriteString(v.Value)
		case syntax.Double:
			writeUnquoted(b, v.Word)
		case syntax.ANSIC:
			writeUnquoted(b, v.Word)
		case syntax.Locale:
			writeUnquoted(b, v.Word)
		case syntax.Backquote:
			b.WriteByte('`')
			writeUnquoted(b, v.Word)
			b.WriteByte('`')
		case syntax.ParamExp:
			writeUnquotedParamExp(b, v)
		case syntax.ArithSubst:
			b.WriteString("$((")
			b.WriteString(v.Src)
			b.WriteString("))")
		case syntax.CommandSubst:
			b.WriteString("$(")
			b.WriteString(v.Src)
			b.WriteByte(')')
		case syntax.ProcessSubst:
			if v.Dir == syntax.ProcessIn {
				b.WriteString("<(")
			} else {
				b.WriteString(">(")
			}
			b.WriteString(v.Src)
			b.WriteByte(')')
		}
	}
}

// writeUnquotedParamExp renders a parameter expansion back to source form.
// Only a Bare with no subscript (a plain $name) is written unbraced; every
// other form is written braced, matching how the scanner requires "${" to
// reach any of them in the first place.
func writeUnquotedParamExp(b *strings.Builder, p syntax.ParamExp) {
	if bare, ok := p.Subst.(syntax.Bare); ok && bare.Param.Subscript == nil {
		b.WriteByte('$')
		writeUnquotedParam(b, bare.Param)
		return
	}
	b.WriteString("${")
	writeUnquotedSubst(b, p.Subst)
	b.WriteByte('}')
}

func writeUnquotedParam(b *strings.Builder, p syntax.Parameter) {
	b.WriteString(p.Name)
	if p.Subscript != nil {
		b.WriteByte('[')
		writeUnquoted(b, *p.Subscript)
		b.WriteByte(']')
	}
}

func writeUnquotedSubst(b *strings.Builder, ps syntax.ParameterSubst) {
	switch v := ps.(type) {
	case syntax.BadSubst:
		b.WriteString(v.Raw)
	case syntax.Bare:
		writeUnquotedParam(b, v.Param)
	case syntax.Brace:
		if v.Indirect {
			b.WriteByte('!')
		}
		writeUnquotedParam(b, v.Param)
	case syntax.Alt:
		if v.Indirect {
			b.WriteByte('!')
		}
		writeUnquotedParam(b, v.Param)
		if v.TestNull {
			b.WriteByte(':')
		}
		b.WriteByte(altOpByte(v.Op))
		writeUnquoted(b, v.Word)
	case syntax.Substring:
		if v.Indirect {
			b.WriteByte('!')
		}
		writeUnquotedParam(b, v.Param)
		b.WriteByte(':')
		writeUnquoted(b, v.Offset)
		if v.Length != nil {
			b.WriteByte(':')
			writeUnquoted(b, v.Length)
		}
	case syntax.Prefix:
		b.WriteByte('!')
		b.WriteString(v.Prefix)
		b.WriteByte(v.Modifier)
	case syntax.Indices:
		b.WriteByte('!')
		b.WriteString(v.Param.Name)
		b.WriteString("[@]")
	case syntax.Length:
		b.WriteByte('#')
		writeUnquotedParam(b, v.Param)
	case syntax.Delete:
		if v.Indirect {
			b.WriteByte('!')
		}
		writeUnquotedParam(b, v.Param)
		op := byte('#')
		if v.Direction == syntax.TrimBack {
			op = '%'
		}
		b.WriteByte(op)
		if v.Shortest {
			// single operator already written
		} else {
			b.WriteByte(op)
		}
		writeUnquoted(b, v.Pattern)
	case syntax.Replace:
		if v.Indirect {
			b.WriteByte('!')
		}
		writeUnquotedParam(b, v.Param)
		b.WriteByte('/')
		if v.All {
			b.WriteByte('/')
		} else if v.Direction != nil {
			if *v.Direction == syntax.TrimFront {
				b.WriteByte('#')
			} else {
				b.WriteByte('%')
			}
		}
		writeUnquoted(b, v.Pattern)
		b.WriteByte('/')
		writeUnquoted(b, v.Replacement)
	case syntax.LetterCase:
		if v.Indirect {
			b.WriteByte('!')
		}
		writeUnquotedParam(b, v.Param)
		op := byte('^')
		if v.ToLower {
			op = ','
		}
		b.WriteByte(op)
		if v.StartCase {
			b.WriteByte(op)
		}
		writeUnquoted(b, v.Pattern)
	}
}

func altOpByte(op syntax.AltOp) byte {
	switch op {
	case syntax.AltAssign:
		return '='
	case syntax.AltError:
		return '?'
	case syntax.AltIfSet:
		return '+'
	default:
		return '-'
	}
}
