package syntax

import "strings"

// drainHeredocs is the here-doc handler. It is invoked whenever the
// grammar consumes a newline token: each here-doc queued since the last
// drain is bound to the *logical line* the newline closes, not to the "<<"
// token itself, so bodies are read here, in FIFO order, from the raw lines
// that immediately follow.
func (p *parser) drainHeredocs() error {
	pending := p.pending
	p.pending = nil
	for _, h := range pending {
		var lines []string
		for {
			line, hadNL := p.readRawLine()
			cmp := line
			if h.Op == HereStrip {
				cmp = strings.TrimLeft(line, "\t")
			}
			if cmp == h.Delim {
				break
			}
			lines = append(lines, cmp)
			if !hadNL {
				return p.errorf("unexpected EOF while looking for heredoc delimiter %q", h.Delim)
			}
		}
		if len(lines) > 0 {
			h.Body = strings.Join(lines, "\n") + "\n"
		}
	}
	return nil
}

// readRawLine reads raw bytes from the cursor up to (but not including) the
// next newline, consuming the newline itself if present. hadNL is false
// only when EOF was hit before a newline.
func (p *parser) readRawLine() (line string, hadNL bool) {
	start := p.pos
	for !p.atEOF() && p.in[p.pos] != '\n' {
		p.pos++
		p.col++
	}
	line = p.in[start:p.pos]
	if p.atEOF() {
		return line, false
	}
	p.pos++
	p.line++
	p.col = 1
	return line, true
}

// wordHasQuoting reports whether any span of w is a quoting construct
// (used to derive Heredoc.DelimQuoted: a delimiter is quoted if unquoting
// it changes its text, which in practice means it contains any of these).
func wordHasQuoting(w Word) bool {
	for _, s := range w {
		switch s.(type) {
		case Escape, Single, Double, ANSIC, Locale:
			return true
		}
	}
	return false
}

// unquoteSimple renders the literal delimiter text of a heredoc target
// word: quoting is stripped, substitutions are not expected to appear in
// heredoc delimiters but are rendered as their raw source form if they do.
func unquoteSimple(w Word) string {
	var b Builder
	for _, s := range w {
		switch v := s.(type) {
		case Char:
			b.WriteRune(v.Ch)
		case Escape:
			b.WriteRune(v.Ch)
		case Single:
			b.WriteString(v.Value)
		case Double:
			b.WriteString(unquoteSimple(v.Word))
		case ANSIC:
			b.WriteString(unquoteSimple(v.Word))
		case Locale:
			b.WriteString(unquoteSimple(v.Word))
		case Backquote:
			b.WriteString("`")
			b.WriteString(unquoteSimple(v.Word))
			b.WriteString("`")
		case ArithSubst:
			b.WriteString("$((" + v.Src + "))")
		case CommandSubst:
			b.WriteString("$(" + v.Src + ")")
		case ParamExp:
			if bare, ok := v.Subst.(Bare); ok && bare.Param.Subscript == nil {
				b.WriteString("$" + bare.Param.Name)
			} else {
				b.WriteString(Pretty(v))
			}
		}
	}
	return b.String()
}
