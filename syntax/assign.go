package syntax

import "strings"

// ArrayElem is one element of an array-literal assignment: either a bare
// word, or `[subscript]=word`.
type ArrayElem struct {
	Subscript *Word
	Value     Word
}

// Assign is `name[=/+=]value` or `name[subscript][=/+=]value`, where value
// is either a plain Word or an array literal.
type Assign struct {
	Name      string
	Subscript *Word
	Append    bool
	Value     *Word
	Array     []ArrayElem // non-nil when the rvalue was an array literal
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameCont(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}

// validName reports whether s matches [A-Za-z_][A-Za-z0-9_]*.
func validName(s string) bool {
	if s == "" || !isNameStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isNameCont(s[i]) {
			return false
		}
	}
	return true
}

// peekAssignName reports whether the input at the cursor looks like the
// start of an assignment (a valid name immediately followed by `=`, `+=`
// or `[`), without consuming anything.
func (p *parser) peekAssignName() (name string, ok bool) {
	i := 0
	b := p.in
	pos := p.pos
	if pos >= len(b) || !isNameStart(b[pos]) {
		return "", false
	}
	for pos+i < len(b) && isNameCont(b[pos+i]) {
		i++
	}
	name = b[pos : pos+i]
	rest := pos + i
	if rest < len(b) && b[rest] == '[' {
		return name, true
	}
	if rest < len(b) && b[rest] == '=' {
		return name, true
	}
	if rest+1 < len(b) && b[rest] == '+' && b[rest+1] == '=' {
		return name, true
	}
	return "", false
}

// tryAssign recognizes name[subscript]?(=|+=)rvalue at the cursor. It only
// consumes input on success. Memoized per cursor position through
// memoize; no caller in the grammar probes the same position twice, so
// the cache is not hit today.
func (p *parser) tryAssign() (*Assign, bool) {
	return memoize(p, "assign", p.tryAssignUncached)
}

func (p *parser) tryAssignUncached() (*Assign, bool) {
	start, startLine, startCol := p.pos, p.line, p.col
	rewind := func() {
		p.pos, p.line, p.col = start, startLine, startCol
	}

	name, ok := p.peekAssignName()
	if !ok {
		return nil, false
	}
	p.pos += len(name)
	p.col += len(name)

	a := &Assign{Name: name}
	if p.peekByte() == '[' {
		p.pos++
		p.col++
		w, err := p.scanWord(stopSetRaw("]"))
		if err != nil || p.peekByte() != ']' {
			rewind()
			return nil, false
		}
		p.pos++
		p.col++
		a.Subscript = &w
	}
	switch {
	case p.peekByte() == '=':
		p.pos++
		p.col++
	case p.peekByte() == '+' && p.peekByteAt(1) == '=':
		p.pos += 2
		p.col += 2
		a.Append = true
	default:
		rewind()
		return nil, false
	}

	if p.peekByte() == '(' {
		p.pos++
		p.col++
		elems, err := p.scanArrayLiteral()
		if err != nil {
			rewind()
			return nil, false
		}
		a.Array = elems
		return a, true
	}

	if isWordStart(p) {
		w, err := p.scanWord(stopSetDefault)
		if err != nil {
			rewind()
			return nil, false
		}
		a.Value = &w
	} else {
		empty := Word{}
		a.Value = &empty
	}
	return a, true
}

// scanArrayLiteral scans the inside of `( ... )` in assignment position,
// after the opening paren has been consumed.
func (p *parser) scanArrayLiteral() ([]ArrayElem, error) {
	var elems []ArrayElem
	for {
		if err := p.skipSpacesAndNewlines(); err != nil {
			return nil, err
		}
		if p.peekByte() == ')' {
			p.pos++
			p.col++
			return elems, nil
		}
		if p.atEOF() {
			return nil, p.errorf("expected ) to close array literal")
		}
		var el ArrayElem
		if p.peekByte() == '[' {
			save, saveLine, saveCol := p.pos, p.line, p.col
			p.pos++
			p.col++
			w, err := p.scanWord(stopSetRaw("]"))
			if err == nil && p.peekByte() == ']' && p.peekByteAt(1) == '=' {
				p.pos += 2
				p.col += 2
				el.Subscript = &w
				val, err := p.scanWord(stopSetDefault)
				if err != nil {
					return nil, err
				}
				el.Value = val
				elems = append(elems, el)
				continue
			}
			p.pos, p.line, p.col = save, saveLine, saveCol
		}
		val, err := p.scanWord(stopSetDefault)
		if err != nil {
			return nil, err
		}
		if len(val) == 0 {
			return nil, p.errorf("expected array element or )")
		}
		el.Value = val
		elems = append(elems, el)
	}
}

func stopSetRaw(chars string) func(byte) bool {
	return func(c byte) bool { return strings.IndexByte(chars, c) >= 0 }
}
