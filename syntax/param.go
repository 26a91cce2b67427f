package syntax

// scanParamSubst is entered right after "${" has been consumed; it
// classifies and scans one of the ParameterSubst forms, consuming up to
// and including the closing "}".
func (p *parser) scanParamSubst() (ParameterSubst, error) {
	start, startLine, startCol := p.pos, p.line, p.col
	indirect := false
	if p.peekByte() == '!' {
		// Lookahead: `!` only means indirection if followed by a name;
		// `${!prefix@}`/`${!prefix*}`/`${!name}`/`${!name[@]}` all share
		// this sigil, classified further below.
		indirect = true
		p.advanceByte()
	}

	// ${#param}: a '#' followed by anything but the closing brace.
	length := !indirect && p.peekByte() == '#' && p.peekByteAt(1) != '}'
	if length {
		p.advanceByte()
	}

	name := p.scanBareParamName()
	if name == "" {
		return p.scanBadSubst(start, startLine, startCol)
	}

	// ${!prefix@} / ${!prefix*}
	if indirect && (p.peekByte() == '@' || p.peekByte() == '*') && p.peekByteAt(1) == '}' {
		mod := p.advanceByte()
		p.advanceByte() // }
		return Prefix{Prefix: name, Modifier: mod}, nil
	}

	// optional [subscript]
	var subscript *Word
	if p.peekByte() == '[' {
		p.advanceByte()
		w, err := p.scanWord(stopSetRaw("]"))
		if err != nil {
			return p.scanBadSubst(start, startLine, startCol)
		}
		if p.peekByte() != ']' {
			return p.scanBadSubst(start, startLine, startCol)
		}
		p.advanceByte()
		subscript = &w
	}
	param := Parameter{Name: name, Subscript: subscript}

	if length {
		if p.peekByte() != '}' {
			return p.scanBadSubst(start, startLine, startCol)
		}
		p.advanceByte()
		return Length{Param: param}, nil
	}

	// ${!name[@]} / ${!name[*]} indices
	if indirect && subscript != nil && len(*subscript) == 1 {
		if c, ok := (*subscript)[0].(Char); ok && (c.Ch == '@' || c.Ch == '*') {
			if p.peekByte() == '}' {
				p.advanceByte()
				return Indices{Param: Parameter{Name: name}}, nil
			}
		}
	}

	if p.peekByte() == '}' {
		p.advanceByte()
		if indirect {
			return Brace{Indirect: true, Param: param}, nil
		}
		return Bare{Param: param}, nil
	}

	switch {
	case p.hasPrefix(":-"), p.hasPrefix(":="), p.hasPrefix(":?"), p.hasPrefix(":+"):
		testNull := true
		op := altOpFor(p.peekByteAt(1))
		p.pos += 2
		p.col += 2
		word, err := p.scanWord(stopSetRaw("}"))
		if err != nil {
			return nil, err
		}
		if p.peekByte() != '}' {
			return p.scanBadSubst(start, startLine, startCol)
		}
		p.advanceByte()
		return Alt{Indirect: indirect, Param: param, TestNull: testNull, Op: op, Word: word}, nil

	case p.peekByte() == '-', p.peekByte() == '=', p.peekByte() == '?', p.peekByte() == '+':
		op := altOpFor(p.peekByte())
		p.advanceByte()
		word, err := p.scanWord(stopSetRaw("}"))
		if err != nil {
			return nil, err
		}
		if p.peekByte() != '}' {
			return p.scanBadSubst(start, startLine, startCol)
		}
		p.advanceByte()
		return Alt{Indirect: indirect, Param: param, TestNull: false, Op: op, Word: word}, nil

	case p.peekByte() == ':':
		p.advanceByte()
		offset, err := p.scanWord(stopSetRaw(":}"))
		if err != nil {
			return nil, err
		}
		var length Word
		if p.peekByte() == ':' {
			p.advanceByte()
			length, err = p.scanWord(stopSetRaw("}"))
			if err != nil {
				return nil, err
			}
		}
		if p.peekByte() != '}' {
			return p.scanBadSubst(start, startLine, startCol)
		}
		p.advanceByte()
		return Substring{Indirect: indirect, Param: param, Offset: offset, Length: length}, nil

	case p.hasPrefix("##"):
		p.pos += 2
		p.col += 2
		pat, err := p.scanWord(stopSetRaw("}"))
		if err != nil {
			return nil, err
		}
		if p.peekByte() != '}' {
			return p.scanBadSubst(start, startLine, startCol)
		}
		p.advanceByte()
		return Delete{Indirect: indirect, Param: param, Shortest: false, Direction: TrimFront, Pattern: pat}, nil

	case p.peekByte() == '#':
		p.advanceByte()
		pat, err := p.scanWord(stopSetRaw("}"))
		if err != nil {
			return nil, err
		}
		if p.peekByte() != '}' {
			return p.scanBadSubst(start, startLine, startCol)
		}
		p.advanceByte()
		return Delete{Indirect: indirect, Param: param, Shortest: true, Direction: TrimFront, Pattern: pat}, nil

	case p.hasPrefix("%%"):
		p.pos += 2
		p.col += 2
		pat, err := p.scanWord(stopSetRaw("}"))
		if err != nil {
			return nil, err
		}
		if p.peekByte() != '}' {
			return p.scanBadSubst(start, startLine, startCol)
		}
		p.advanceByte()
		return Delete{Indirect: indirect, Param: param, Shortest: false, Direction: TrimBack, Pattern: pat}, nil

	case p.peekByte() == '%':
		p.advanceByte()
		pat, err := p.scanWord(stopSetRaw("}"))
		if err != nil {
			return nil, err
		}
		if p.peekByte() != '}' {
			return p.scanBadSubst(start, startLine, startCol)
		}
		p.advanceByte()
		return Delete{Indirect: indirect, Param: param, Shortest: true, Direction: TrimBack, Pattern: pat}, nil

	case p.peekByte() == '/':
		p.advanceByte()
		all := false
		var dir *TrimDir
		switch p.peekByte() {
		case '/':
			p.advanceByte()
			all = true
		case '#':
			p.advanceByte()
			d := TrimFront
			dir = &d
		case '%':
			p.advanceByte()
			d := TrimBack
			dir = &d
		}
		pat, err := p.scanWord(stopSetRaw("/}"))
		if err != nil {
			return nil, err
		}
		var repl Word
		if p.peekByte() == '/' {
			p.advanceByte()
			repl, err = p.scanWord(stopSetRaw("}"))
			if err != nil {
				return nil, err
			}
		}
		if p.peekByte() != '}' {
			return p.scanBadSubst(start, startLine, startCol)
		}
		p.advanceByte()
		return Replace{Indirect: indirect, Param: param, All: all, Direction: dir, Pattern: pat, Replacement: repl}, nil

	case p.hasPrefix("^^"), p.hasPrefix(",,"):
		startCase := p.peekByte() == '^'
		p.pos += 2
		p.col += 2
		pat, err := p.scanWord(stopSetRaw("}"))
		if err != nil {
			return nil, err
		}
		if p.peekByte() != '}' {
			return p.scanBadSubst(start, startLine, startCol)
		}
		p.advanceByte()
		return LetterCase{Indirect: indirect, Param: param, ToLower: !startCase, StartCase: true, Pattern: pat}, nil

	case p.peekByte() == '^', p.peekByte() == ',':
		toLower := p.peekByte() == ','
		p.advanceByte()
		pat, err := p.scanWord(stopSetRaw("}"))
		if err != nil {
			return nil, err
		}
		if p.peekByte() != '}' {
			return p.scanBadSubst(start, startLine, startCol)
		}
		p.advanceByte()
		return LetterCase{Indirect: indirect, Param: param, ToLower: toLower, StartCase: false, Pattern: pat}, nil
	}

	return p.scanBadSubst(start, startLine, startCol)
}

func altOpFor(c byte) AltOp {
	switch c {
	case '-':
		return AltDefault
	case '=':
		return AltAssign
	case '?':
		return AltError
	case '+':
		return AltIfSet
	}
	return AltDefault
}

// scanBadSubst consumes the rest of a "${...}" up to its balanced closing
// brace and returns a BadSubst carrying the raw inner text, rewinding to
// just after the opening "${" first. startLine/startCol must be the
// line/column the cursor was at when start was captured, so the rewind
// restores them in sync with p.pos.
func (p *parser) scanBadSubst(start, startLine, startCol int) (ParameterSubst, error) {
	p.pos, p.line, p.col = start, startLine, startCol
	depth := 1
	from := p.pos
	for {
		if p.atEOF() {
			return nil, p.errorf("reached EOF without closing brace }")
		}
		c := p.peekByte()
		if c == '{' {
			depth++
		} else if c == '}' {
			depth--
			if depth == 0 {
				raw := p.in[from:p.pos]
				p.advanceByte()
				return BadSubst{Raw: raw}, nil
			}
		}
		p.advanceByte()
	}
}
