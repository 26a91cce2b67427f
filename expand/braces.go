// Package expand implements post-parse lexical operations on already
// parsed syntax.Words: brace expansion, IFS-based word splitting, and
// unquoting. It never evaluates variables or arithmetic and never fails
// on well-formed input: every exported function here is total.
package expand

import (
	"strconv"
	"strings"

	"github.com/bashast/bashast/syntax"
)

// brace is one {a,b,c} or {x..y[..incr]} group found inside a word.
type brace struct {
	seq   bool // {x..y[..incr]} rather than {a,b,...}
	chars bool // sequence endpoints are letters, not numbers
	elems []*braceWord
}

// braceWord is like syntax.Word but its parts may also be a *brace.
type braceWord struct {
	parts []any // syntax.Span or *brace
}

// Braces performs Bash brace expansion on a Word. It never fails:
// malformed brace groups (unbalanced, a lone {x}, a broken {x..y..z}) are
// returned to their literal text instead, and an input with no brace
// structure expands to a singleton list equal to the input.
func Braces(word syntax.Word) []syntax.Word {
	top := splitBraces(word)
	return expandRec(top)
}

func splitBraces(word syntax.Word) *braceWord {
	top := &braceWord{}
	acc := top
	var cur *brace
	var open []*brace

	pop := func() *brace {
		old := cur
		open = open[:len(open)-1]
		if len(open) == 0 {
			cur = nil
			acc = top
		} else {
			cur = open[len(open)-1]
			acc = cur.elems[len(cur.elems)-1]
		}
		return old
	}

	i := 0
	for i < len(word) {
		ch, isChar := word[i].(syntax.Char)
		if !isChar {
			acc.parts = append(acc.parts, word[i])
			i++
			continue
		}
		switch ch.Ch {
		case '{':
			acc = &braceWord{}
			cur = &brace{elems: []*braceWord{acc}}
			open = append(open, cur)
			i++
		case ',':
			if cur == nil {
				acc.parts = append(acc.parts, ch)
				i++
				continue
			}
			acc = &braceWord{}
			cur.elems = append(cur.elems, acc)
			i++
		case '.':
			var next syntax.Char
			var ok bool
			if cur == nil || i+1 >= len(word) {
				ok = false
			} else {
				next, ok = word[i+1].(syntax.Char)
			}
			if cur == nil || !ok || next.Ch != '.' {
				acc.parts = append(acc.parts, ch)
				i++
				continue
			}
			cur.seq = true
			acc = &braceWord{}
			cur.elems = append(cur.elems, acc)
			i += 2
		case '}':
			if cur == nil {
				acc.parts = append(acc.parts, ch)
				i++
				continue
			}
			br := pop()
			if len(br.elems) == 1 {
				acc.parts = append(acc.parts, syntax.Char{Ch: '{'})
				acc.parts = append(acc.parts, br.elems[0].parts...)
				acc.parts = append(acc.parts, syntax.Char{Ch: '}'})
				i++
				continue
			}
			if !br.seq {
				acc.parts = append(acc.parts, br)
				i++
				continue
			}
			if classifySequence(br) {
				acc.parts = append(acc.parts, br)
			} else {
				acc.parts = append(acc.parts, syntax.Char{Ch: '{'})
				for idx, elem := range br.elems {
					if idx > 0 {
						acc.parts = append(acc.parts, syntax.Char{Ch: '.'}, syntax.Char{Ch: '.'})
					}
					acc.parts = append(acc.parts, elem.parts...)
				}
				acc.parts = append(acc.parts, syntax.Char{Ch: '}'})
			}
			i++
		default:
			acc.parts = append(acc.parts, ch)
			i++
		}
	}
	// Braces that were opened but never closed fall back to literal text.
	for acc != top {
		br := pop()
		acc.parts = append(acc.parts, syntax.Char{Ch: '{'})
		for idx, elem := range br.elems {
			if idx > 0 {
				if br.seq {
					acc.parts = append(acc.parts, syntax.Char{Ch: '.'}, syntax.Char{Ch: '.'})
				} else {
					acc.parts = append(acc.parts, syntax.Char{Ch: ','})
				}
			}
			acc.parts = append(acc.parts, elem.parts...)
		}
	}
	return top
}

// classifySequence decides whether br is a valid numeric or alphabetic
// {x..y[..incr]} sequence, setting br.chars accordingly, and reports ok.
func classifySequence(br *brace) bool {
	if len(br.elems) > 3 {
		return false
	}
	var chars [2]bool
	for i, elem := range br.elems[:2] {
		val, ok := braceWordLit(elem)
		if !ok {
			return false
		}
		if _, err := strconv.Atoi(val); err == nil {
			continue
		}
		if len(val) == 1 && isLetter(val[0]) {
			chars[i] = true
			continue
		}
		return false
	}
	if len(br.elems) == 3 {
		val, ok := braceWordLit(br.elems[2])
		if !ok {
			return false
		}
		if _, err := strconv.Atoi(val); err != nil {
			return false
		}
	}
	if chars[0] != chars[1] {
		return false
	}
	br.chars = chars[0]
	return true
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// braceWordLit returns the plain text of a braceWord if every part is a
// literal Char, which is how numeric/alphabetic sequence endpoints arrive.
func braceWordLit(bw *braceWord) (string, bool) {
	if bw == nil {
		return "", false
	}
	var sb strings.Builder
	for _, part := range bw.parts {
		c, ok := part.(syntax.Char)
		if !ok {
			return "", false
		}
		sb.WriteRune(c.Ch)
	}
	return sb.String(), true
}

func expandRec(bw *braceWord) []syntax.Word {
	var all []syntax.Word
	var left []syntax.Span
	for i, part := range bw.parts {
		br, ok := part.(*brace)
		if !ok {
			left = append(left, part.(syntax.Span))
			continue
		}
		if br.seq {
			return append(all, expandSequence(br, left, bw.parts[i+1:])...)
		}
		for _, elem := range br.elems {
			next := &braceWord{parts: append(append([]any{}, elem.parts...), bw.parts[i+1:]...)}
			for _, w := range expandRec(next) {
				all = append(all, prepend(left, w))
			}
		}
		return all
	}
	return []syntax.Word{prepend(left, nil)}
}

func prepend(left []syntax.Span, rest syntax.Word) syntax.Word {
	out := make(syntax.Word, 0, len(left)+len(rest))
	out = append(out, left...)
	out = append(out, rest...)
	return out
}

// expandSequence expands a numeric or alphabetic {x..y[..incr]} brace,
// auto-negating the step when y < x (the Bash-faithful behavior the spec
// prescribes, unlike a naive port that would construct a step of 1 and
// silently yield an empty range). An explicit increment contributes only
// its magnitude; the step's sign always follows the direction from x to y.
func expandSequence(br *brace, left []syntax.Span, tail []any) []syntax.Word {
	lo, _ := braceWordLit(br.elems[0])
	hi, _ := braceWordLit(br.elems[1])

	var from, to int
	if br.chars {
		from, to = int(lo[0]), int(hi[0])
	} else {
		from, _ = strconv.Atoi(lo)
		to, _ = strconv.Atoi(hi)
	}
	upward := from <= to

	width := 0
	if !br.chars && (isZeroPadded(lo) || isZeroPadded(hi)) {
		loDigits, hiDigits := len(strings.TrimPrefix(lo, "-")), len(strings.TrimPrefix(hi, "-"))
		width = loDigits
		if hiDigits > width {
			width = hiDigits
		}
	}

	mag := 1
	if len(br.elems) == 3 {
		if val, ok := braceWordLit(br.elems[2]); ok {
			if n, err := strconv.Atoi(val); err == nil && n != 0 {
				if n < 0 {
					n = -n
				}
				mag = n
			}
		}
	}
	incr := mag
	if !upward {
		incr = -mag
	}

	var all []syntax.Word
	for n := from; (upward && n <= to) || (!upward && n >= to); n += incr {
		var elem []syntax.Span
		if br.chars {
			elem = []syntax.Span{syntax.Char{Ch: rune(n)}}
		} else {
			elem = litSpans(formatNum(n, width))
		}
		nextParts := make([]any, 0, len(elem)+len(tail))
		for _, s := range elem {
			nextParts = append(nextParts, s)
		}
		nextParts = append(nextParts, tail...)
		next := &braceWord{parts: nextParts}
		for _, w := range expandRec(next) {
			all = append(all, prepend(left, w))
		}
	}
	return all
}

func isZeroPadded(s string) bool {
	neg := strings.TrimPrefix(s, "-")
	return len(neg) >= 2 && neg[0] == '0'
}

// formatNum renders n as decimal text, its digits (sign excluded)
// zero-padded to width when width > 0.
func formatNum(n, width int) string {
	s := strconv.Itoa(n)
	if width <= 0 {
		return s
	}
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")
	for len(digits) < width {
		digits = "0" + digits
	}
	if neg {
		return "-" + digits
	}
	return digits
}

func litSpans(s string) []syntax.Span {
	out := make([]syntax.Span, 0, len(s))
	for _, r := range s {
		out = append(out, syntax.Char{Ch: r})
	}
	return out
}
