package syntax

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

// scanParamSubstOf parses "${body}" as a whole word and returns its single
// ParamExp span's Subst, which is how the grammar always reaches param.go.
func scanParamSubstOf(t *testing.T, c *qt.C, body string) ParameterSubst {
	t.Helper()
	w, err := newParser("test.sh", "${"+body).scanWord(stopSetDefault)
	c.Assert(err, qt.IsNil)
	c.Assert(w, qt.HasLen, 1)
	pe, ok := w[0].(ParamExp)
	c.Assert(ok, qt.IsTrue)
	return pe.Subst
}

func TestParamSubstDispatch(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	c.Assert(scanParamSubstOf(t, c, "foo}"), qt.DeepEquals,
		Bare{Param: Parameter{Name: "foo"}})

	c.Assert(scanParamSubstOf(t, c, "!foo}"), qt.DeepEquals,
		Brace{Indirect: true, Param: Parameter{Name: "foo"}})

	c.Assert(scanParamSubstOf(t, c, "!foo@}"), qt.DeepEquals,
		Prefix{Prefix: "foo", Modifier: '@'})

	c.Assert(scanParamSubstOf(t, c, "!arr[@]}"), qt.DeepEquals,
		Indices{Param: Parameter{Name: "arr"}})

	c.Assert(scanParamSubstOf(t, c, "#foo}"), qt.DeepEquals,
		Length{Param: Parameter{Name: "foo"}})

	got := scanParamSubstOf(t, c, "foo:-bar}")
	alt, ok := got.(Alt)
	c.Assert(ok, qt.IsTrue)
	c.Assert(alt.TestNull, qt.IsTrue)
	c.Assert(alt.Op, qt.Equals, AltDefault)

	got = scanParamSubstOf(t, c, "foo+bar}")
	alt, ok = got.(Alt)
	c.Assert(ok, qt.IsTrue)
	c.Assert(alt.TestNull, qt.IsFalse)
	c.Assert(alt.Op, qt.Equals, AltIfSet)

	got = scanParamSubstOf(t, c, "foo:2:3}")
	sub, ok := got.(Substring)
	c.Assert(ok, qt.IsTrue)
	off, _ := wordLiteral(sub.Offset)
	length, _ := wordLiteral(sub.Length)
	c.Assert(off, qt.Equals, "2")
	c.Assert(length, qt.Equals, "3")

	got = scanParamSubstOf(t, c, "foo##bar}")
	del, ok := got.(Delete)
	c.Assert(ok, qt.IsTrue)
	c.Assert(del.Shortest, qt.IsFalse)
	c.Assert(del.Direction, qt.Equals, TrimFront)

	got = scanParamSubstOf(t, c, "foo%bar}")
	del, ok = got.(Delete)
	c.Assert(ok, qt.IsTrue)
	c.Assert(del.Shortest, qt.IsTrue)
	c.Assert(del.Direction, qt.Equals, TrimBack)

	got = scanParamSubstOf(t, c, "foo/bar/baz}")
	rep, ok := got.(Replace)
	c.Assert(ok, qt.IsTrue)
	c.Assert(rep.All, qt.IsFalse)
	c.Assert(rep.Direction, qt.IsNil)
	pat, _ := wordLiteral(rep.Pattern)
	repl, _ := wordLiteral(rep.Replacement)
	c.Assert(pat, qt.Equals, "bar")
	c.Assert(repl, qt.Equals, "baz")

	got = scanParamSubstOf(t, c, "foo//bar/baz}")
	rep, ok = got.(Replace)
	c.Assert(ok, qt.IsTrue)
	c.Assert(rep.All, qt.IsTrue)

	got = scanParamSubstOf(t, c, "foo^^}")
	lc, ok := got.(LetterCase)
	c.Assert(ok, qt.IsTrue)
	c.Assert(lc.ToLower, qt.IsFalse)
	c.Assert(lc.StartCase, qt.IsTrue)

	got = scanParamSubstOf(t, c, "foo,}")
	lc, ok = got.(LetterCase)
	c.Assert(ok, qt.IsTrue)
	c.Assert(lc.ToLower, qt.IsTrue)
	c.Assert(lc.StartCase, qt.IsFalse)
}

func TestParamSubstBadFallsBackToRaw(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	got := scanParamSubstOf(t, c, "1foo}")
	bad, ok := got.(BadSubst)
	c.Assert(ok, qt.IsTrue)
	c.Assert(bad.Raw, qt.Equals, "1foo")
}
