package expand

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/bashast/bashast/syntax"
)

func TestFieldsDefaultIFSCollapsesWhitespace(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	got := Fields(" \t\n", lit("  foo   bar\tbaz  "))
	c.Assert(litStrings(t, got), qt.DeepEquals, []string{"foo", "bar", "baz"})
}

func TestFieldsOtherCharCollapsesLikeWhitespace(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	got := Fields(":", lit("a::b:c"))
	c.Assert(litStrings(t, got), qt.DeepEquals, []string{"a", "b", "c"})
}

func TestFieldsMixedWhitespaceAndOther(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	got := Fields(" :", lit("a : b"))
	c.Assert(litStrings(t, got), qt.DeepEquals, []string{"a", "b"})
}

func TestFieldsEmptyIFSNeverSplits(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	got := Fields("", lit("a b c"))
	c.Assert(got, qt.HasLen, 1)
	c.Assert(litStrings(t, got), qt.DeepEquals, []string{"a b c"})
}

func TestFieldsQuotedSpanNeverSplits(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	word := syntax.Word{
		syntax.Char{Ch: 'a'},
		syntax.Single{Value: "b c"},
		syntax.Char{Ch: 'd'},
	}
	got := Fields(" ", word)
	c.Assert(got, qt.HasLen, 1)
	c.Assert(got[0], qt.DeepEquals, word)
}

func TestFieldsAllWhitespaceSplitsToNoFields(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	got := Fields(" ", lit("   "))
	c.Assert(got, qt.HasLen, 0)

	got = Fields(" ", syntax.Word{})
	c.Assert(got, qt.HasLen, 0)
}

func TestFieldsOtherCharNeverYieldsEmptyFieldAtEdges(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	got := Fields(":", lit(":a:"))
	c.Assert(litStrings(t, got), qt.DeepEquals, []string{"a"})
}
