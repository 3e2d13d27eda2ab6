package scrape

import (
	"strings"
	"testing"

	"github.com/clems4ever/scalp/forest"
	"github.com/clems4ever/scalp/html"
	"github.com/clems4ever/scalp/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func specOf(t *testing.T, src string) forest.Spec {
	t.Helper()
	toks, err := html.Tokenize(strings.NewReader(src))
	require.NoError(t, err)
	return forest.New(toks)
}

func TestTexts_FlatSiblings(t *testing.T) {
	spec := specOf(t, "<a>1</a><a>2</a><a>3</a>")
	got, ok := Texts(selector.Tag("a"))(spec)
	require.True(t, ok)
	assert.Equal(t, []string{"1", "2", "3"}, got)
}

func TestText_NoMatchFails(t *testing.T) {
	spec := specOf(t, "<a>1</a>")
	_, ok := Text(selector.Tag("b"))(spec)
	assert.False(t, ok)
}

func TestAttr_ReadsFirstMatchingTagOpen(t *testing.T) {
	spec := specOf(t, `<a key="v">x</a>`)
	got, ok := Attr("key", selector.Tag("a"))(spec)
	require.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestAttrs_SkipsSpecsMissingTheKey(t *testing.T) {
	spec := specOf(t, `<a href="x">1</a><a>2</a><a href="z">3</a>`)
	got, ok := Attrs("href", selector.Tag("a"))(spec)
	require.True(t, ok)
	assert.Equal(t, []string{"x", "z"}, got)
}

func TestHTML_SerializesWholeSelectedSlice(t *testing.T) {
	spec := specOf(t, `<a href="x"><b>hi</b></a>`)
	got, ok := HTML(selector.Tag("a"))(spec)
	require.True(t, ok)
	assert.Equal(t, `<a href="x"><b>hi</b></a>`, got)
}

func TestInnerHTML_DropsOpenAndCloseTags(t *testing.T) {
	spec := specOf(t, `<a href="x"><b>hi</b></a>`)
	full, _ := HTML(selector.Tag("a"))(spec)
	inner, ok := InnerHTML(selector.Tag("a"))(spec)
	require.True(t, ok)
	assert.Equal(t, full, "<a href=\"x\">"+inner+"</a>")
}

func TestInnerHTML_ShorterThanTwoTokensIsEmpty(t *testing.T) {
	spec := specOf(t, "<br>")
	got, ok := InnerHTML(selector.Tag("br"))(spec)
	require.True(t, ok)
	assert.Empty(t, got)
}

func TestPosition_ReflectsChrootAssignedOrdinal(t *testing.T) {
	spec := specOf(t, "<article><p>A</p><p>B</p><p>C</p></article>")
	got, ok := Chroots(
		selector.Nested(selector.Tag("article"), selector.Tag("p")),
		And(Position(), Text(selector.Any())),
	)(spec)
	require.True(t, ok)
	require.Len(t, got, 3)
	assert.Equal(t, Pair[int, string]{First: 0, Second: "A"}, got[0])
	assert.Equal(t, Pair[int, string]{First: 1, Second: "B"}, got[1])
	assert.Equal(t, Pair[int, string]{First: 2, Second: "C"}, got[2])
}

func TestMatches_SucceedsIffSelectorFinds(t *testing.T) {
	spec := specOf(t, "<a>1</a>")
	_, ok := Matches(selector.Tag("a"))(spec)
	assert.True(t, ok)
	_, ok = Matches(selector.Tag("b"))(spec)
	assert.False(t, ok)
}

func TestChroot_FailsWhenSelectorFindsNothing(t *testing.T) {
	spec := specOf(t, "<a>1</a>")
	_, ok := Chroot(selector.Tag("missing"), Text(selector.Any()))(spec)
	assert.False(t, ok)
}

func TestChroots_HTMLOfAnyRoundTripsWithHTMLs(t *testing.T) {
	// chroots(s, html(any)) must reproduce htmls(s): inside each chroot,
	// the chroot's own root node is itself the first "any" match.
	spec := specOf(t, "<a><b>1</b></a><a><b>2</b></a>")
	viaHtmls, ok := HTMLs(selector.Tag("a"))(spec)
	require.True(t, ok)
	viaChroots, ok := Chroots(selector.Tag("a"), HTML(selector.Any()))(spec)
	require.True(t, ok)
	assert.Equal(t, viaHtmls, viaChroots)
}
