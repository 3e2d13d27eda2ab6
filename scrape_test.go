package scalp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScrape_EndToEndScenarios exercises spec §8's end-to-end scenarios
// table directly against the public, single-import API.
func TestScrape_EndToEndScenarios(t *testing.T) {
	t.Run("scenario 1: flat siblings", func(t *testing.T) {
		got, ok := Scrape("<a>1</a><a>2</a><a>3</a>", Texts(Tag("a")))
		require.True(t, ok)
		assert.Equal(t, []string{"1", "2", "3"}, got)
	})

	t.Run("scenario 2: nested across separate parents", func(t *testing.T) {
		got, ok := Scrape("<a><b>1</b></a><a><b>2</b></a>", Texts(Nested(Tag("a"), Tag("b"))))
		require.True(t, ok)
		assert.Equal(t, []string{"1", "2"}, got)
	})

	t.Run("scenario 3: malformed-aware lifting", func(t *testing.T) {
		got, ok := Scrape("<a><b><c><d>2</d></b></c></a>", Texts(Nested(Tag("b"), Tag("d"))))
		require.True(t, ok)
		assert.Equal(t, []string{"2"}, got)
	})

	t.Run("scenario 4: atDepth narrows to the deeper match", func(t *testing.T) {
		got, ok := Scrape("<a><b>1</b><c><b>2</b></c></a>", Texts(Nested(Tag("a"), AtDepth(Tag("b"), 2))))
		require.True(t, ok)
		assert.Equal(t, []string{"2"}, got)
	})

	t.Run("scenario 5: attr reads the matched element's attribute", func(t *testing.T) {
		got, ok := Scrape(`<a key="v">x</a>`, Attr("key", Tag("a")))
		require.True(t, ok)
		assert.Equal(t, "v", got)
	})

	t.Run("scenario 6: chroots pairs position with text in document order", func(t *testing.T) {
		got, ok := Scrape(
			"<article><p>A</p><p>B</p><p>C</p></article>",
			Chroots(Nested(Tag("article"), Tag("p")), And(Position(), Text(Any()))),
		)
		require.True(t, ok)
		require.Len(t, got, 3)
		assert.Equal(t, Pair[int, string]{First: 0, Second: "A"}, got[0])
		assert.Equal(t, Pair[int, string]{First: 1, Second: "B"}, got[1])
		assert.Equal(t, Pair[int, string]{First: 2, Second: "C"}, got[2])
	})

	t.Run("scenario 7: chroot + serial sections with a bounded until", func(t *testing.T) {
		type section struct {
			Title string
			Paras []string
		}
		sectionScraper := Bind(SeekNext(Text(Tag("h2"))), func(title string) SerialScraper[section] {
			return func(z SpecZipper) (section, bool, SpecZipper) {
				paras, _, next := UntilNext(Matches(Tag("h2")), Repeat(SeekNext(Text(Tag("p")))))(z)
				return section{Title: title, Paras: paras}, true, next
			}
		})
		got, ok := Scrape(
			"<article><h2>S1</h2><p>p1</p><p>p2</p><h2>S2</h2><p>p3</p></article>",
			Chroot(Tag("article"), InSerial(Repeat(sectionScraper))),
		)
		require.True(t, ok)
		require.Len(t, got, 2)
		assert.Equal(t, section{Title: "S1", Paras: []string{"p1", "p2"}}, got[0])
		assert.Equal(t, section{Title: "S2", Paras: []string{"p3"}}, got[1])
	})
}

func TestScrape_FailsWhenScraperFindsNothing(t *testing.T) {
	_, ok := Scrape("<a>1</a>", Text(Tag("missing")))
	assert.False(t, ok)
}

func TestScrape_PropagatesAppliesInnerHTMLLaw(t *testing.T) {
	full, ok := Scrape(`<a href="x"><b>hi</b></a>`, HTML(Tag("a")))
	require.True(t, ok)
	inner, ok := Scrape(`<a href="x"><b>hi</b></a>`, InnerHTML(Tag("a")))
	require.True(t, ok)
	assert.Equal(t, full, `<a href="x">`+inner+"</a>")
}
