package scalp

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/clems4ever/scalp/forest"
	"github.com/clems4ever/scalp/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExamples_TokenizeAndBuildForest glob-discovers every fixture under
// examples/ the way the teacher's TestEncoder_RoundTrip discovers
// testdata/*.html, and checks that each one tokenizes and builds a
// forest satisfying the structural invariants spec §3/§8 require —
// regardless of how well-formed the source markup is.
func TestExamples_TokenizeAndBuildForest(t *testing.T) {
	matches, err := filepath.Glob("examples/*.html")
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	for _, path := range matches {
		t.Run(filepath.Base(path), func(t *testing.T) {
			data, err := os.ReadFile(path)
			require.NoError(t, err)

			tokens, err := html.Tokenize(bytes.NewReader(data))
			require.NoError(t, err)
			require.NotEmpty(t, tokens)

			spec := forest.New(tokens)
			assertForestWellFormed(t, spec.Hierarchy, nil)
		})
	}
}

func assertForestWellFormed(t *testing.T, f forest.Forest, parent *forest.TagSpan) {
	t.Helper()
	prevStart := -1
	for _, node := range f {
		require.LessOrEqual(t, node.Value.Start, node.Value.End)
		require.Greater(t, node.Value.Start, prevStart)
		if parent != nil {
			assert.LessOrEqual(t, node.Value.End, parent.End)
			assert.Greater(t, node.Value.Start, parent.Start)
		}
		assertForestWellFormed(t, node.Children, &node.Value)
		prevStart = node.Value.Start
	}
}

func TestExamples_ArticleSectionsExtractText(t *testing.T) {
	data, err := os.ReadFile("examples/article.html")
	require.NoError(t, err)

	got, ok := Scrape(string(data), Texts(Nested(Tag("article"), Tag("p"))))
	require.True(t, ok)
	assert.Equal(t, []string{
		"This is the first paragraph.",
		"This is the second paragraph.",
		"This is the final paragraph.",
	}, got)
}

func TestExamples_TableRosterReadsCellText(t *testing.T) {
	data, err := os.ReadFile("examples/table.html")
	require.NoError(t, err)

	names, ok := Scrape(string(data), Texts(Nested(Tag("table"), WithAttributes("td", HasClass("name")))))
	require.True(t, ok)
	assert.Equal(t, []string{"Ada", "Grace", "Alan"}, names)
}
