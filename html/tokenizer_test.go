package html

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_Basic(t *testing.T) {
	toks, err := Tokenize(strings.NewReader(`<a href="x">hi</a>`))
	require.NoError(t, err)
	require.Len(t, toks, 3)

	assert.Equal(t, TagOpen, toks[0].Kind)
	assert.Equal(t, "a", toks[0].Name)
	val, ok := toks[0].Attrs.Get("HREF")
	require.True(t, ok)
	assert.Equal(t, "x", val)

	assert.Equal(t, Text, toks[1].Kind)
	assert.Equal(t, "hi", toks[1].Data)

	assert.Equal(t, TagClose, toks[2].Kind)
	assert.Equal(t, "a", toks[2].Name)
}

func TestTokenize_DropsWhitespaceOnlyText(t *testing.T) {
	toks, err := Tokenize(strings.NewReader("<a>   \n\t</a>"))
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, TagOpen, toks[0].Kind)
	assert.Equal(t, TagClose, toks[1].Kind)
}

func TestTokenize_CommentsSurvive(t *testing.T) {
	toks, err := Tokenize(strings.NewReader("<!-- note --><a></a>"))
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, Comment, toks[0].Kind)
	assert.Equal(t, " note ", toks[0].Data)
}

func TestTokenize_SelfClosingHasNoCloser(t *testing.T) {
	toks, err := Tokenize(strings.NewReader(`<br/><img src="x"/>`))
	require.NoError(t, err)
	require.Len(t, toks, 2)
	for _, tok := range toks {
		assert.Equal(t, TagOpen, tok.Kind)
	}
}

func TestTokenize_MalformedStreamTolerated(t *testing.T) {
	toks, err := Tokenize(strings.NewReader(`<a><b></a></b>`))
	require.NoError(t, err)
	require.Len(t, toks, 4)
}

func TestAttributes_GetCaseInsensitiveKey(t *testing.T) {
	attrs := Attributes{{Key: "Class", Value: "Foo"}}
	val, ok := attrs.Get("class")
	require.True(t, ok)
	assert.Equal(t, "Foo", val)

	_, ok = attrs.Get("missing")
	assert.False(t, ok)
}
