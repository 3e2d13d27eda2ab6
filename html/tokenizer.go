package html

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Tokenizer turns raw HTML into an ordered stream of HtmlToken values. It is
// the external collaborator spec.md assumes the rest of scalp sits on top
// of; internally it is a thin adapter over golang.org/x/net/html's
// streaming lexer, the same package the teacher uses (via html.Parse) to
// normalize legacy markup before further processing.
type Tokenizer struct {
	z *html.Tokenizer
}

// NewTokenizer wraps r for streaming tokenization.
func NewTokenizer(r io.Reader) *Tokenizer {
	return &Tokenizer{z: html.NewTokenizer(r)}
}

// Tokenize drains r entirely into a token vector. Empty (whitespace-only)
// text runs are dropped; comments always survive. Self-closing tags yield
// a single TagOpen token with no paired TagClose, matching spec §3's
// requirement that the tokenizer not emit a synthetic closer for them.
func Tokenize(r io.Reader) ([]HtmlToken, error) {
	t := NewTokenizer(r)
	var out []HtmlToken
	for {
		tok, err := t.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		if tok == nil {
			continue
		}
		out = append(out, *tok)
	}
}

// Next returns the next HtmlToken, or io.EOF when the stream is exhausted.
// A nil token with a nil error means a token was suppressed (a
// whitespace-only text run, a doctype, or any other kind scalp does not
// model); callers should loop until a non-nil token or an error.
func (t *Tokenizer) Next() (*HtmlToken, error) {
	tt := t.z.Next()
	switch tt {
	case html.ErrorToken:
		if err := t.z.Err(); err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("tokenize: %w", t.z.Err())

	case html.StartTagToken, html.SelfClosingTagToken:
		name, hasAttr := t.z.TagName()
		attrs := parseAttrs(t.z, hasAttr)
		return &HtmlToken{Kind: TagOpen, Name: string(name), Attrs: attrs}, nil

	case html.EndTagToken:
		name, _ := t.z.TagName()
		return &HtmlToken{Kind: TagClose, Name: string(name)}, nil

	case html.TextToken:
		data := string(t.z.Text())
		if strings.TrimSpace(data) == "" {
			return nil, nil
		}
		return &HtmlToken{Kind: Text, Data: data}, nil

	case html.CommentToken:
		return &HtmlToken{Kind: Comment, Data: string(t.z.Text())}, nil

	case html.DoctypeToken:
		return nil, nil

	default:
		return nil, nil
	}
}

func parseAttrs(z *html.Tokenizer, hasAttr bool) Attributes {
	if !hasAttr {
		return nil
	}
	var attrs Attributes
	for {
		key, val, more := z.TagAttr()
		attrs = append(attrs, Attribute{Key: string(key), Value: string(val)})
		if !more {
			break
		}
	}
	return attrs
}
