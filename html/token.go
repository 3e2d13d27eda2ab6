// Package html provides the lexical token model consumed by the rest of
// scalp: an ordered stream of HtmlToken values produced by an external
// tokenizer (here, a thin wrapper around golang.org/x/net/html).
package html

import "strings"

// TokenKind tags the variant held by an HtmlToken.
type TokenKind int

const (
	TagOpen TokenKind = iota
	TagClose
	Text
	Comment
)

func (k TokenKind) String() string {
	switch k {
	case TagOpen:
		return "TagOpen"
	case TagClose:
		return "TagClose"
	case Text:
		return "Text"
	case Comment:
		return "Comment"
	default:
		return "Unknown"
	}
}

// Attribute is a single (key, value) pair on an opening tag. Keys are
// compared case-insensitively; values are compared case-sensitively.
type Attribute struct {
	Key   string
	Value string
}

// Attributes is an ordered list of Attribute, preserving source order so
// that re-serialization (see scrape/html.go) writes attributes back in
// their source order.
type Attributes []Attribute

// Get returns the value of the first attribute whose key matches name
// case-insensitively.
func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a {
		if strings.EqualFold(attr.Key, name) {
			return attr.Value, true
		}
	}
	return "", false
}

// HtmlToken is a tagged variant over the four lexical events the rest of
// scalp depends on. Only the fields relevant to Kind are meaningful:
// TagOpen uses Name+Attrs, TagClose uses Name, Text and Comment use Data.
type HtmlToken struct {
	Kind  TokenKind
	Name  string
	Attrs Attributes
	Data  string
}

// NameEqual compares tag names case-insensitively, per spec §3.
func NameEqual(a, b string) bool {
	return strings.EqualFold(a, b)
}
