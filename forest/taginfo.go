// Package forest builds the indexed hierarchical representation (TagForest)
// that the selector engine walks: it annotates matching open/close tags
// over the raw token stream, then assembles and normalizes a forest of
// TagSpan nodes out of that annotation.
package forest

import (
	"sort"

	"github.com/clems4ever/scalp/html"
)

// TagInfo wraps one token together with the offset (in tokens) to its
// matching closing tag, when one exists. CloseOffset is 0 when absent;
// a present offset is always strictly positive (closeIndex > openIndex).
type TagInfo struct {
	Token       html.HtmlToken
	CloseOffset int
}

// HasClose reports whether this TagInfo carries a matching closer.
func (t TagInfo) HasClose() bool { return t.CloseOffset > 0 }

// AnnotateTags attaches each opening tag with the offset to its matching
// closing tag, tolerating a malformed stream (out-of-order or missing
// closers). The output preserves input order and length exactly.
//
// Tag names are looked up case-preserved (map keys are the raw token
// names); only the closer/opener pairing uses that exact-string lookup,
// not the case-insensitive name comparison used later by the selector.
func AnnotateTags(tokens []html.HtmlToken) []TagInfo {
	type indexed struct {
		index int
		info  TagInfo
	}

	stacks := make(map[string][]int)
	var entries []indexed

	for i, tok := range tokens {
		switch tok.Kind {
		case html.TagOpen:
			stacks[tok.Name] = append(stacks[tok.Name], i)

		case html.TagClose:
			stack := stacks[tok.Name]
			if len(stack) > 0 {
				o := stack[len(stack)-1]
				stacks[tok.Name] = stack[:len(stack)-1]
				entries = append(entries, indexed{o, TagInfo{Token: tokens[o], CloseOffset: i - o}})
				entries = append(entries, indexed{i, TagInfo{Token: tok}})
			} else {
				entries = append(entries, indexed{i, TagInfo{Token: tok}})
			}

		default:
			entries = append(entries, indexed{i, TagInfo{Token: tok}})
		}
	}

	// Anything left on a stack never saw its closer.
	for _, idxs := range stacks {
		for _, o := range idxs {
			entries = append(entries, indexed{o, TagInfo{Token: tokens[o]}})
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].index < entries[j].index })

	out := make([]TagInfo, len(entries))
	for i, e := range entries {
		out[i] = e.info
	}
	return out
}
