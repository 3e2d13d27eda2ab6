// Package scrape provides the extraction combinators (TagSpec.text,
// .attr, .chroot, and friends) that sit on top of forest and selector.
package scrape

import (
	"strings"

	"github.com/clems4ever/scalp/forest"
	"github.com/clems4ever/scalp/html"
)

// Serialize renders a token slice back to HTML exactly as the Scraper
// html/htmls/innerHTML/innerHTMLs primitives require: TagOpen re-rendered
// as <name k1="v1" k2="v2"> (attributes in source order, a leading space
// only when there are any), TagClose as </name>, Text verbatim, Comment
// as <!--...-->.
func Serialize(tags []forest.TagInfo) string {
	var b strings.Builder
	for _, ti := range tags {
		writeToken(&b, ti.Token)
	}
	return b.String()
}

func writeToken(b *strings.Builder, tok html.HtmlToken) {
	switch tok.Kind {
	case html.TagOpen:
		b.WriteByte('<')
		b.WriteString(tok.Name)
		for _, a := range tok.Attrs {
			b.WriteByte(' ')
			b.WriteString(a.Key)
			b.WriteString(`="`)
			b.WriteString(a.Value)
			b.WriteByte('"')
		}
		b.WriteByte('>')
	case html.TagClose:
		b.WriteString("</")
		b.WriteString(tok.Name)
		b.WriteByte('>')
	case html.Text:
		b.WriteString(tok.Data)
	case html.Comment:
		b.WriteString("<!--")
		b.WriteString(tok.Data)
		b.WriteString("-->")
	}
}

// textOf concatenates the Data of every Text token in tags, in order.
func textOf(tags []forest.TagInfo) string {
	var b strings.Builder
	for _, ti := range tags {
		if ti.Token.Kind == html.Text {
			b.WriteString(ti.Token.Data)
		}
	}
	return b.String()
}

// firstAttr returns the value of key on the first TagOpen token in tags.
func firstAttr(tags []forest.TagInfo, key string) (string, bool) {
	for _, ti := range tags {
		if ti.Token.Kind == html.TagOpen {
			return ti.Token.Attrs.Get(key)
		}
	}
	return "", false
}

// innerSlice drops the leading and trailing token: slice(1, len-1),
// exclusive on the upper bound (the closing tag token is dropped too).
// Shorter than two tokens yields an empty slice.
func innerSlice(tags []forest.TagInfo) []forest.TagInfo {
	if len(tags) < 2 {
		return nil
	}
	return tags[1 : len(tags)-1]
}
