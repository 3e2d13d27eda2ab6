package forest

import "github.com/clems4ever/scalp/html"

// Context carries the bookkeeping that travels alongside a TagSpec: the
// ordinal position assigned by chroots (0 when not inside one) and
// whether the spec has been narrowed by a selector or chroot at all.
type Context struct {
	Position int
	InChroot bool
}

// Spec is the working document scalp queries against: a context, the
// current forest view, and the full annotated token vector. Narrowing
// (via select/chroot) only ever replaces Context and Hierarchy; Tags is
// logically shared (a Go slice re-slice, never copied) across every spec
// derived from the same original document.
type Spec struct {
	Context   Context
	Hierarchy Forest
	Tags      []TagInfo
}

// New builds the initial, unnarrowed Spec for a freshly tokenized
// document: position 0, not in a chroot, forest built from the annotated
// tokens.
func New(tokens []html.HtmlToken) Spec {
	tags := AnnotateTags(tokens)
	return Spec{
		Context:   Context{Position: 0, InChroot: false},
		Hierarchy: FromTagInfo(tags),
		Tags:      tags,
	}
}

// WithHierarchy returns a copy of s narrowed to the given forest and
// context, sharing the same Tags slice.
func (s Spec) WithHierarchy(ctx Context, h Forest) Spec {
	return Spec{Context: ctx, Hierarchy: h, Tags: s.Tags}
}
