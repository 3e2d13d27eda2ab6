// Package serial implements the zipper-based SerialScraper: ordered,
// stateful navigation across a sequence of sibling specs, layered on top
// of scrape's TagSpec-at-a-time combinators.
package serial

import "github.com/clems4ever/scalp/forest"

// SpecZipper is a zipper over Option<TagSpec> (nil stands for None): a
// focused element plus what lies to either side. Both ends are padded
// with a None sentinel so the focus can validly sit one step before the
// first, or one step past the last, real element — the only way a step
// move can ever reach either end.
//
// Lefts and Rights both store their nearest-to-focus element at the END
// of the slice, so moving the focus is a single append/pop on either
// side.
type SpecZipper struct {
	Lefts  []*forest.Spec
	Focus  *forest.Spec
	Rights []*forest.Spec
}

// padded builds a zipper over specs with a None sentinel at both ends
// and the focus on the leading None, matching toZipper's construction
// rule so untilWith's bounded sub-zipper behaves exactly like the
// top-level one.
func padded(specs []*forest.Spec) SpecZipper {
	rights := make([]*forest.Spec, 0, len(specs)+1)
	rights = append(rights, nil)
	for i := len(specs) - 1; i >= 0; i-- {
		rights = append(rights, specs[i])
	}
	return SpecZipper{Rights: rights}
}

// toZipper builds the zipper a fresh SerialScraper run starts from: one
// sub-spec per root in the given forest, each seeing that single root
// tree and the shared token vector, padded with None at both ends.
func toZipper(hierarchy forest.Forest, ctx forest.Context, tags []forest.TagInfo) SpecZipper {
	subs := make([]*forest.Spec, len(hierarchy))
	for i, f := range hierarchy {
		subs[i] = &forest.Spec{Context: ctx, Hierarchy: forest.Forest{f}, Tags: tags}
	}
	return padded(subs)
}

// down moves the focus one element to the right. It reports moved=false
// only when the zipper was already in its fully-exhausted state (focus
// nil, nothing left in Rights) — the one case further motion can never
// make progress, used by seekWith/untilWith to detect they've run out of
// zipper to search.
func (z SpecZipper) down() (SpecZipper, bool) {
	if z.Focus == nil && len(z.Rights) == 0 {
		return z, false
	}
	lefts := append(append([]*forest.Spec{}, z.Lefts...), z.Focus)
	if len(z.Rights) == 0 {
		return SpecZipper{Lefts: lefts}, true
	}
	focus := z.Rights[len(z.Rights)-1]
	rights := z.Rights[:len(z.Rights)-1]
	return SpecZipper{Lefts: lefts, Focus: focus, Rights: rights}, true
}

// up is down's mirror image, moving the focus one element to the left.
func (z SpecZipper) up() (SpecZipper, bool) {
	if z.Focus == nil && len(z.Lefts) == 0 {
		return z, false
	}
	rights := append(append([]*forest.Spec{}, z.Rights...), z.Focus)
	if len(z.Lefts) == 0 {
		return SpecZipper{Rights: rights}, true
	}
	focus := z.Lefts[len(z.Lefts)-1]
	lefts := z.Lefts[:len(z.Lefts)-1]
	return SpecZipper{Lefts: lefts, Focus: focus, Rights: rights}, true
}
