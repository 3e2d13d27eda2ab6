package forest

import "github.com/clems4ever/scalp/html"

// Tree is one node of a TagForest: a TagSpan plus its ordered child forest.
type Tree struct {
	Value    TagSpan
	Children Forest
}

// Forest is an ordered forest of Tree nodes. Sibling order matches token
// order by .Start; for any node with parent p, p.Start < n.Start <=
// n.End <= p.End. Siblings normally do not overlap, but a child that
// fixTree hoists out of an overrun parent starts inside that parent's
// span.
type Forest []*Tree

// Clone produces a deep, structurally independent copy of the forest
// (new Tree nodes at every level, same TagSpan values), so mutating the
// copy never changes the original.
func (f Forest) Clone() Forest {
	if f == nil {
		return nil
	}
	out := make(Forest, len(f))
	for i, t := range f {
		out[i] = &Tree{Value: t.Value, Children: t.Children.Clone()}
	}
	return out
}

// FromTagInfo builds the forest described by spec §4.2: forestWithin
// partitions the annotated token vector into a containment tree, then
// fixTree normalizes it so malformed HTML (a tag closing outside its
// nominal parent) gets hoisted to the correct sibling position.
func FromTagInfo(tags []TagInfo) Forest {
	return fixTree(forestWithin(tags, 0, len(tags)))
}

// forestWithin returns the forest of spans whose openings lie strictly in
// [start, end). Implemented with an explicit stack (rather than native
// recursion) so a pathologically deep document (thousands of nested tags)
// doesn't require an equally deep Go call stack.
func forestWithin(tags []TagInfo, start, end int) Forest {
	type level struct {
		end      int
		pos      int
		siblings Forest
	}

	stack := []*level{{end: end, pos: start}}
	var root Forest

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.pos >= top.end {
			finished := top.siblings
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				root = finished
				continue
			}
			parent := stack[len(stack)-1]
			lastNode := parent.siblings[len(parent.siblings)-1]
			lastNode.Children = finished
			continue
		}

		entry := tags[top.pos]
		if entry.Token.Kind == html.Comment || entry.Token.Kind == html.TagClose {
			top.pos++
			continue
		}

		nodeStart := top.pos
		closeIndex := nodeStart + entry.CloseOffset // CloseOffset == 0 => degenerate span
		node := &Tree{Value: TagSpan{Start: nodeStart, End: closeIndex}}
		top.siblings = append(top.siblings, node)
		top.pos = closeIndex + 1

		stack = append(stack, &level{end: closeIndex, pos: nodeStart + 1})
	}

	return root
}

// fixTree normalizes a forest produced by forestWithin so that no node's
// End exceeds its parent's End (spec §4.2). Children whose span overruns
// their nominal parent are hoisted to become that parent's immediate
// siblings, in the same position document order would put them.
//
// Implemented as an explicit-stack post-order walk: a node's children are
// fully fixed (recursively) before that node's own ok/bad partition runs,
// but the traversal never grows the native call stack with document
// depth.
func fixTree(raw Forest) Forest {
	type frame struct {
		nodes  []*Tree
		idx    int
		result Forest
	}

	stack := []*frame{{nodes: raw}}
	var root Forest

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.idx >= len(top.nodes) {
			finished := top.result
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				root = finished
				continue
			}
			parent := stack[len(stack)-1]
			node := parent.nodes[parent.idx]

			var ok, bad Forest
			for _, c := range finished {
				if c.Value.End <= node.Value.End {
					ok = append(ok, c)
				} else {
					bad = append(bad, c)
				}
			}
			node.Children = ok
			parent.result = append(parent.result, node)
			parent.result = append(parent.result, bad...)
			parent.idx++
			continue
		}

		node := top.nodes[top.idx]
		stack = append(stack, &frame{nodes: node.Children})
	}

	return root
}
