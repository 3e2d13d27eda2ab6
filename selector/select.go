package selector

import (
	"github.com/clems4ever/scalp/forest"
	"github.com/clems4ever/scalp/html"
)

// Select runs sel against spec's current forest view, returning one
// narrowed Spec per match, in document order. sel is stored
// innermost-first (see Selector's doc comment); the actual descent walks
// the document outermost-first, so the chain is reversed exactly once
// here before selectNodes ever runs.
func Select(spec forest.Spec, sel Selector) []forest.Spec {
	if len(sel) == 0 {
		return nil
	}
	order := traversalOrder(sel)
	matches := selectNodes(spec.Hierarchy, order, spec.Hierarchy, spec.Tags)

	out := make([]forest.Spec, 0, len(matches))
	for i, node := range matches {
		out = append(out, shrinkSpecWith(node, spec.Tags, i))
	}
	return out
}

// selectNodes is the recursive matcher described informally as: look at
// the first node of hierarchy against the first (outermost remaining)
// selection; on a match either keep narrowing (more selections left) or
// emit (this was the last one); on a Fail, fall back to searching this
// node's children and its later siblings; on a Cull, search only its
// later siblings. root always points at the
// forest that depth settings count ancestors against: the whole document
// until the first successful narrowing, after which it becomes that
// match's own lifted-siblings-plus-itself, so atDepth is relative to the
// most recently matched outer selection rather than the document root.
//
// This walks two independent structures — the forest and the selector
// chain — at once, re-anchoring root on every successful descent; that
// cross product doesn't reduce to a simple linear stack the way
// forest.fixTree's post-order walk does, so unlike that one this keeps
// native Go recursion. Go's goroutine stacks grow on demand (default 8KB,
// up to a 1GB ceiling), which comfortably covers the depths scalp is
// budgeted for; select_test.go exercises a depth well past where a
// fixed-size-stack implementation would already have failed.
func selectNodes(hierarchy forest.Forest, sel Selector, root forest.Forest, tags []forest.TagInfo) []*forest.Tree {
	if len(hierarchy) == 0 {
		return nil
	}

	f, fs := hierarchy[0], hierarchy[1:]
	n, ns := sel[0], sel[1:]
	result := nodeMatches(f, tags, n, root)

	if len(ns) == 0 {
		switch result {
		case Ok:
			out := []*forest.Tree{f}
			out = append(out, selectNodes(f.Children, Selector{n}, root, tags)...)
			out = append(out, selectNodes(fs, Selector{n}, root, tags)...)
			return out
		case Cull:
			return selectNodes(fs, Selector{n}, root, tags)
		default: // Fail
			var out []*forest.Tree
			out = append(out, selectNodes(f.Children, Selector{n}, root, tags)...)
			out = append(out, selectNodes(fs, Selector{n}, root, tags)...)
			return out
		}
	}

	switch result {
	case Ok:
		lifted, rest := liftSiblings(fs, f.Value)
		newRoot := append(append(forest.Forest{}, lifted...), f)
		combined := append(append(forest.Forest{}, f.Children...), lifted...)

		var out []*forest.Tree
		out = append(out, selectNodes(combined, ns, newRoot, tags)...)
		out = append(out, selectNodes(rest, sel, root, tags)...)
		return out
	case Cull:
		return selectNodes(fs, sel, root, tags)
	default: // Fail
		var out []*forest.Tree
		out = append(out, selectNodes(f.Children, sel, root, tags)...)
		out = append(out, selectNodes(fs, sel, root, tags)...)
		return out
	}
}

// liftSiblings splits fs into the prefix whose spans open strictly before
// span's close (candidates a malformed document hoisted out of the node
// currently matching, per forest.fixTree) and the untouched remainder.
// fs is sorted by Start, so the split point is found with a single scan.
func liftSiblings(fs forest.Forest, span forest.TagSpan) (lifted, rest forest.Forest) {
	i := 0
	for i < len(fs) && fs[i].Value.Start < span.End {
		i++
	}
	return fs[:i], fs[i:]
}

// nodeMatches combines the settings verdict (depth bookkeeping) with the
// strategy verdict (name/predicate matching against f's own opening
// token) into the single Result the traversal branches on.
func nodeMatches(f *forest.Tree, tags []forest.TagInfo, sel Selection, root forest.Forest) Result {
	tok := tags[f.Value.Start].Token
	return Combine(checkSettings(sel.Settings, f.Value, root), checkStrategy(tok, sel.Strategy))
}

// checkStrategy matches a single token against a Strategy, independent of
// any depth bookkeeping.
func checkStrategy(tok html.HtmlToken, s Strategy) Result {
	switch s.Kind {
	case StrategyOne:
		if tok.Kind != html.TagOpen || !html.NameEqual(tok.Name, s.Name) {
			return Fail
		}
	case StrategyAny:
		if tok.Kind == html.Text {
			if len(s.Predicates) > 0 {
				return Fail
			}
			return Ok
		}
		if tok.Kind != html.TagOpen {
			return Fail
		}
	case StrategyText:
		if tok.Kind != html.Text {
			return Fail
		}
		return Ok
	default:
		return Fail
	}
	for _, p := range s.Predicates {
		if !p(tok.Attrs) {
			return Fail
		}
	}
	return Ok
}

// checkSettings enforces a Selection's depth requirement, if any, by
// counting how many nodes in root strictly contain span. Fail means the
// candidate hasn't descended far enough yet (its subtree might still);
// Cull means it has already gone too deep, so the whole subtree rooted
// here can be abandoned.
func checkSettings(settings Settings, span forest.TagSpan, root forest.Forest) Result {
	if !settings.HasDepth {
		return Ok
	}
	switch depth := ancestorCount(span, root); {
	case depth < settings.Depth:
		return Fail
	case depth > settings.Depth:
		return Cull
	default:
		return Ok
	}
}

// ancestorCount counts the nodes in root that strictly contain span,
// descending only into nodes that contain it. Siblings hoisted by
// forest.fixTree can overlap, so more than one branch at a level may be
// counted. It's written
// with an explicit stack rather than recursion purely to keep the same
// style as forest.fixTree, since the depth here is bounded by document
// nesting depth just like that walk.
func ancestorCount(span forest.TagSpan, root forest.Forest) int {
	count := 0
	stack := append(forest.Forest{}, root...)
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t.Value.Start < span.Start && span.End < t.Value.End {
			count++
			stack = append(stack, t.Children...)
		}
	}
	return count
}

// shrinkSpecWith builds the narrowed Spec emitted for one matched node:
// its token range re-sliced (never copied — see forest.Spec) to start at
// index 0, and its own subtree cloned with every span shifted to match.
func shrinkSpecWith(node *forest.Tree, tags []forest.TagInfo, position int) forest.Spec {
	delta := -node.Value.Start
	shifted := &forest.Tree{
		Value:    node.Value.Shift(delta),
		Children: shiftForest(node.Children, delta),
	}
	return forest.Spec{
		Context:   forest.Context{Position: position, InChroot: true},
		Hierarchy: forest.Forest{shifted},
		Tags:      tags[node.Value.Start : node.Value.End+1],
	}
}

func shiftForest(f forest.Forest, delta int) forest.Forest {
	if f == nil {
		return nil
	}
	out := make(forest.Forest, len(f))
	for i, t := range f {
		out[i] = &forest.Tree{Value: t.Value.Shift(delta), Children: shiftForest(t.Children, delta)}
	}
	return out
}
