package selector

// StrategyKind tags the variant held by a Strategy.
type StrategyKind int

const (
	StrategyOne StrategyKind = iota
	StrategyAny
	StrategyText
)

// Strategy is the node-matching rule for one Selection.
type Strategy struct {
	Kind       StrategyKind
	Name       string               // StrategyOne only
	Predicates []AttributePredicate // StrategyOne, StrategyAny
}

// Settings controls a Selection beyond its basic strategy match.
type Settings struct {
	Depth    int
	HasDepth bool
}

// Selection is one step of a Selector chain: a matching strategy plus
// depth settings.
type Selection struct {
	Strategy Strategy
	Settings Settings
}

// Selector is an ordered chain of Selection values, stored
// INNERMOST-FIRST: Selector[0] is the innermost (last-matched) element of
// interest, Selector[len-1] is the outermost (first-matched, closest to
// the document root).
type Selector []Selection

// Tag selects an element by name (case-insensitive), with no predicates.
func Tag(name string) Selector {
	return Selector{{Strategy: Strategy{Kind: StrategyOne, Name: name}}}
}

// WithAttributes selects an element by name that also satisfies every
// given predicate.
func WithAttributes(name string, preds ...AttributePredicate) Selector {
	return Selector{{Strategy: Strategy{Kind: StrategyOne, Name: name, Predicates: preds}}}
}

// Any selects any element (TagOpen token) or bare text node, with no
// predicates.
func Any() Selector {
	return Selector{{Strategy: Strategy{Kind: StrategyAny}}}
}

// AnyWithAttributes selects any element satisfying every given predicate.
func AnyWithAttributes(preds ...AttributePredicate) Selector {
	return Selector{{Strategy: Strategy{Kind: StrategyAny, Predicates: preds}}}
}

// TextSel selects a bare text node.
func TextSel() Selector {
	return Selector{{Strategy: Strategy{Kind: StrategyText}}}
}

// Nested concatenates a parent (outer) selector with a child (inner) one,
// producing the combined innermost-first chain: child's selections first,
// then parent's.
func Nested(parent, child Selector) Selector {
	out := make(Selector, 0, len(parent)+len(child))
	out = append(out, child...)
	out = append(out, parent...)
	return out
}

// AtDepth overrides the depth requirement of sel's outermost (last)
// Selection, returning a new Selector (sel is left untouched).
func AtDepth(sel Selector, depth int) Selector {
	out := make(Selector, len(sel))
	copy(out, sel)
	if len(out) == 0 {
		return out
	}
	last := out[len(out)-1]
	last.Settings = Settings{Depth: depth, HasDepth: true}
	out[len(out)-1] = last
	return out
}

// traversalOrder reverses sel into outermost-first order, the order the
// matcher actually descends the forest in.
func traversalOrder(sel Selector) Selector {
	out := make(Selector, len(sel))
	for i, s := range sel {
		out[len(sel)-1-i] = s
	}
	return out
}
