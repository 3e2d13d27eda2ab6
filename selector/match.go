// Package selector implements the selector algebra and the recursive
// matcher that walks a forest.TagForest producing shrunk sub-specs.
package selector

// Result is the tri-valued verdict a node match produces. Ok and Fail
// behave as ordinary booleans; Cull additionally tells the traversal that
// the current subtree can never satisfy the selector (most commonly
// because a depth bound has already been exceeded), so it should be
// pruned outright rather than merely rejected.
type Result int

const (
	Ok Result = iota
	Fail
	Cull
)

// Combine merges a settings verdict with a strategy verdict: any Cull
// wins outright, both Ok yields Ok, anything else is Fail.
func Combine(a, b Result) Result {
	if a == Cull || b == Cull {
		return Cull
	}
	if a == Ok && b == Ok {
		return Ok
	}
	return Fail
}
