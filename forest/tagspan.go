package forest

// TagSpan identifies a closed region [Start, End] (inclusive) in the
// annotated token vector. Start <= End always; when an opening tag has no
// closing tag, End == Start (a degenerate single-token span).
type TagSpan struct {
	Start int
	End   int
}

// Len returns the number of tokens the span covers.
func (s TagSpan) Len() int { return s.End - s.Start + 1 }

// Shift translates both endpoints by delta, used when recentering a
// shrunk spec's spans onto a zero-based slice (see select.shrinkSpecWith).
func (s TagSpan) Shift(delta int) TagSpan {
	return TagSpan{Start: s.Start + delta, End: s.End + delta}
}
