package scrape

import (
	"github.com/clems4ever/scalp/forest"
	"github.com/clems4ever/scalp/selector"
)

// Scraper is an extraction step over a forest.Spec: it either produces a
// value or fails (the ok bool), mirroring the source's Option-returning
// combinators without committing to a particular monad abstraction (the
// typeclass plumbing itself is explicitly out of scope — see DESIGN.md).
type Scraper[T any] func(spec forest.Spec) (T, bool)

// Text concatenates the text content of every Text token in the first
// spec sel selects.
func Text(sel selector.Selector) Scraper[string] {
	return func(spec forest.Spec) (string, bool) {
		matches := selector.Select(spec, sel)
		if len(matches) == 0 {
			return "", false
		}
		return textOf(matches[0].Tags), true
	}
}

// Texts runs Text's extraction over every spec sel selects, in order.
func Texts(sel selector.Selector) Scraper[[]string] {
	return func(spec forest.Spec) ([]string, bool) {
		matches := selector.Select(spec, sel)
		out := make([]string, len(matches))
		for i, m := range matches {
			out[i] = textOf(m.Tags)
		}
		return out, true
	}
}

// Attr returns the value of key on the first spec's first TagOpen token.
func Attr(key string, sel selector.Selector) Scraper[string] {
	return func(spec forest.Spec) (string, bool) {
		matches := selector.Select(spec, sel)
		if len(matches) == 0 {
			return "", false
		}
		return firstAttr(matches[0].Tags, key)
	}
}

// Attrs gathers Attr's extraction from each selected spec, skipping any
// spec whose first TagOpen lacks key.
func Attrs(key string, sel selector.Selector) Scraper[[]string] {
	return func(spec forest.Spec) ([]string, bool) {
		matches := selector.Select(spec, sel)
		out := make([]string, 0, len(matches))
		for _, m := range matches {
			if v, ok := firstAttr(m.Tags, key); ok {
				out = append(out, v)
			}
		}
		return out, true
	}
}

// HTML serializes the entire token slice of the first spec sel selects.
func HTML(sel selector.Selector) Scraper[string] {
	return func(spec forest.Spec) (string, bool) {
		matches := selector.Select(spec, sel)
		if len(matches) == 0 {
			return "", false
		}
		return Serialize(matches[0].Tags), true
	}
}

// HTMLs serializes every spec sel selects.
func HTMLs(sel selector.Selector) Scraper[[]string] {
	return func(spec forest.Spec) ([]string, bool) {
		matches := selector.Select(spec, sel)
		out := make([]string, len(matches))
		for i, m := range matches {
			out[i] = Serialize(m.Tags)
		}
		return out, true
	}
}

// InnerHTML serializes the first spec sel selects, dropping its own
// opening and closing tag tokens.
func InnerHTML(sel selector.Selector) Scraper[string] {
	return func(spec forest.Spec) (string, bool) {
		matches := selector.Select(spec, sel)
		if len(matches) == 0 {
			return "", false
		}
		return Serialize(innerSlice(matches[0].Tags)), true
	}
}

// InnerHTMLs is InnerHTML run over every spec sel selects.
func InnerHTMLs(sel selector.Selector) Scraper[[]string] {
	return func(spec forest.Spec) ([]string, bool) {
		matches := selector.Select(spec, sel)
		out := make([]string, len(matches))
		for i, m := range matches {
			out[i] = Serialize(innerSlice(m.Tags))
		}
		return out, true
	}
}

// Position yields the running spec's chroot-assigned ordinal (0 when the
// spec was never narrowed by chroots).
func Position() Scraper[int] {
	return func(spec forest.Spec) (int, bool) {
		return spec.Context.Position, true
	}
}

// Matches succeeds, carrying no value, iff sel selects at least one node.
func Matches(sel selector.Selector) Scraper[struct{}] {
	return func(spec forest.Spec) (struct{}, bool) {
		return struct{}{}, len(selector.Select(spec, sel)) > 0
	}
}

// Satisfies is an alias for Matches kept for readability at call sites
// that read better as "satisfies" than "matches".
func Satisfies(sel selector.Selector) Scraper[struct{}] {
	return Matches(sel)
}

// Chroot narrows to the first spec sel selects and runs inner against it;
// it fails outright when sel selects nothing.
func Chroot[T any](sel selector.Selector, inner Scraper[T]) Scraper[T] {
	return func(spec forest.Spec) (T, bool) {
		matches := selector.Select(spec, sel)
		if len(matches) == 0 {
			var zero T
			return zero, false
		}
		return inner(matches[0])
	}
}

// Chroots runs inner against every spec sel selects, collecting only the
// successful extractions; it always succeeds, with an empty slice when
// sel matches nothing or inner never succeeds.
func Chroots[T any](sel selector.Selector, inner Scraper[T]) Scraper[[]T] {
	return func(spec forest.Spec) ([]T, bool) {
		matches := selector.Select(spec, sel)
		out := make([]T, 0, len(matches))
		for _, m := range matches {
			if v, ok := inner(m); ok {
				out = append(out, v)
			}
		}
		return out, true
	}
}

// Map transforms a successful Scraper result; a failure passes through
// untouched.
func Map[T, U any](s Scraper[T], f func(T) U) Scraper[U] {
	return func(spec forest.Spec) (U, bool) {
		v, ok := s(spec)
		if !ok {
			var zero U
			return zero, false
		}
		return f(v), true
	}
}

// Bind sequences two scrapers over the same spec, short-circuiting on the
// first failure — the "standard sequential bind" the spec calls for
// without prescribing a monad abstraction.
func Bind[T, U any](s Scraper[T], f func(T) Scraper[U]) Scraper[U] {
	return func(spec forest.Spec) (U, bool) {
		v, ok := s(spec)
		if !ok {
			var zero U
			return zero, false
		}
		return f(v)(spec)
	}
}

// Pair is the result of And: two independently extracted values taken
// from the same spec.
type Pair[A, B any] struct {
	First  A
	Second B
}

// And runs a and b against the same spec, succeeding only if both do.
func And[A, B any](a Scraper[A], b Scraper[B]) Scraper[Pair[A, B]] {
	return func(spec forest.Spec) (Pair[A, B], bool) {
		av, ok := a(spec)
		if !ok {
			return Pair[A, B]{}, false
		}
		bv, ok := b(spec)
		if !ok {
			return Pair[A, B]{}, false
		}
		return Pair[A, B]{First: av, Second: bv}, true
	}
}

// OrElse runs a; if it fails, runs b instead against the same spec.
// serial.OrElse is the separate SerialScraper counterpart.
func OrElse[T any](a, b Scraper[T]) Scraper[T] {
	return func(spec forest.Spec) (T, bool) {
		if v, ok := a(spec); ok {
			return v, true
		}
		return b(spec)
	}
}
