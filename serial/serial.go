// Package serial layers the SerialScraper — a cooperative, state-threaded
// computation over a SpecZipper — on top of zipper.go's raw navigation
// primitives.
package serial

import (
	"github.com/clems4ever/scalp/forest"
	"github.com/clems4ever/scalp/scrape"
)

// SerialScraper is a stateful computation over a SpecZipper: it either
// produces a value and the zipper position to continue from, or fails and
// leaves the caller free to retry from the original state (every
// combinator below is careful to return the *input* zipper unchanged on
// failure, never a partially-moved one).
type SerialScraper[T any] func(z SpecZipper) (value T, ok bool, next SpecZipper)

// move advances or retreats a zipper's focus by one element; down and up
// (zipper.go) are its two instances.
type move func(SpecZipper) (SpecZipper, bool)

// stepWith moves once via move and, if that lands on a real element (not
// a None sentinel), runs inner against it. Fails without moving the
// zipper when move can't progress, lands on a sentinel, or inner itself
// fails.
func stepWith[T any](mv move, inner scrape.Scraper[T]) SerialScraper[T] {
	return func(z SpecZipper) (T, bool, SpecZipper) {
		var zero T
		moved, ok := mv(z)
		if !ok || moved.Focus == nil {
			return zero, false, z
		}
		v, ok := inner(*moved.Focus)
		if !ok {
			return zero, false, z
		}
		return v, true, moved
	}
}

// seekWith repeatedly applies move, trying inner on every real element it
// lands on (skipping sentinels), until inner succeeds or move itself runs
// out of zipper to traverse.
func seekWith[T any](mv move, inner scrape.Scraper[T]) SerialScraper[T] {
	return func(z SpecZipper) (T, bool, SpecZipper) {
		var zero T
		cur := z
		for {
			moved, ok := mv(cur)
			if !ok {
				return zero, false, z
			}
			cur = moved
			if cur.Focus == nil {
				continue
			}
			if v, ok := inner(*cur.Focus); ok {
				return v, true, cur
			}
		}
	}
}

// untilWith collects a run of sibling specs by repeatedly applying move,
// stopping as soon as until matches the newly-traversed focus directly
// (the matching element itself is not collected) or move runs out of
// zipper. inner then runs over a fresh, independently-padded zipper built
// from exactly the collected run, and the outer zipper is left positioned
// where collection stopped.
//
// until is an ordinary Scraper, checked against each traversed focus in
// place — not a SerialScraper, which would need its own navigation to
// evaluate and so could never succeed "on" the very node just reached.
//
// forward controls how the collected run is ordered before inner sees it:
// untilNext collects left-to-right (forward=true, no reordering needed);
// untilBack collects right-to-left, so the run is reversed first — inner
// (built from stepNext/seekNext-style combinators) always reads a
// sub-zipper in document order regardless of which direction the outer
// traversal collected it in.
func untilWith[T any](mv move, forward bool, until scrape.Scraper[struct{}], inner SerialScraper[T]) SerialScraper[T] {
	return func(z SpecZipper) (T, bool, SpecZipper) {
		var zero T
		var collected []*forest.Spec
		cur := z
		for {
			prev := cur
			moved, ok := mv(cur)
			if !ok {
				break
			}
			cur = moved
			if cur.Focus == nil {
				break
			}
			if _, matched := until(*cur.Focus); matched {
				// Leave the zipper one step short of the stop match, so
				// the caller's next move (e.g. a following seekNext) is
				// the one that actually reaches it, exactly as if
				// untilNext had never looked ahead at all.
				cur = prev
				break
			}
			collected = append(collected, cur.Focus)
		}
		if !forward {
			for i, j := 0, len(collected)-1; i < j; i, j = i+1, j-1 {
				collected[i], collected[j] = collected[j], collected[i]
			}
		}
		v, ok, _ := inner(padded(collected))
		if !ok {
			return zero, false, z
		}
		return v, true, cur
	}
}

// StepNext runs inner against the element immediately to the right of the
// current focus.
func StepNext[T any](inner scrape.Scraper[T]) SerialScraper[T] { return stepWith(down, inner) }

// StepBack runs inner against the element immediately to the left of the
// current focus.
func StepBack[T any](inner scrape.Scraper[T]) SerialScraper[T] { return stepWith(up, inner) }

// SeekNext scans rightward, running inner on each element until it
// succeeds.
func SeekNext[T any](inner scrape.Scraper[T]) SerialScraper[T] { return seekWith(down, inner) }

// SeekBack scans leftward, running inner on each element until it
// succeeds.
func SeekBack[T any](inner scrape.Scraper[T]) SerialScraper[T] { return seekWith(up, inner) }

// UntilNext bounds inner to the run of elements between the current focus
// and the next element (scanning rightward) that satisfies until.
func UntilNext[T any](until scrape.Scraper[struct{}], inner SerialScraper[T]) SerialScraper[T] {
	return untilWith(down, true, until, inner)
}

// UntilBack bounds inner to the run of elements between the current focus
// and the next element (scanning leftward) that satisfies until, restored
// to document order before inner sees it.
func UntilBack[T any](until scrape.Scraper[struct{}], inner SerialScraper[T]) SerialScraper[T] {
	return untilWith(up, false, until, inner)
}

// Repeat runs s repeatedly, collecting every success, and stops — without
// itself failing — on the first failure. An immediate failure yields an
// empty, not absent, slice.
func Repeat[T any](s SerialScraper[T]) SerialScraper[[]T] {
	return func(z SpecZipper) ([]T, bool, SpecZipper) {
		var out []T
		cur := z
		for {
			v, ok, next := s(cur)
			if !ok {
				return out, true, cur
			}
			out = append(out, v)
			cur = next
		}
	}
}

// Repeat1 is Repeat but fails outright if s never succeeds even once.
func Repeat1[T any](s SerialScraper[T]) SerialScraper[[]T] {
	return func(z SpecZipper) ([]T, bool, SpecZipper) {
		out, _, next := Repeat(s)(z)
		if len(out) == 0 {
			var zero []T
			return zero, false, z
		}
		return out, true, next
	}
}

// OrElse runs a against the original zipper state; if it fails, runs b
// against that same original state (a's failure must not leak a partial
// move into b).
func OrElse[T any](a, b SerialScraper[T]) SerialScraper[T] {
	return func(z SpecZipper) (T, bool, SpecZipper) {
		if v, ok, next := a(z); ok {
			return v, true, next
		}
		return b(z)
	}
}

// Bind sequences two serial scrapers, threading the zipper state s leaves
// behind into f's result.
func Bind[A, B any](s SerialScraper[A], f func(A) SerialScraper[B]) SerialScraper[B] {
	return func(z SpecZipper) (B, bool, SpecZipper) {
		var zero B
		v, ok, next := s(z)
		if !ok {
			return zero, false, z
		}
		w, ok, after := f(v)(next)
		if !ok {
			return zero, false, z
		}
		return w, true, after
	}
}

// InSerial converts a SerialScraper into an ordinary Scraper by building
// the zipper it runs over from spec: the children of spec's single root
// node when spec is already inside a chroot (so inSerial walks the
// chroot's immediate children), otherwise spec's own top-level siblings.
func InSerial[T any](s SerialScraper[T]) scrape.Scraper[T] {
	return func(spec forest.Spec) (T, bool) {
		var zero T
		hierarchy := spec.Hierarchy
		if spec.Context.InChroot && len(spec.Hierarchy) == 1 {
			hierarchy = spec.Hierarchy[0].Children
		}
		z := toZipper(hierarchy, spec.Context, spec.Tags)
		v, ok, _ := s(z)
		if !ok {
			return zero, false
		}
		return v, true
	}
}

func down(z SpecZipper) (SpecZipper, bool) { return z.down() }
func up(z SpecZipper) (SpecZipper, bool)   { return z.up() }
