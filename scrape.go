// Package scalp is an HTML scraping combinator library: it tokenizes an
// HTML source, builds an indexed hierarchical representation of it, and
// exposes two composable query languages over that representation — a
// Scraper for hierarchical queries and a SerialScraper for ordered
// navigation across sibling sequences — together with a Selector algebra
// used to identify regions of the tree.
//
// This file is the top-level entry point: the Scrape driver (tokenize ->
// build the initial TagSpec -> run a Scraper) plus re-exports of the
// combinator-layer identifiers most callers reach for first, so a typical
// consumer only needs this one import instead of forest/html/scrape/
// selector/serial directly. The subpackages remain fully usable on their
// own for anything not re-exported here.
package scalp

import (
	"strings"

	"github.com/clems4ever/scalp/forest"
	"github.com/clems4ever/scalp/html"
	"github.com/clems4ever/scalp/scrape"
	"github.com/clems4ever/scalp/selector"
	"github.com/clems4ever/scalp/serial"
)

// Scraper is an extraction step over the working document: it either
// produces a value or fails.
type Scraper[T any] = scrape.Scraper[T]

// SerialScraper is a cooperative, state-threaded computation over a
// focused sequence of sibling specs.
type SerialScraper[T any] = serial.SerialScraper[T]

// SpecZipper is the zipper SerialScraper combinators thread through.
type SpecZipper = serial.SpecZipper

// Selector is an innermost-first chain of selection steps.
type Selector = selector.Selector

// AttributePredicate is a pure function of an element's attribute list.
type AttributePredicate = selector.AttributePredicate

// Selector constructors.
var (
	Tag               = selector.Tag
	WithAttributes    = selector.WithAttributes
	Any               = selector.Any
	AnyWithAttributes = selector.AnyWithAttributes
	TextSel           = selector.TextSel
	Nested            = selector.Nested
	AtDepth           = selector.AtDepth
)

// Attribute predicate constructors.
var (
	Attribute         = selector.Attribute
	AnyAttribute      = selector.AnyAttribute
	AttributeRegex    = selector.AttributeRegex
	AnyAttributeRegex = selector.AnyAttributeRegex
	HasClass          = selector.HasClass
	Satisfies         = selector.Satisfies
)

// Scraper primitives.
func Text(sel Selector) Scraper[string]                { return scrape.Text(sel) }
func Texts(sel Selector) Scraper[[]string]             { return scrape.Texts(sel) }
func Attr(key string, sel Selector) Scraper[string]    { return scrape.Attr(key, sel) }
func Attrs(key string, sel Selector) Scraper[[]string] { return scrape.Attrs(key, sel) }
func HTML(sel Selector) Scraper[string]                { return scrape.HTML(sel) }
func HTMLs(sel Selector) Scraper[[]string]             { return scrape.HTMLs(sel) }
func InnerHTML(sel Selector) Scraper[string]           { return scrape.InnerHTML(sel) }
func InnerHTMLs(sel Selector) Scraper[[]string]        { return scrape.InnerHTMLs(sel) }
func Position() Scraper[int]                           { return scrape.Position() }
func Matches(sel Selector) Scraper[struct{}]           { return scrape.Matches(sel) }

// Chroot and Chroots are generic and can't be stored as plain vars
// without binding their type parameter, so they're re-exported as thin
// wrapper functions instead.
func Chroot[T any](sel Selector, inner Scraper[T]) Scraper[T] {
	return scrape.Chroot(sel, inner)
}

func Chroots[T any](sel Selector, inner Scraper[T]) Scraper[[]T] {
	return scrape.Chroots(sel, inner)
}

// Pair is the result of And: two independently extracted values taken
// from the same spec.
type Pair[A, B any] = scrape.Pair[A, B]

// And runs a and b against the same spec, succeeding only if both do.
func And[A, B any](a Scraper[A], b Scraper[B]) Scraper[Pair[A, B]] {
	return scrape.And(a, b)
}

// Map transforms a successful Scraper result; a failure passes through
// untouched.
func Map[T, U any](s Scraper[T], f func(T) U) Scraper[U] {
	return scrape.Map(s, f)
}

// BindScraper sequences two scrapers over the same spec, short-circuiting
// on the first failure. Named distinctly from Bind (below), which is the
// sequential-bind combinator spec §6 calls out for SerialScraper — the
// two can't share a name in one package since Go has no overloading.
func BindScraper[T, U any](s Scraper[T], f func(T) Scraper[U]) Scraper[U] {
	return scrape.Bind(s, f)
}

// SerialScraper primitives.
func StepNext[T any](inner Scraper[T]) SerialScraper[T] { return serial.StepNext(inner) }
func StepBack[T any](inner Scraper[T]) SerialScraper[T] { return serial.StepBack(inner) }
func SeekNext[T any](inner Scraper[T]) SerialScraper[T] { return serial.SeekNext(inner) }
func SeekBack[T any](inner Scraper[T]) SerialScraper[T] { return serial.SeekBack(inner) }

func UntilNext[T any](until Scraper[struct{}], inner SerialScraper[T]) SerialScraper[T] {
	return serial.UntilNext(until, inner)
}

func UntilBack[T any](until Scraper[struct{}], inner SerialScraper[T]) SerialScraper[T] {
	return serial.UntilBack(until, inner)
}

func Repeat[T any](s SerialScraper[T]) SerialScraper[[]T]  { return serial.Repeat(s) }
func Repeat1[T any](s SerialScraper[T]) SerialScraper[[]T] { return serial.Repeat1(s) }

// OrElse runs a against the original zipper state; if it fails, runs b
// against that same original state.
func OrElse[T any](a, b SerialScraper[T]) SerialScraper[T] {
	return serial.OrElse(a, b)
}

// Bind sequences two serial scrapers, threading the zipper state the
// first leaves behind into the second (spec §6's "standard ... sequential
// bind" for SerialScraper).
func Bind[A, B any](s SerialScraper[A], f func(A) SerialScraper[B]) SerialScraper[B] {
	return serial.Bind(s, f)
}

func InSerial[T any](s SerialScraper[T]) Scraper[T] { return serial.InSerial(s) }

// Scrape runs the full pipeline described in spec §4.6: tokenize source,
// annotate and build the forest, then run scraper against the resulting
// TagSpec. It returns the scraper's result directly, with ok false when
// either tokenization failed or the scraper itself found nothing.
func Scrape[T any](source string, scraper Scraper[T]) (T, bool) {
	var zero T
	tokens, err := html.Tokenize(strings.NewReader(source))
	if err != nil {
		return zero, false
	}
	spec := forest.New(tokens)
	v, ok := scraper(spec)
	if !ok {
		return zero, false
	}
	return v, true
}
