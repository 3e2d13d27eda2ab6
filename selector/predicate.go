package selector

import (
	"regexp"
	"strings"

	"github.com/clems4ever/scalp/html"
)

// AttributePredicate is a pure function of an element's attribute list.
// The teacher has no regex dependency of its own for this kind of thing,
// and nothing in the retrieved corpus pulls in a non-stdlib regex engine
// for simple attribute matching, so these are built on the standard
// library's regexp (see DESIGN.md).
type AttributePredicate func(attrs html.Attributes) bool

// Attribute requires an attribute named key (case-insensitive) whose
// value equals want (case-sensitive).
func Attribute(key, want string) AttributePredicate {
	return func(attrs html.Attributes) bool {
		val, ok := attrs.Get(key)
		return ok && val == want
	}
}

// AnyAttribute requires some attribute, of any key, whose value equals
// want.
func AnyAttribute(want string) AttributePredicate {
	return func(attrs html.Attributes) bool {
		for _, a := range attrs {
			if a.Value == want {
				return true
			}
		}
		return false
	}
}

// AttributeRegex requires an attribute named key whose value matches re.
func AttributeRegex(key string, re *regexp.Regexp) AttributePredicate {
	return func(attrs html.Attributes) bool {
		val, ok := attrs.Get(key)
		return ok && re.MatchString(val)
	}
}

// AnyAttributeRegex requires some attribute, of any key, whose value
// matches re.
func AnyAttributeRegex(re *regexp.Regexp) AttributePredicate {
	return func(attrs html.Attributes) bool {
		for _, a := range attrs {
			if re.MatchString(a.Value) {
				return true
			}
		}
		return false
	}
}

// HasClass requires a "class" attribute (exact key) whose value contains
// name as a plain substring.
func HasClass(name string) AttributePredicate {
	return func(attrs html.Attributes) bool {
		for _, a := range attrs {
			if a.Key == "class" {
				return strings.Contains(a.Value, name)
			}
		}
		return false
	}
}

// Satisfies wraps an arbitrary (key, value) -> bool test as a predicate,
// requiring at least one attribute for which f returns true.
func Satisfies(f func(key, value string) bool) AttributePredicate {
	return func(attrs html.Attributes) bool {
		for _, a := range attrs {
			if f(a.Key, a.Value) {
				return true
			}
		}
		return false
	}
}
