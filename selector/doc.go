// Package selector builds CSS selector strings step by step, enforcing the
// canonical part order and the at-most-once rule for singleton parts.
//
// What
//
//   - Six part kinds, ranked 1..6 by their required left-to-right position:
//     element(1) < id(2) < class(3) < attribute(4) < pseudo-class(5) <
//     pseudo-element(6).
//   - Each step appends one decorated part (id → "#v", class → ".v",
//     attribute → "[v]", pseudo-class → ":v", pseudo-element → "::v";
//     element is verbatim) and returns a NEW Builder.
//   - element, id and pseudo-element are singletons: at most one occurrence
//     per built selector. class, attribute and pseudo-class repeat freely.
//   - Combine joins two finished selectors with any combinator string.
//   - Specificity reports the [ids, classes+attributes+pseudo-classes,
//     elements+pseudo-elements] triple of what was appended so far.
//
// Why
//
//   - Generate selectors programmatically without string plumbing, with the
//     ordering mistakes ("div" after ".active") caught at the offending
//     call rather than in a downstream parser.
//
// Copy-on-Write
//
//	A Builder is an immutable value. No step mutates its receiver, so any
//	intermediate Builder may seed multiple independent continuations —
//	including concurrently from multiple goroutines. A failed step returns
//	the zero Builder plus an error; the receiver it was called on stays
//	valid for other continuations.
//
// Complexity (n = accumulated text length, v = appended value length)
//
//   - Each step: O(n + v) for the string copy; checks are O(1).
//   - String, Specificity: O(1).
//
// Usage
//
//	s, err := selector.New().Element("a")
//	if err != nil { /* ErrDuplicatePart or ErrOrderViolation */ }
//	s, _ = s.Attr(`href$=".png"`)
//	s, _ = s.PseudoClass("focus")
//	fmt.Println(s) // a[href$=".png"]:focus
//
//	row := selector.Combine(left, ">", right) // "<left> > <right>"
//
// Errors
//
//   - ErrOrderViolation — a part was appended after a higher-ranked part.
//   - ErrDuplicatePart  — a second element, id or pseudo-element in one
//     lineage. Checked before ordering, so repeating a singleton back to
//     back is a duplicate, not an order pass.
//
// Non-goals: parsing CSS, validating part values or combinator symbols.
// Whatever string you pass is decorated and appended as-is.
package selector
