// Package selector: the copy-on-write Builder and its step methods.
package selector

import "fmt"

// Builder is an immutable CSS selector under construction. The zero value
// is the empty base selector (New is sugar for it). Every step returns a
// new Builder and leaves the receiver untouched, so one intermediate
// Builder may seed any number of independent continuations.
type Builder struct {
	text string
	// order is the rank of the last appended part; 0 for the empty base.
	order Kind
	// counts tracks per-kind occurrences, indexed by rank. Singleton kinds
	// cap at one; the rest feed Specificity.
	counts [KindPseudoElement + 1]int
}

// New returns the empty base Builder.
func New() Builder {
	return Builder{}
}

// appendPart runs the singleton and order checks against the receiver and, on
// success, returns the extended copy. The singleton check comes first, so
// repeating a singleton of equal rank is reported as a duplicate rather
// than slipping past the order check.
func (b Builder) appendPart(k Kind, value string) (Builder, error) {
	if k.singleton() && b.counts[k] > 0 {
		return Builder{}, fmt.Errorf("%w: second %s %q", ErrDuplicatePart, k, value)
	}
	if b.order > k {
		return Builder{}, fmt.Errorf("%w: %s cannot follow %s", ErrOrderViolation, k, b.order)
	}

	next := b
	next.text += k.decorate(value)
	next.order = k
	next.counts[k]++

	return next, nil
}

// Element appends a bare element name, verbatim. At most one per selector,
// and only at the very front.
func (b Builder) Element(value string) (Builder, error) {
	return b.appendPart(KindElement, value)
}

// ID appends "#value". At most one per selector.
func (b Builder) ID(value string) (Builder, error) {
	return b.appendPart(KindID, value)
}

// Class appends ".value". Repeatable.
func (b Builder) Class(value string) (Builder, error) {
	return b.appendPart(KindClass, value)
}

// Attr appends "[value]". The attribute expression inside the brackets is
// not validated. Repeatable.
func (b Builder) Attr(value string) (Builder, error) {
	return b.appendPart(KindAttribute, value)
}

// PseudoClass appends ":value". Repeatable.
func (b Builder) PseudoClass(value string) (Builder, error) {
	return b.appendPart(KindPseudoClass, value)
}

// PseudoElement appends "::value". At most one per selector.
func (b Builder) PseudoElement(value string) (Builder, error) {
	return b.appendPart(KindPseudoElement, value)
}

// Combine joins two finished selectors with a combinator, producing a
// terminal Builder whose text is "<a> <combinator> <b>". The combinator
// string is not validated. The result carries no order or occurrence
// state; it is meant for String, not for further part appends.
func Combine(a Builder, combinator string, b Builder) Builder {
	return Builder{text: a.text + " " + combinator + " " + b.text}
}

// String returns the accumulated selector text. Builder satisfies
// fmt.Stringer.
func (b Builder) String() string {
	return b.text
}

// Specificity returns the CSS specificity triple [A,B,C] of the parts
// appended so far: A counts ids, B counts classes, attributes and
// pseudo-classes, C counts elements and pseudo-elements.
func (b Builder) Specificity() [3]int {
	return [3]int{
		b.counts[KindID],
		b.counts[KindClass] + b.counts[KindAttribute] + b.counts[KindPseudoClass],
		b.counts[KindElement] + b.counts[KindPseudoElement],
	}
}
