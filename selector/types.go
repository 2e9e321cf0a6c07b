// Package selector: part kinds and sentinel error definitions.
package selector

import "errors"

// Sentinel errors for selector construction.
var (
	// ErrOrderViolation is returned when a part is appended after a
	// higher-ranked part. The message carries the canonical order.
	ErrOrderViolation = errors.New(
		"selector: parts must follow the order element, id, class, attribute, pseudo-class, pseudo-element")

	// ErrDuplicatePart is returned on a second element, id or
	// pseudo-element within one lineage.
	ErrDuplicatePart = errors.New(
		"selector: element, id and pseudo-element may occur at most once per selector")
)

// Kind identifies one CSS selector part kind. Its numeric value is the
// part's rank: the required left-to-right position, 1..6. The zero Kind is
// reserved for "nothing appended yet".
type Kind int

const (
	// KindElement is a bare element name, e.g. "a". Singleton, rank 1.
	KindElement Kind = iota + 1
	// KindID is an id part, rendered "#v". Singleton, rank 2.
	KindID
	// KindClass is a class part, rendered ".v". Repeatable, rank 3.
	KindClass
	// KindAttribute is an attribute part, rendered "[v]". Repeatable, rank 4.
	KindAttribute
	// KindPseudoClass is a pseudo-class part, rendered ":v". Repeatable, rank 5.
	KindPseudoClass
	// KindPseudoElement is a pseudo-element part, rendered "::v". Singleton, rank 6.
	KindPseudoElement
)

// kindNames indexes human-readable names by rank; index 0 is the unset state.
var kindNames = [...]string{
	"(none)",
	"element",
	"id",
	"class",
	"attribute",
	"pseudo-class",
	"pseudo-element",
}

// String returns the kind's human-readable name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "(invalid)"
	}

	return kindNames[k]
}

// decorate renders value with the kind's CSS prefix/suffix.
func (k Kind) decorate(value string) string {
	switch k {
	case KindID:
		return "#" + value
	case KindClass:
		return "." + value
	case KindAttribute:
		return "[" + value + "]"
	case KindPseudoClass:
		return ":" + value
	case KindPseudoElement:
		return "::" + value
	default: // KindElement
		return value
	}
}

// singleton reports whether the kind may occur at most once per selector.
func (k Kind) singleton() bool {
	return k == KindElement || k == KindID || k == KindPseudoElement
}
