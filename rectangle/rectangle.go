// Package rectangle provides a minimal immutable rectangle value.
//
// A Rectangle is a plain width×height pair with a derived area. Dimensions
// are caller-supplied and deliberately unvalidated: negative, zero and
// fractional values pass through untouched — numeric domain policy belongs
// to the caller, not this package.
package rectangle

// Rectangle is an immutable width×height value.
// There are no setters; build a new value instead of mutating.
type Rectangle struct {
	Width  float64
	Height float64
}

// New returns a Rectangle with the given dimensions, unvalidated.
func New(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Area returns Width×Height, recomputed on every call (never cached).
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}
