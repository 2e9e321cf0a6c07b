// Package kataset is a compact collection of classic coding-kata
// solutions — each one a small, self-contained, fully tested package.
//
// 🚀 What is kataset?
//
//	A dependency-free set of exercise-grade building blocks:
//		• rectangle/  — an immutable width×height value with a derived area
//		• jsonbridge/ — JSON text ⇄ value helpers that re-attach behavior
//		  to freshly parsed data
//		• selector/   — a copy-on-write CSS selector builder enforcing
//		  part ordering and singleton rules
//
// ✨ Why kataset?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable values, sentinel errors, in-code docs
//   - Pure Go – no cgo, no hidden deps
//   - Honest contracts – every invariant is stated in the package docs and
//     pinned down by tests
//
// Each package stands alone: import only what you need.
//
// Quick taste:
//
//	s, _ := selector.New().ID("main")
//	s, _ = s.Class("container")
//	s, _ = s.Class("editable")
//	fmt.Println(s) // #main.container.editable
//
//	go get github.com/katalvlaran/kataset/selector
package kataset
