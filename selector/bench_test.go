package selector_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/kataset/selector"
)

// BenchmarkBuilder_FullChain measures one part of every kind in canonical
// order, the common "fully qualified selector" shape.
func BenchmarkBuilder_FullChain(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s, _ := selector.New().Element("input")
		s, _ = s.ID("q")
		s, _ = s.Class("wide")
		s, _ = s.Attr(`type="text"`)
		s, _ = s.PseudoClass("focus")
		s, _ = s.PseudoElement("selection")
		_ = s.String()
	}
}

// BenchmarkBuilder_ClassChain measures a long run of repeatable parts,
// which stresses the copy-on-write string growth.
func BenchmarkBuilder_ClassChain(b *testing.B) {
	const N = 64
	names := make([]string, N)
	for i := range names {
		names[i] = fmt.Sprintf("c%d", i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := selector.New()
		for _, name := range names {
			s, _ = s.Class(name)
		}
		_ = s.String()
	}
}

// BenchmarkCombine measures joining two prebuilt selectors.
func BenchmarkCombine(b *testing.B) {
	left, _ := selector.New().Element("ul")
	left, _ = left.Class("menu")
	right, _ := selector.New().Element("li")
	right, _ = right.PseudoClass("first-child")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = selector.Combine(left, ">", right).String()
	}
}
