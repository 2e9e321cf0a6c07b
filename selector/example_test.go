package selector_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kataset/selector"
)

// ExampleBuilder chains id and classes into a single selector.
func ExampleBuilder() {
	s, err := selector.New().ID("main")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	s, _ = s.Class("container")
	s, _ = s.Class("editable")
	fmt.Println(s)
	// Output:
	// #main.container.editable
}

// ExampleBuilder_ordering shows an out-of-order append failing at the
// offending call while the base selector stays usable.
func ExampleBuilder_ordering() {
	base, _ := selector.New().Class("active")

	if _, err := base.Element("div"); errors.Is(err, selector.ErrOrderViolation) {
		fmt.Println("rejected: element after class")
	}

	s, _ := base.PseudoClass("hover")
	fmt.Println(s)
	// Output:
	// rejected: element after class
	// .active:hover
}

// ExampleCombine joins two independently built selectors with a child
// combinator.
func ExampleCombine() {
	menu, _ := selector.New().Element("ul")
	menu, _ = menu.Class("menu")

	item, _ := selector.New().Element("li")
	item, _ = item.PseudoClass("first-child")

	fmt.Println(selector.Combine(menu, ">", item))
	// Output:
	// ul.menu > li:first-child
}
