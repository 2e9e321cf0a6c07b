package rectangle_test

import (
	"fmt"

	"github.com/katalvlaran/kataset/rectangle"
)

// ExampleNew constructs a rectangle and reads its derived area.
func ExampleNew() {
	r := rectangle.New(4, 2.5)
	fmt.Println(r.Width, r.Height, r.Area())
	// Output:
	// 4 2.5 10
}
