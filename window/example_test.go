package window_test

import (
	"fmt"

	"github.com/katalvlaran/tempora/core"
	"github.com/katalvlaran/tempora/window"
)

// ExampleSet demonstrates building a duration set and the rendering
// grammar: pieces joined by U, brackets for open ends.
func ExampleSet() {
	busy := window.SetOf(
		window.New(core.FromHours(9), core.FromHours(12)),
		window.New(core.FromHours(14), core.FromHours(18)),
	)
	fmt.Println(busy)
	fmt.Println(busy.Complement())
	fmt.Println(window.EmptySet[core.TimeValue]())
	// Output:
	// [9h,12h]U[14h,18h]
	// ]-oo,8h 59min 59s 999ms 999us 999ns]U[12h 1ns,13h 59min 59s 999ms 999us 999ns]U[18h 1ns,+oo[
	// {}
}

// ExampleSet_Intersect demonstrates streaming intersection of two
// availability windows.
func ExampleSet_Intersect() {
	alice := window.SetOf(
		window.New(core.FromHours(8), core.FromHours(12)),
		window.New(core.FromHours(13), core.FromHours(17)),
	)
	bob := window.SetOf(window.New(core.FromHours(10), core.FromHours(15)))

	fmt.Println(alice.Intersect(bob))
	// Output:
	// [10h,12h]U[13h,15h]
}

// ExampleScaleInt demonstrates integer scaling of a duration set.
func ExampleScaleInt() {
	s := window.SetOf(window.New(core.FromMins(5), core.FromMins(10)))
	fmt.Println(window.ScaleInt(s, 3))
	fmt.Println(window.ScaleInt(s, 0))
	// Output:
	// [15min,30min]
	// {0}
}
