package arrays_test

import (
	"errors"
	"fmt"

	"github.com/edwinsyarief/devtools/arrays"
)

func Example() {
	spawns := []string{"north", "south"}

	more := arrays.Add(spawns, "east")
	fewer, _ := arrays.Remove(more, "north")
	mid, _ := arrays.InsertAt(fewer, 1, "west")

	fmt.Println(spawns)
	fmt.Println(mid)
	// Output:
	// [north south]
	// [south west east]
}

func ExampleRemoveAll() {
	odd, _ := arrays.RemoveAll([]int{1, 2, 3, 4, 5, 6}, func(v int) bool { return v%2 == 0 })
	fmt.Println(odd)
	// Output: [1 3 5]
}

func ExampleSubArray() {
	s, _ := arrays.SubArray([]int{10, 20, 30, 40, 50}, 1, 3)
	fmt.Println(s)

	_, err := arrays.SubArray([]int{1, 2, 3}, 1, 10)
	fmt.Println(errors.Is(err, arrays.ErrOutOfRange))
	// Output:
	// [20 30 40]
	// true
}
