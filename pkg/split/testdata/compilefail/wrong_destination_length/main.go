// Split3x4 returns a [4]T right half; assigning it to a [5]int binding
// must not build.
package main

import (
	"fmt"

	"splitowned/pkg/split"
)

func main() {
	arr := [7]int{0, 1, 2, 3, 4, 5, 6}
	var (
		left  [3]int
		right [5]int
	)
	left, right = split.Split3x4(&arr)
	fmt.Println(left, right)
}
