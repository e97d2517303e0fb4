// 2 + 4 != 7: Split2x4 takes a *[6]T, so this program must not build.
package main

import (
	"fmt"

	"splitowned/pkg/split"
)

func main() {
	arr := [7]int{0, 1, 2, 3, 4, 5, 6}
	left, right := split.Split2x4(&arr)
	fmt.Println(left, right)
}
