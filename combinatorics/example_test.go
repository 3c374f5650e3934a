package combinatorics_test

import (
	"fmt"

	"github.com/katalvlaran/classbreaks/combinatorics"
)

// ExampleChoose shows a count the factorial ratio cannot represent.
func ExampleChoose() {
	fmt.Println(combinatorics.Choose(25, 3))
	fmt.Println(combinatorics.Choose(18, 4))
	// Output:
	// 2300
	// 3060
}

// ExampleCombinationGenerator lists the cut choices for 2 cuts among 4 gaps.
func ExampleCombinationGenerator() {
	gen := combinatorics.NewCombinationGenerator(4, 2)
	buf := make([]int, 2)
	for gen.Next() {
		fmt.Println(gen.Combination(buf))
	}
	// Output:
	// [0 1]
	// [0 2]
	// [0 3]
	// [1 2]
	// [1 3]
	// [2 3]
}
