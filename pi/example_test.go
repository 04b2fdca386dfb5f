package pi_test

import (
	"fmt"

	"github.com/katalvlaran/lvconst/pi"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleBellard
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Four terms of Bellard's series already agree with π to 13 decimals.
//
// Complexity: O(K) big.Float operations.
func ExampleBellard() {
	v, err := pi.Bellard(3, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(v.Text('f', 10))
	// Output:
	// 3.1415926536
}

// ExampleWallis shows how slowly the product creeps up on π.
func ExampleWallis() {
	v, _ := pi.Wallis(1000, nil)
	fmt.Println(v.Text('f', 6))
	// Output:
	// 3.140808
}

// ExampleApproximate runs every method at the drivers' default n = 5.
func ExampleApproximate() {
	for _, m := range pi.Methods()[1:] {
		v, err := pi.Approximate(m, 5, nil)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("%s(5) = %s\n", m, v.Text('f', 8))
	}
	// Output:
	// Madhava(5) = 3.14130879
	// Wallis(5) = 3.00217595
	// Bailey(5) = 3.14159265
	// Bellard(5) = 3.14159265
	// Ramanujan(5) = 3.14159265
}

// ExampleArchimedes_degenerate shows n = 0 failing instead of printing NaN.
func ExampleArchimedes_degenerate() {
	_, err := pi.Archimedes(0, &pi.Options{AllowDegenerate: true})
	fmt.Println(err)
	// Output:
	// Archimedes(0): pi: non-finite result
}
