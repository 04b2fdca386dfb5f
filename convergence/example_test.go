package convergence_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvconst/convergence"
	"github.com/katalvlaran/lvconst/pi"
)

// ExampleSweep counts how many Bellard terms reach twenty decimals.
func ExampleSweep() {
	res, err := convergence.Sweep(context.Background(),
		pi.MethodBellard.Evaluator(nil), pi.Reference(0),
		[]float64{0, 1, 2, 3, 4, 5, 6, 7}, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("monotone:", convergence.Monotone(res.SquaredErrors))
	fmt.Println("first K with error² < 1e-40:", convergence.FirstBelow(res.SquaredErrors, 1e-40))
	// Output:
	// monotone: true
	// first K with error² < 1e-40: 6
}
