// Package convergence evaluates one approximation over many truncation
// parameters and measures how fast it closes in on a reference constant.
//
// 🚀 What does it do?
//
//	Sweep runs an Evaluator (any func(float64) (*big.Float, error), such as
//	pi.MethodBellard.Evaluator(nil)) at every parameter of a sweep, fanning
//	the calls out to a bounded worker pool. This is safe because every
//	approximation in lvconst is a pure function.
//
//	The signed errors are then turned into squared and relative error
//	vectors with algo-vecmath's block kernels.
//
// ⚙️ Usage:
//
//	res, err := convergence.Sweep(ctx, pi.MethodBailey.Evaluator(nil),
//	    pi.Reference(0), []float64{0, 1, 2, 3, 4}, nil)
//	if err != nil {
//	  // ErrNoParameters, ErrNilEvaluator, ErrNilReference,
//	  // an evaluator error, or ctx.Err()
//	}
//	fmt.Println(convergence.Monotone(res.SquaredErrors))
//
// Errors are collapsed to float64 only after the subtraction, which runs at
// the evaluator's precision, so differences far below 1e-16 survive.
package convergence
