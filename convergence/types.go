package convergence

import (
	"errors"
	"math/big"
	"runtime"
)

var (
	// ErrNoParameters indicates an empty parameter list.
	ErrNoParameters = errors.New("convergence: no parameters to sweep")

	// ErrNilEvaluator indicates a nil Evaluator.
	ErrNilEvaluator = errors.New("convergence: evaluator is nil")

	// ErrNilReference indicates a nil reference value.
	ErrNilReference = errors.New("convergence: reference is nil")
)

// Evaluator computes one approximation at truncation parameter param.
// It must be pure and safe for concurrent use.
type Evaluator func(param float64) (*big.Float, error)

// Options configures Sweep.
//   - Workers: concurrent evaluations; ≤ 0 means runtime.NumCPU().
//   - Verbose: if true, prints every evaluation via fmt.Printf.
type Options struct {
	Workers int
	Verbose bool
}

// DefaultOptions returns one worker per CPU, quiet.
func DefaultOptions() Options {
	return Options{Workers: runtime.NumCPU()}
}

// normalize fills in defaults and caps workers at the job count.
func (o *Options) normalize(jobs int) {
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Workers > jobs {
		o.Workers = jobs
	}
}

// Point is the outcome of one evaluation.
type Point struct {
	// Param is the truncation parameter passed to the evaluator.
	Param float64
	// Value is the approximation, at the evaluator's precision.
	Value *big.Float
	// Diff is Value − reference, rounded to float64 after subtraction.
	Diff float64
}

// Result holds a sweep, index-aligned with the input parameters.
type Result struct {
	Points []Point
	// SquaredErrors[i] = Points[i].Diff².
	SquaredErrors []float64
	// RelativeErrors[i] = Points[i].Diff / reference.
	RelativeErrors []float64
}
