package convergence

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Sweep evaluates eval at every parameter and measures each result against ref.
//
// Steps:
//  1. Validate inputs and normalize options (O(1)).
//  2. Feed parameter indices to opts.Workers goroutines; each writes only
//     its own slot of the point slice, so no locking is needed.
//  3. The first evaluator error cancels the remaining work and is returned
//     wrapped with its parameter. Cancellation of ctx is checked between
//     evaluations, never inside one.
//  4. Build SquaredErrors (MulBlock) and RelativeErrors (ScaleBlock).
//
// The result does not depend on the worker count.
func Sweep(ctx context.Context, eval Evaluator, ref *big.Float, params []float64, opts *Options) (Result, error) {
	if eval == nil {
		return Result{}, ErrNilEvaluator
	}
	if ref == nil {
		return Result{}, ErrNilReference
	}
	if len(params) == 0 {
		return Result{}, ErrNoParameters
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	o.normalize(len(params))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	points := make([]Point, len(params))
	jobs := make(chan int)

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	for w := 0; w < o.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if runCtx.Err() != nil {
					continue
				}
				v, err := eval(params[i])
				if err != nil {
					once.Do(func() {
						firstErr = fmt.Errorf("convergence: param %v: %w", params[i], err)
						cancel()
					})
					continue
				}
				d := new(big.Float).SetPrec(v.Prec()).Sub(v, ref)
				diff, _ := d.Float64()
				points[i] = Point{Param: params[i], Value: v, Diff: diff}
				if o.Verbose {
					fmt.Printf("Sweep: f(%g) = %s, diff %.3e\n", params[i], v.Text('g', 20), diff)
				}
			}
		}()
	}

feed:
	for i := range params {
		select {
		case jobs <- i:
		case <-runCtx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return Result{}, firstErr
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	return buildResult(points, ref), nil
}

// buildResult derives the error vectors from completed points.
func buildResult(points []Point, ref *big.Float) Result {
	n := len(points)
	diffs := make([]float64, n)
	for i, p := range points {
		diffs[i] = p.Diff
	}

	sq := make([]float64, n)
	vecmath.MulBlock(sq, diffs, diffs)

	rel := make([]float64, n)
	if r, _ := ref.Float64(); r != 0 {
		vecmath.ScaleBlock(rel, diffs, 1/r)
	}

	return Result{Points: points, SquaredErrors: sq, RelativeErrors: rel}
}
