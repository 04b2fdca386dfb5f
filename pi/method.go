package pi

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Method identifies one π approximation.
type Method int

const (
	// MethodArchimedes selects Archimedes (continuous n, float64 sine).
	MethodArchimedes Method = iota
	// MethodMadhava selects Madhava (integer K).
	MethodMadhava
	// MethodWallis selects Wallis (integer N).
	MethodWallis
	// MethodBailey selects Bailey (integer K).
	MethodBailey
	// MethodBellard selects Bellard (integer K).
	MethodBellard
	// MethodRamanujan selects Ramanujan (integer K).
	MethodRamanujan

	methodCount
)

var methodNames = [methodCount]string{
	MethodArchimedes: "Archimedes",
	MethodMadhava:    "Madhava",
	MethodWallis:     "Wallis",
	MethodBailey:     "Bailey",
	MethodBellard:    "Bellard",
	MethodRamanujan:  "Ramanujan",
}

// String returns the method's display name, e.g. "Bellard".
func (m Method) String() string {
	if m < 0 || m >= methodCount {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// Methods returns every method in declaration order.
func Methods() []Method {
	out := make([]Method, 0, methodCount)
	for m := Method(0); m < methodCount; m++ {
		out = append(out, m)
	}

	return out
}

// ParseMethod resolves a case-insensitive method name.
// Returns ErrUnknownMethod for names not in the registry.
func ParseMethod(name string) (Method, error) {
	name = strings.TrimSpace(name)
	for m, n := range methodNames {
		if strings.EqualFold(n, name) {
			return Method(m), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownMethod)
}

// Approximate runs method m with a float64 parameter, the way a command-line
// driver holds it. Integer methods truncate param toward zero, as a C
// (int) cast does; NaN, ±Inf and values outside the int range cannot be
// truncated and are always rejected with ErrInvalidParameter.
func Approximate(m Method, param float64, opts *Options) (*big.Float, error) {
	if m == MethodArchimedes {
		return Archimedes(param, opts)
	}
	if m < 0 || m >= methodCount {
		return nil, fmt.Errorf("%s: %w", m, ErrUnknownMethod)
	}
	if math.IsNaN(param) || param >= math.MaxInt32 || param <= math.MinInt32 {
		return nil, methodErrorf(m, param, ErrInvalidParameter)
	}

	k := int(param)
	switch m {
	case MethodMadhava:
		return Madhava(k, opts)
	case MethodWallis:
		return Wallis(k, opts)
	case MethodBailey:
		return Bailey(k, opts)
	case MethodBellard:
		return Bellard(k, opts)
	default:
		return Ramanujan(k, opts)
	}
}

// Evaluator binds m and opts into a one-parameter function, the shape
// convergence.Sweep consumes.
func (m Method) Evaluator(opts *Options) func(float64) (*big.Float, error) {
	return func(param float64) (*big.Float, error) {
		return Approximate(m, param, opts)
	}
}
