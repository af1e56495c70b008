// Package objective defines the caller-supplied parts of a composite
// objective F(x) = f(x) + g(x): the smooth term f with its gradient, and
// the convex nonsmooth term g accessed only through its proximal map.
//
// The solver treats all four callables as opaque. The only contract it
// enforces is shape preservation: Gradient and Prox must return a matrix
// of exactly the same dimensions as their input. Violating that contract
// is a caller bug and aborts the run.
package objective

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrShapeMismatch reports that a Gradient or Prox result does not share
// the dimensions of its input. It signals a bug in the supplied objective,
// not a transient numeric condition.
var ErrShapeMismatch = errors.New("objective: result shape does not match input")

// Objective is the full set of collaborators for one composite problem.
//
// All four methods must be safe to call repeatedly with the same argument;
// the solver assumes nothing about them beyond the return-shape contract.
type Objective interface {
	// Value evaluates the smooth term f at x.
	Value(x *mat.Dense) float64

	// Gradient returns the gradient of f at x.
	// The result must have the same dimensions as x.
	Gradient(x *mat.Dense) *mat.Dense

	// NonsmoothValue evaluates the nonsmooth term g at x.
	NonsmoothValue(x *mat.Dense) float64

	// Prox evaluates the proximal map of g with parameter alpha at v:
	// the minimizer of g(x) + (1/2·alpha)·‖x−v‖².
	// The result must have the same dimensions as v.
	Prox(v *mat.Dense, alpha float64) *mat.Dense
}

// Funcs adapts four first-class functions into an Objective.
//
// Smooth and SmoothGrad are required. Nonsmooth and ProxMap may be nil,
// which selects g ≡ 0: NonsmoothValue returns 0 and Prox is the identity.
//
// Example:
//
//	obj := objective.Funcs{
//	    Smooth:     func(x *mat.Dense) float64 { ... },
//	    SmoothGrad: func(x *mat.Dense) *mat.Dense { ... },
//	}
type Funcs struct {
	Smooth     func(x *mat.Dense) float64
	SmoothGrad func(x *mat.Dense) *mat.Dense
	Nonsmooth  func(x *mat.Dense) float64
	ProxMap    func(v *mat.Dense, alpha float64) *mat.Dense
}

// Value evaluates the smooth term.
func (f Funcs) Value(x *mat.Dense) float64 { return f.Smooth(x) }

// Gradient evaluates the smooth term's gradient.
func (f Funcs) Gradient(x *mat.Dense) *mat.Dense { return f.SmoothGrad(x) }

// NonsmoothValue evaluates the nonsmooth term, or 0 when none was supplied.
func (f Funcs) NonsmoothValue(x *mat.Dense) float64 {
	if f.Nonsmooth == nil {
		return 0
	}
	return f.Nonsmooth(x)
}

// Prox evaluates the proximal map, or copies v when none was supplied.
func (f Funcs) Prox(v *mat.Dense, alpha float64) *mat.Dense {
	if f.ProxMap == nil {
		var out mat.Dense
		out.CloneFrom(v)
		return &out
	}
	return f.ProxMap(v, alpha)
}

// CheckShape returns ErrShapeMismatch (wrapped with both dimension pairs)
// unless got and want have identical dimensions.
func CheckShape(got, want *mat.Dense) error {
	gr, gc := got.Dims()
	wr, wc := want.Dims()
	if gr != wr || gc != wc {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrShapeMismatch, gr, gc, wr, wc)
	}
	return nil
}
