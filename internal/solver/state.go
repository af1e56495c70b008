package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// State is the numeric snapshot of one run, updated once per accepted
// outer iteration. All matrices share the dimensions of the initial
// iterate for the whole run.
type State struct {
	X     *mat.Dense // current iterate
	XPrev *mat.Dense // previous iterate

	DeltaX    *mat.Dense // pre-proximal increment applied this round
	DeltaNorm float64    // ‖xₙ₊₁ − xₙ‖ of the accepted step

	FVal float64    // smooth term at X
	GVal float64    // nonsmooth term at X
	Grad *mat.Dense // gradient of the smooth term at X

	LN     float64 // local Lipschitz estimate, positive and finite while healthy
	AlphaN float64 // step size, always 2(1−Beta)/LN

	N int // accepted outer iterations so far
}

// Clone returns a deep copy. Monitors receive clones so they can never
// alias the live arrays of a running solver.
func (s *State) Clone() State {
	out := *s
	out.X = cloneDense(s.X)
	out.XPrev = cloneDense(s.XPrev)
	out.DeltaX = cloneDense(s.DeltaX)
	out.Grad = cloneDense(s.Grad)
	return out
}

func cloneDense(a *mat.Dense) *mat.Dense {
	if a == nil {
		return nil
	}
	var out mat.Dense
	out.CloneFrom(a)
	return &out
}

func zerosLike(a *mat.Dense) *mat.Dense {
	r, c := a.Dims()
	return mat.NewDense(r, c, nil)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
