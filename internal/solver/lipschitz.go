package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/piano-ml/piano/internal/objective"
)

// estimateL probes the local curvature of the smooth term from two
// gradient samples:
//
//	x̃ = xₙ − αₙ·∇f(xₙ)
//	L ≈ ‖∇f(xₙ) − ∇f(x̃)‖ / ‖xₙ − x̃‖
//
// When x̃ coincides with xₙ (the gradient is exactly zero) the ratio is
// 0/0 and the result is non-finite; callers must test for that instead of
// trusting the value. With BoundL set the estimate is clamped below by
// LInit.
func (s *Solver) estimateL(st *State) (float64, error) {
	var xTilde mat.Dense
	xTilde.Scale(-st.AlphaN, st.Grad)
	xTilde.Add(st.X, &xTilde)

	gradTilde := s.obj.Gradient(&xTilde)
	if err := objective.CheckShape(gradTilde, &xTilde); err != nil {
		return 0, err
	}

	var dg, dx mat.Dense
	dg.Sub(st.Grad, gradTilde)
	dx.Sub(st.X, &xTilde)

	l := mat.Norm(&dg, 2) / mat.Norm(&dx, 2)
	if s.cfg.BoundL {
		l = math.Max(l, s.cfg.LInit)
	}
	return l, nil
}
