package solver

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/piano-ml/piano/internal/objective"
)

// step computes the inertial proximal candidate for the step size
// currently in st:
//
//	δ  = −αₙ·∇f(xₙ) + β·(xₙ − xₙ₋₁)
//	x⁺ = prox_{αₙ·g}(xₙ + δ)
//
// It reads st but does not mutate it.
func (s *Solver) step(st *State) (deltaX, xCand *mat.Dense, deltaNorm float64, err error) {
	var d mat.Dense
	d.Sub(st.X, st.XPrev)
	d.Scale(s.cfg.Beta, &d)

	var gstep mat.Dense
	gstep.Scale(-st.AlphaN, st.Grad)
	d.Add(&d, &gstep)

	var v mat.Dense
	v.Add(st.X, &d)
	cand := s.obj.Prox(&v, st.AlphaN)
	if err := objective.CheckShape(cand, &v); err != nil {
		return nil, nil, 0, err
	}

	var r mat.Dense
	r.Sub(st.X, cand)
	return &d, cand, mat.Norm(&r, 2), nil
}

// checkCondition evaluates the sufficient-decrease surrogate for the
// candidate at the current Lₙ:
//
//	f(x⁺) ≤ f(xₙ) + ‖∇f(xₙ) ∘ r‖² + (Lₙ/2)·‖r‖²,  r = x⁺ − xₙ
//
// The ‖∇f(xₙ) ∘ r‖² term is the squared norm of the elementwise product.
// The textbook majorization test uses the inner product ⟨∇f(xₙ), r⟩ here;
// nmiPiano as published evaluates the elementwise form, and this
// implementation reproduces it. Do not substitute the inner-product form
// without revisiting convergence behavior.
func (s *Solver) checkCondition(st *State, xCand *mat.Dense) bool {
	fCand := s.obj.Value(xCand)

	var r mat.Dense
	r.Sub(xCand, st.X)

	var gr mat.Dense
	gr.MulElem(st.Grad, &r)

	gn := mat.Norm(&gr, 2)
	rn := mat.Norm(&r, 2)
	return fCand <= st.FVal+gn*gn+0.5*st.LN*rn*rn
}

// backtrack grows the Lipschitz estimate from lSeed by powers of Eta until
// the surrogate condition accepts the candidate step. It commits the
// accepted LN, AlphaN, DeltaX and DeltaNorm into st and returns the
// candidate iterate. The loop has no attempt bound; a non-finite estimate
// is its only forced exit.
func (s *Solver) backtrack(st *State, lSeed float64) (*mat.Dense, error) {
	for l := 0; ; l++ {
		ln := math.Pow(s.cfg.Eta, float64(l)) * lSeed
		if !isFinite(ln) {
			return nil, fmt.Errorf("%w: seed %g, eta %g, attempt %d", ErrDiverged, lSeed, s.cfg.Eta, l)
		}
		st.LN = ln
		st.AlphaN = 2 * (1 - s.cfg.Beta) / ln

		deltaX, xCand, deltaNorm, err := s.step(st)
		if err != nil {
			return nil, err
		}
		if s.checkCondition(st, xCand) {
			st.DeltaX = deltaX
			st.DeltaNorm = deltaNorm
			return xCand, nil
		}

		if (l+1)%1000 == 0 {
			s.log.WithFields(logrus.Fields{
				"iteration": st.N,
				"attempts":  l + 1,
				"L":         ln,
			}).Warn("backtracking is slow to satisfy the decrease condition")
		}
	}
}
