// Package prox provides proximal operators for common convex nonsmooth
// terms. Each Operator pairs the value of a term g with its proximal map,
// ready to plug into an objective as the nonsmooth collaborators.
package prox

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Operator is a convex term g given by its value and its proximal map
// prox_{alpha·g}(v) = argmin_x g(x) + (1/2·alpha)·‖x−v‖².
type Operator interface {
	Value(x *mat.Dense) float64
	Prox(v *mat.Dense, alpha float64) *mat.Dense
}

// Identity is the zero term g ≡ 0; its proximal map copies the input.
type Identity struct{}

func (Identity) Value(*mat.Dense) float64 { return 0 }

func (Identity) Prox(v *mat.Dense, _ float64) *mat.Dense {
	var out mat.Dense
	out.CloneFrom(v)
	return &out
}

// L1 is the weighted l1 norm g(x) = Lambda·Σ|xᵢⱼ|.
// Its proximal map is elementwise soft-thresholding at Lambda·alpha.
type L1 struct {
	Lambda float64
}

func (p L1) Value(x *mat.Dense) float64 {
	sum := 0.0
	r, c := x.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			sum += math.Abs(x.At(i, j))
		}
	}
	return p.Lambda * sum
}

func (p L1) Prox(v *mat.Dense, alpha float64) *mat.Dense {
	t := p.Lambda * alpha
	var out mat.Dense
	out.Apply(func(_, _ int, val float64) float64 {
		switch {
		case val > t:
			return val - t
		case val < -t:
			return val + t
		default:
			return 0
		}
	}, v)
	return &out
}

// SquaredL2 is the Tikhonov term g(x) = (Lambda/2)·‖x‖².
// Its proximal map is the uniform shrinkage v/(1 + Lambda·alpha).
type SquaredL2 struct {
	Lambda float64
}

func (p SquaredL2) Value(x *mat.Dense) float64 {
	n := mat.Norm(x, 2)
	return 0.5 * p.Lambda * n * n
}

func (p SquaredL2) Prox(v *mat.Dense, alpha float64) *mat.Dense {
	var out mat.Dense
	out.Scale(1/(1+p.Lambda*alpha), v)
	return &out
}

// Box is the indicator of the interval constraint Lo ≤ xᵢⱼ ≤ Hi.
// Use ±Inf for a one-sided bound. Its proximal map clamps elementwise.
type Box struct {
	Lo, Hi float64
}

func (p Box) Value(x *mat.Dense) float64 {
	r, c := x.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := x.At(i, j); v < p.Lo || v > p.Hi {
				return math.Inf(1)
			}
		}
	}
	return 0
}

func (p Box) Prox(v *mat.Dense, _ float64) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, val float64) float64 {
		return math.Min(math.Max(val, p.Lo), p.Hi)
	}, v)
	return &out
}

// NonNegative is the indicator of the nonnegative orthant.
func NonNegative() Box {
	return Box{Lo: 0, Hi: math.Inf(1)}
}
